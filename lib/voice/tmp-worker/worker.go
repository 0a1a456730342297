package voicetmpworker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	baseworker "devassist-backend/lib/utils/base-worker"
)

const (
	firstRunDelay = time.Minute
	runInterval   = 5 * time.Minute
)

type impl struct {
	*baseworker.BaseImpl
	dir    string
	maxAge time.Duration
}

// StartWorker удаляет из dir файлы старше maxAge. Страхует от временных
// аудиофайлов, оставшихся после аварийной остановки процесса.
func StartWorker(ctx context.Context, dir string, maxAge time.Duration) {
	i := impl{
		BaseImpl: baseworker.NewInstance("VoiceTmpCleaner", firstRunDelay, runInterval),
		dir:      dir,
		maxAge:   maxAge,
	}
	go i.Run(ctx, i.handle)
}

func (i impl) handle(ctx context.Context) {
	removed := i.cleanup(time.Now())
	if removed > 0 {
		i.GetLogger().WithField("removed", removed).Info("удалены устаревшие временные аудиофайлы")
	}
}

func (i impl) cleanup(now time.Time) int {
	logger := i.GetLogger()
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Error("ошибка чтения каталога временных аудиофайлов")
		}
		return 0
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || now.Sub(info.ModTime()) < i.maxAge {
			continue
		}
		path := filepath.Join(i.dir, entry.Name())
		if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.WithError(err).WithField("path", path).Warn("ошибка удаления временного аудиофайла")
			continue
		}
		removed++
	}
	return removed
}
