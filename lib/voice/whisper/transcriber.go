package whisper

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	apperrors "devassist-backend/lib/utils/app-errors"

	log "github.com/sirupsen/logrus"
)

const maxStderrLen = 1024

type Transcriber interface {
	// Transcribe возвращает распознанный текст аудиофайла audioPath
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type impl struct {
	bin     string
	model   string
	timeout time.Duration
}

func NewTranscriber(bin, model string, timeout time.Duration) Transcriber {
	return impl{
		bin:     bin,
		model:   model,
		timeout: timeout,
	}
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("whisper_model", i.model)
}

func (i impl) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	outDir, err := os.MkdirTemp("", "whisper-out-")
	if err != nil {
		return "", apperrors.Internal("Failed to prepare transcription", err)
	}
	defer os.RemoveAll(outDir)

	cmd := exec.CommandContext(ctx, i.bin, audioPath,
		"--model", i.model,
		"--output_format", "txt",
		"--output_dir", outDir,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	now := time.Now()
	err = cmd.Run()
	logger := i.getLogger().
		WithField("audio", filepath.Base(audioPath)).
		WithField("duration_sec", time.Since(now).Seconds())
	if err != nil {
		details := strings.TrimSpace(stderr.String())
		if len(details) > maxStderrLen {
			details = details[len(details)-maxStderrLen:]
		}
		if ctx.Err() == context.DeadlineExceeded {
			details = "whisper did not finish before the deadline"
		}
		logger.WithError(err).WithField("stderr", details).Error("ошибка транскрибации аудио")
		return "", apperrors.New(apperrors.KindTranscriptionFailed, "Failed to transcribe audio", details, err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		logger.WithError(err).Error("whisper не создал файл транскрипции")
		return "", apperrors.New(apperrors.KindTranscriptionFailed, "Failed to transcribe audio", "no transcription output", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		logger.Warn("пустая транскрипция")
		return "", apperrors.New(apperrors.KindTranscriptionFailed, "Failed to transcribe audio", "empty transcription", nil)
	}
	logger.WithField("text_len", len(text)).Info("аудио транскрибировано")
	return text, nil
}
