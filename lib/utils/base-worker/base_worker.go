package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(WorkerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    WorkerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run вызывает jobFunc с периодом runInterval до завершения ctx.
// Паника в jobFunc не останавливает задачу.
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			i.runSafe(ctx, jobFunc)
		}
		timer.Reset(i.runInterval)
	}
}

func (i BaseImpl) runSafe(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	jobFunc(ctx)
}
