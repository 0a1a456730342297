package lock

import (
	"context"
	"sync"
)

// lock для ограничения числа одновременных тяжелых задач (транскрибация)

/*
	if !lock.Acquire(ctx, "Transcribe") {
		return // контекст завершен
	}
	defer lock.Release("Transcribe")
*/

type ResourceLock struct {
	slots   chan struct{}
	mu      sync.Mutex
	holders map[string]int
}

func NewResourceLock(capacity int) *ResourceLock {
	if capacity < 1 {
		capacity = 1
	}
	return &ResourceLock{
		slots:   make(chan struct{}, capacity),
		holders: map[string]int{},
	}
}

// Acquire ждет свободный слот. Возвращает false если контекст завершился раньше
func (c *ResourceLock) Acquire(ctx context.Context, functionName string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case c.slots <- struct{}{}:
	case <-ctx.Done():
		return false
	}
	c.mu.Lock()
	c.holders[functionName]++
	c.mu.Unlock()
	return true
}

// Release освобождает слот
func (c *ResourceLock) Release(functionName string) {
	c.mu.Lock()
	if c.holders[functionName] > 1 {
		c.holders[functionName]--
	} else {
		delete(c.holders, functionName)
	}
	c.mu.Unlock()
	<-c.slots
}

// InUse число занятых слотов
func (c *ResourceLock) InUse() int {
	return len(c.slots)
}

func (c *ResourceLock) Capacity() int {
	return cap(c.slots)
}
