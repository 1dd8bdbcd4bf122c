package mock

import (
	"sync"
	"time"
)

// Time is a clock that starts at a chosen instant and then advances with
// the wall clock.
type Time struct {
	mu        sync.Mutex
	startTime time.Time
	setAt     time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		startTime: now,
		setAt:     now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startTime = currentTime
	t.setAt = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startTime.Add(time.Since(t.setAt))
}
