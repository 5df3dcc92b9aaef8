package clock

import (
	"sync"
	"time"
)

// Clock отдает текущее время, в тестах подменяется на фиксированное.
type Clock interface {
	Now() time.Time
}

type UTC struct{}

func New() *UTC {
	return &UTC{}
}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}

type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Advance сдвигает часы вперед.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}
