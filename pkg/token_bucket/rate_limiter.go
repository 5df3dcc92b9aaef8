package token_bucket

import (
	"sync"
	"time"

	"logistics/pkg/clock"
)

/*
Allow либо пропускает запрос, забирая токен, либо отклоняет его.
Токены копятся дробно, поэтому медленная скорость пополнения
не теряет накопленное между вызовами время.
*/

type TokenBucket struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени.
func WithClock(c clock.Clock) Option {
	return func(t *TokenBucket) {
		t.clock = c
	}
}

// NewTokenBucket создает полное ведро на capacity токенов,
// пополняемое со скоростью refillRate токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		clock:      clock.New(),
		capacity:   float64(max(capacity, 0)),
		refillRate: max(refillRate, 0),
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.tokens = tb.capacity
	tb.lastRefill = tb.clock.Now()
	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
