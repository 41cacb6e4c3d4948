package wallet

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// UnlockLimiter applies a token bucket per wallet name to unlock attempts.
// A nil *UnlockLimiter allows everything.
type UnlockLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu     sync.Mutex
	byName map[string]*rate.Limiter
}

// NewUnlockLimiter allows burst attempts per wallet, refilled at perSecond.
// Returns nil if either argument is not positive.
func NewUnlockLimiter(perSecond float64, burst int) *UnlockLimiter {
	if perSecond <= 0 || burst <= 0 {
		return nil
	}
	return &UnlockLimiter{
		limit:  rate.Limit(perSecond),
		burst:  burst,
		now:    time.Now,
		byName: make(map[string]*rate.Limiter),
	}
}

// Allow consumes one attempt for name and reports whether it was available.
func (l *UnlockLimiter) Allow(name string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.byName[name]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.byName[name] = lim
	}
	return lim.AllowN(l.now(), 1)
}

// Reset forgets the attempt history for name, after a successful unlock.
func (l *UnlockLimiter) Reset(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	delete(l.byName, name)
	l.mu.Unlock()
}
