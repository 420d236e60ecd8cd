package services

import (
	"sync"
	"time"
)

// CooldownLimiter tracks the last accepted submission time per user. State is
// process-local and lost on restart; a missing entry always allows the request.
type CooldownLimiter struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     map[string]int64 // userID -> epoch ms of last accepted attempt
}

func NewCooldownLimiter(cooldown time.Duration) *CooldownLimiter {
	return &CooldownLimiter{
		cooldown: cooldown,
		last:     make(map[string]int64),
	}
}

// Reserve reports whether a submission at nowMs is allowed for userID, and if
// so records nowMs as the user's new last-accepted timestamp. The timestamp is
// recorded even when the subsequent store write turns out to be a no-op: the
// cooldown applies to attempts, not to score-improving submissions only.
func (l *CooldownLimiter) Reserve(userID string, nowMs int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if nowMs-l.last[userID] < l.cooldown.Milliseconds() {
		return false
	}
	l.last[userID] = nowMs
	return true
}

// Sweep drops entries whose cooldown window has already elapsed and returns
// how many were removed. An expired entry and a missing entry decide
// identically, so eviction is unobservable to callers of Reserve.
func (l *CooldownLimiter) Sweep(nowMs int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, last := range l.last {
		if nowMs-last >= l.cooldown.Milliseconds() {
			delete(l.last, id)
			removed++
		}
	}
	return removed
}

// Reset clears all cooldown state.
func (l *CooldownLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = make(map[string]int64)
}
