package security

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// GuardConfig bounds the per-address sliding windows.
type GuardConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxLoginAttempts  int
	LoginWindow       time.Duration
	BlockDuration     time.Duration
}

func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   60 * time.Second,
		MaxLoginAttempts:  5,
		LoginWindow:       300 * time.Second,
		BlockDuration:     900 * time.Second,
	}
}

type loginAttempt struct {
	at      time.Time
	success bool
}

// Guard tracks per-address request and login-attempt sliding windows and
// temporary IP blocks. All methods are safe for concurrent use and never
// return errors; callers translate outcomes into HTTP 429 responses.
type Guard struct {
	mu sync.Mutex

	cfg      GuardConfig
	requests map[string][]time.Time
	attempts map[string][]loginAttempt
	blocked  map[string]time.Time

	now func() time.Time

	log *zap.Logger
}

func NewGuard(cfg GuardConfig, log *zap.Logger) *Guard {
	return &Guard{
		cfg:      cfg,
		requests: make(map[string][]time.Time),
		attempts: make(map[string][]loginAttempt),
		blocked:  make(map[string]time.Time),
		now:      time.Now,
		log:      log.With(zap.String("component", "guard")),
	}
}

// CheckRateLimit evicts request timestamps older than the window, then
// performs an atomic check-and-record: false means the address exceeded
// its budget and this request was not recorded.
func (g *Guard) CheckRateLimit(addr string) bool {
	now := g.now()
	cutoff := now.Add(-g.cfg.RateLimitWindow)

	g.mu.Lock()
	defer g.mu.Unlock()

	kept := evictBefore(g.requests[addr], cutoff)

	if len(kept) >= g.cfg.RateLimitRequests {
		g.requests[addr] = kept
		return false
	}

	g.requests[addr] = append(kept, now)
	return true
}

// RecordLoginAttempt appends the attempt to the address's window and counts
// failures. Reaching the failure threshold blocks the address for the
// configured duration; the return value is false while blocked. A success
// does not clear earlier failures, they age out of the window naturally.
func (g *Guard) RecordLoginAttempt(addr string, success bool) bool {
	now := g.now()
	cutoff := now.Add(-g.cfg.LoginWindow)

	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.attempts[addr][:0:0]
	for _, a := range g.attempts[addr] {
		if a.at.After(cutoff) {
			kept = append(kept, a)
		}
	}
	kept = append(kept, loginAttempt{at: now, success: success})
	g.attempts[addr] = kept

	failed := 0
	for _, a := range kept {
		if !a.success {
			failed++
		}
	}

	if failed >= g.cfg.MaxLoginAttempts {
		g.blocked[addr] = now.Add(g.cfg.BlockDuration)
		g.log.Warn("address blocked after failed login attempts",
			zap.String("addr", addr),
			zap.Int("failed_attempts", failed),
			zap.Duration("block_duration", g.cfg.BlockDuration),
		)
		return false
	}

	return true
}

// IsBlocked reports whether the address is inside its block window.
// Expired blocks are removed lazily on lookup.
func (g *Guard) IsBlocked(addr string) bool {
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	until, ok := g.blocked[addr]
	if !ok {
		return false
	}
	if now.Before(until) {
		return true
	}

	delete(g.blocked, addr)
	return false
}

func evictBefore(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
