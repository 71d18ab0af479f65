package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testGuard(cfg GuardConfig) (*Guard, *time.Time) {
	g := NewGuard(cfg, zap.NewNop())
	current := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return current }
	return g, &current
}

func TestCheckRateLimitDeniesOverBudget(t *testing.T) {
	g, _ := testGuard(GuardConfig{
		RateLimitRequests: 3,
		RateLimitWindow:   60 * time.Second,
	})

	for i := 0; i < 3; i++ {
		assert.True(t, g.CheckRateLimit("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, g.CheckRateLimit("10.0.0.1"))

	// Other addresses have their own window
	assert.True(t, g.CheckRateLimit("10.0.0.2"))
}

func TestCheckRateLimitWindowSlides(t *testing.T) {
	g, current := testGuard(GuardConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   60 * time.Second,
	})

	assert.True(t, g.CheckRateLimit("10.0.0.1"))
	assert.True(t, g.CheckRateLimit("10.0.0.1"))
	assert.False(t, g.CheckRateLimit("10.0.0.1"))

	*current = current.Add(61 * time.Second)
	assert.True(t, g.CheckRateLimit("10.0.0.1"))
}

func TestDeniedRequestNotRecorded(t *testing.T) {
	g, current := testGuard(GuardConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   60 * time.Second,
	})

	assert.True(t, g.CheckRateLimit("10.0.0.1"))

	// A burst of denials must not extend the window
	for i := 0; i < 10; i++ {
		assert.False(t, g.CheckRateLimit("10.0.0.1"))
	}

	*current = current.Add(61 * time.Second)
	assert.True(t, g.CheckRateLimit("10.0.0.1"))
}

func TestLoginFailuresBlockAddress(t *testing.T) {
	g, _ := testGuard(GuardConfig{
		MaxLoginAttempts: 5,
		LoginWindow:      300 * time.Second,
		BlockDuration:    900 * time.Second,
	})

	for i := 0; i < 4; i++ {
		assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))
		assert.False(t, g.IsBlocked("10.0.0.1"))
	}

	assert.False(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.IsBlocked("10.0.0.1"))
}

func TestBlockExpires(t *testing.T) {
	g, current := testGuard(GuardConfig{
		MaxLoginAttempts: 1,
		LoginWindow:      300 * time.Second,
		BlockDuration:    900 * time.Second,
	})

	assert.False(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.IsBlocked("10.0.0.1"))

	*current = current.Add(899 * time.Second)
	assert.True(t, g.IsBlocked("10.0.0.1"))

	*current = current.Add(2 * time.Second)
	assert.False(t, g.IsBlocked("10.0.0.1"))
}

func TestSuccessDoesNotClearFailures(t *testing.T) {
	g, _ := testGuard(GuardConfig{
		MaxLoginAttempts: 3,
		LoginWindow:      300 * time.Second,
		BlockDuration:    900 * time.Second,
	})

	assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.RecordLoginAttempt("10.0.0.1", true))

	// Third failure still crosses the threshold
	assert.False(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.IsBlocked("10.0.0.1"))
}

func TestFailuresAgeOutOfWindow(t *testing.T) {
	g, current := testGuard(GuardConfig{
		MaxLoginAttempts: 3,
		LoginWindow:      300 * time.Second,
		BlockDuration:    900 * time.Second,
	})

	assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))

	*current = current.Add(301 * time.Second)

	assert.True(t, g.RecordLoginAttempt("10.0.0.1", false))
	assert.False(t, g.IsBlocked("10.0.0.1"))
}
