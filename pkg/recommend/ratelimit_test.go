package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckAndRecord(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)

	t.Run("first call is allowed and recorded", func(t *testing.T) {
		var last time.Time
		ok, wait := CheckAndRecord(&last, t0, DefaultCooldown)
		assert.True(t, ok)
		assert.Zero(t, wait)
		assert.Equal(t, t0, last)
	})

	t.Run("denied just inside the cooldown", func(t *testing.T) {
		last := t0
		ok, wait := CheckAndRecord(&last, t0.Add(4999*time.Millisecond), DefaultCooldown)
		assert.False(t, ok)
		assert.Equal(t, time.Millisecond, wait)
		assert.Equal(t, t0, last, "denial must not move the timestamp")
	})

	t.Run("allowed exactly at the cooldown", func(t *testing.T) {
		last := t0
		ok, _ := CheckAndRecord(&last, t0.Add(5000*time.Millisecond), DefaultCooldown)
		assert.True(t, ok)
		assert.Equal(t, t0.Add(5*time.Second), last)
	})

	t.Run("denied calls do not extend the window", func(t *testing.T) {
		last := t0
		ok, _ := CheckAndRecord(&last, t0.Add(3*time.Second), DefaultCooldown)
		assert.False(t, ok)
		ok, _ = CheckAndRecord(&last, t0.Add(5*time.Second), DefaultCooldown)
		assert.True(t, ok)
	})
}

func TestWaitSeconds(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want int
	}{
		{0, 0},
		{time.Millisecond, 1},
		{999 * time.Millisecond, 1},
		{time.Second, 1},
		{4001 * time.Millisecond, 5},
		{5 * time.Second, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaitSeconds(tt.wait), tt.wait.String())
	}

	err := &RateLimitedError{Wait: 2500 * time.Millisecond}
	assert.Equal(t, 3, err.WaitSeconds())
	assert.Contains(t, err.Error(), "3s")
}
