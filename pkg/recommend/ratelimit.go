package recommend

import "time"

// DefaultCooldown is the minimum spacing between two searches of one session.
const DefaultCooldown = 5 * time.Second

// CheckAndRecord allows an invocation when last is unset or at least cooldown has
// elapsed, recording now into last. On denial last is left untouched and the
// remaining wait is returned.
func CheckAndRecord(last *time.Time, now time.Time, cooldown time.Duration) (bool, time.Duration) {
	if !last.IsZero() {
		elapsed := now.Sub(*last)
		if elapsed < cooldown {
			return false, cooldown - elapsed
		}
	}
	*last = now
	return true, 0
}

// WaitSeconds rounds d up to whole seconds.
func WaitSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
