package recommend

import (
	"errors"
	"fmt"
	"time"

	"moodmovie-be/pkg/inference"
)

var (
	// ErrValidation is malformed user input; the user can fix it by editing.
	ErrValidation = errors.New("invalid input")
	// ErrInference is a failed or schema-non-conformant generative call.
	ErrInference = inference.ErrInference
	// ErrPersistence is a catalog or history store failure.
	ErrPersistence = errors.New("persistence failure")
)

// RateLimitedError is a policy rejection, not a failure.
type RateLimitedError struct {
	Wait time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many searches, please wait %ds", e.WaitSeconds())
}

// WaitSeconds is the wait rounded up to whole seconds.
func (e *RateLimitedError) WaitSeconds() int {
	return WaitSeconds(e.Wait)
}
