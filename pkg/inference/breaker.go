package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"moodmovie-be/internal/pkg/logger"
)

// BreakerService guards a Service with a circuit breaker so a dead LLM backend fails
// fast instead of stalling every search for the full client timeout.
type BreakerService struct {
	next Service
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerService(next Service, log logger.ILogger) *BreakerService {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "inference",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A model that answered with the wrong shape is not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrSchemaMismatch)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Inference", "Circuit breaker state change", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	return &BreakerService{next: next, cb: cb}
}

func (b *BreakerService) Invoke(ctx context.Context, req Request, out any) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Invoke(ctx, req, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrInference, err)
	}
	return err
}
