package limiter

import (
	"context"

	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"golang.org/x/time/rate"
)

const (
	DefaultRPS = 20
	MinRPS     = 1
	MaxRPS     = 100
)

// Limiter is a token bucket shared by every region worker of a run.
type Limiter struct {
	limiter *rate.Limiter
	rps     int
}

var _ ports.RateLimiter = (*Limiter)(nil)

// New builds a limiter allowing rps calls per second with an equal burst.
// Zero selects DefaultRPS; values outside [MinRPS, MaxRPS] also fall back to
// DefaultRPS with a warning.
func New(rps int, logger ports.Logger) *Limiter {
	value := rps
	switch {
	case rps == 0:
		value = DefaultRPS
	case rps < MinRPS || rps > MaxRPS:
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRPS, MinRPS, MaxRPS)
		value = DefaultRPS
	}
	logger.Debugf(context.Background(), "AWS API rate limiter set to %d RPS", value)
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(value), value), rps: value}
}

// RPS returns the effective rate.
func (l *Limiter) RPS() int {
	return l.rps
}

func (l *Limiter) Wait(ctx context.Context, logger ports.Logger) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
