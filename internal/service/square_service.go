package service

import (
	"context"

	"showcase/internal/async"

	"github.com/rs/zerolog"
)

// squareService implements SquareService on top of an async scheduler.
type squareService struct {
	scheduler *async.Scheduler
	logger    zerolog.Logger
}

// NewSquareService creates a new square service.
func NewSquareService(scheduler *async.Scheduler, logger zerolog.Logger) SquareService {
	return &squareService{
		scheduler: scheduler,
		logger:    logger.With().Str("service", "square").Logger(),
	}
}

// Square waits for the delayed square of n.
func (s *squareService) Square(ctx context.Context, n float64) (float64, error) {
	f := async.SquareAsync(s.scheduler, n)

	// Ties the HTTP request log line to the scheduler's log lines.
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("future_id", f.ID().String())
	})

	v, err := f.Await(ctx)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Float64("n", n).
			Str("future_id", f.ID().String()).
			Msg("square failed")
		return 0, err
	}

	return v, nil
}
