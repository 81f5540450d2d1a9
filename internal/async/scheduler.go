package async

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDelay is the suspension applied when a Scheduler is built with a
// non-positive delay.
const DefaultDelay = time.Second

// Scheduler starts computations after a fixed delay.
type Scheduler struct {
	delay   time.Duration
	metrics *Metrics
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler. metrics may be nil.
func NewScheduler(delay time.Duration, metrics *Metrics, logger zerolog.Logger) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}

	return &Scheduler{
		delay:   delay,
		metrics: metrics,
		logger:  logger.With().Str("component", "scheduler").Logger(),
	}
}

// Delay returns the suspension applied before every computation.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Wait blocks until every scheduled computation has resolved.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// After arms a timer for the scheduler's delay and, once it fires, runs fn
// and resolves the returned future with its outcome. The timer is armed
// before After returns.
func After[T any](s *Scheduler, name string, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	timer := time.NewTimer(s.delay)
	start := time.Now()

	s.wg.Add(1)
	s.metrics.started()

	s.logger.Debug().
		Str("task", name).
		Str("future_id", f.ID().String()).
		Dur("delay", s.delay).
		Msg("task scheduled")

	go func() {
		defer s.wg.Done()

		<-timer.C
		v, err := fn()

		// Metrics are recorded first so they are current once the future
		// is observed as resolved.
		elapsed := time.Since(start)
		s.metrics.finished(err, elapsed)
		f.resolve(Result[T]{Value: v, Err: err})

		event := s.logger.Debug()
		if err != nil {
			event = s.logger.Warn().Err(err)
		}
		event.
			Str("task", name).
			Str("future_id", f.ID().String()).
			Dur("elapsed", elapsed).
			Msg("task resolved")
	}()

	return f
}
