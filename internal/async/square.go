package async

import "showcase/internal/model"

// SquareAsync resolves to n*n after the scheduler's delay, or to
// model.ErrNegativeNumber when n is negative.
func SquareAsync(s *Scheduler, n float64) *Future[float64] {
	return After(s, "square", func() (float64, error) {
		if n < 0 {
			return 0, model.ErrNegativeNumber
		}
		return n * n, nil
	})
}
