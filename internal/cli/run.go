package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"showcase/internal/async"
	"showcase/internal/catalog"
	"showcase/internal/collection"
	"showcase/internal/config"
	"showcase/internal/model"
	"showcase/internal/textcase"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runCmd() *cobra.Command {
	var delay time.Duration

	c := &cobra.Command{
		Use:   "run",
		Short: "Print the result of every operation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("delay") {
				if delay <= 0 {
					return fmt.Errorf("delay must be positive: %s", delay)
				}
				cfg.Async.Delay = delay
			}

			logger := config.NewLogger(cfg.Logger)
			scheduler := async.NewScheduler(cfg.Async.Delay, nil, logger)
			defer scheduler.Wait()

			return newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), scheduler).run(cmd.Context())
		},
	}

	c.Flags().DurationVar(&delay, "delay", async.DefaultDelay, "Delay before each square resolves (overrides ASYNC_DELAY)")
	return c
}

// runner prints results to out and failures to errOut. The first write
// error sticks and is returned by run.
type runner struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	scheduler *async.Scheduler
	err       error
}

func newRunner(out, errOut io.Writer, scheduler *async.Scheduler) *runner {
	return &runner{out: out, errOut: errOut, scheduler: scheduler}
}

func (r *runner) run(ctx context.Context) error {
	r.println(textcase.Format("Hello"))
	r.println(textcase.Format("Hello", textcase.WithUpper(true)))
	r.println(textcase.Format("Hello", textcase.WithUpper(false)))

	sample := model.DefaultCatalogue()
	r.printJSON(catalog.FilterByRating(sample.Items))

	r.printJSON(collection.Concat([]string{"a", "b"}, []string{"c"}))
	r.printJSON(collection.Concat([]int{1, 2}, []int{3, 4}, []int{5}))

	car := model.NewCar("Toyota", 2020, "Corolla")
	r.println(car.Info())
	r.println(car.Model())

	r.println(formatNumber(model.ProcessValue(model.Text("hello"))))
	r.println(formatNumber(model.ProcessValue(model.Number(10))))

	if best, ok := catalog.MostExpensive(sample.Products); ok {
		r.printJSON(best)
	} else {
		r.println("null")
	}

	r.println(string(model.Monday.Type()))
	r.println(string(model.Sunday.Type()))

	if err := r.squares(ctx, 4, -3); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// squares starts every computation before waiting on any of them, so they
// run concurrently.
func (r *runner) squares(ctx context.Context, inputs ...float64) error {
	futures := make([]*async.Future[float64], len(inputs))
	for i, n := range inputs {
		futures[i] = async.SquareAsync(r.scheduler, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range futures {
		g.Go(func() error {
			return f.Then(gctx,
				func(v float64) { r.println(formatNumber(v)) },
				func(err error) { r.write(r.errOut, "Error: "+err.Error()) },
			)
		})
	}

	return g.Wait()
}

func (r *runner) println(s string) {
	r.write(r.out, s)
}

func (r *runner) printJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		r.fail(fmt.Errorf("failed to encode result: %w", err))
		return
	}
	r.write(r.out, string(b))
}

func (r *runner) write(w io.Writer, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintln(w, s); err != nil {
		r.err = err
	}
}

func (r *runner) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err == nil {
		r.err = err
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
