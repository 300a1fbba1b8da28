// run/runner.go

package run

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/illmade-knight/go-threadtrace/emit"
)

// Runner builds the demo's worker set, starts every worker concurrently and
// waits for all of them to finish before returning.
type Runner struct {
	emitter *emit.Emitter
	members int
	free    int
	logger  zerolog.Logger
}

// NewRunner creates a Runner that will launch the given number of
// member-style and free-standing workers.
func NewRunner(emitter *emit.Emitter, members, free int, logger zerolog.Logger) *Runner {
	return &Runner{
		emitter: emitter,
		members: members,
		free:    free,
		logger:  logger.With().Str("component", "Runner").Logger(),
	}
}

// Run emits the main record, reports hardware concurrency, then starts all
// workers and blocks until every started worker has completed. If ctx is
// cancelled before all workers have been started, no further workers start,
// the ones already running are awaited, and the context error is returned.
func (r *Runner) Run(ctx context.Context) error {
	mainID := fmt.Sprintf("main-%s", uuid.New().String())
	r.emitter.Emit(emit.StyleMain, "main", emit.Origin(), mainID)

	// Reported for orientation only; the worker count is fixed by
	// configuration, not sized to the host.
	r.emitter.Banner(emit.StyleMain, fmt.Sprintf("Hardware concurrency: %d", runtime.NumCPU()))

	tasks := make([]Task, 0, r.members+r.free)
	for i := 0; i < r.members; i++ {
		tasks = append(tasks, NewHolder(i+1, r.emitter).Report)
	}
	for i := 0; i < r.free; i++ {
		tasks = append(tasks, FreeTask(i+1, r.emitter))
	}

	r.logger.Info().Int("num_workers", len(tasks)).Msg("Starting workers...")
	if err := runTasks(ctx, tasks); err != nil {
		r.logger.Error().Err(err).Msg("Worker startup aborted")
		return err
	}
	r.logger.Info().Msg("All workers finished")
	return nil
}

// runTasks starts each task in its own goroutine and waits for every started
// task to finish. A cancelled ctx stops further startups but never
// interrupts a task that is already running.
func runTasks(ctx context.Context, tasks []Task) error {
	var wg sync.WaitGroup
	var startErr error
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			startErr = err
			break
		}
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			t()
		}(task)
	}
	wg.Wait()
	return startErr
}
