package combine

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Process runs tasks through a fixed pool of workers and returns one slot per
// task, indexed by FileTask.Index. Workers pull the next unclaimed task from a
// shared cursor until none remain; Process returns after all of them exit.
//
// Slots of skipped files are empty. The only error is ctx's, once it is done.
func Process(ctx context.Context, tasks []FileTask, cfg ProcessConfig, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	slots := make([]string, len(tasks))
	if len(tasks) == 0 {
		return slots, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var cursor atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	logger.Debug("Initializing worker pool", zap.Int("workers", workers), zap.Int("tasks", len(tasks)))
	for w := 0; w < workers; w++ {
		workerLogger := logger.With(zap.Int("workerID", w))
		g.Go(func() error {
			return worker(gctx, tasks, slots, &cursor, cfg, workerLogger)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("All files processed", zap.Int("processedFiles", len(tasks)))
	return slots, nil
}

// worker claims tasks until the cursor passes the end of tasks.
func worker(ctx context.Context, tasks []FileTask, slots []string, cursor *atomic.Int64, cfg ProcessConfig, logger *zap.Logger) error {
	processed := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		i := int(cursor.Add(1) - 1)
		if i >= len(tasks) {
			break
		}

		task := tasks[i]
		slots[task.Index] = ProcessSingleFile(task.Path, cfg, logger)
		processed++
	}

	logger.Debug("Worker finished processing", zap.Int("processed", processed))
	return nil
}
