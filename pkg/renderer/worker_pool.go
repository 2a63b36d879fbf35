package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Index into the result slice
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	TileID int
	Stats  TileStats
}

// TileFunc renders one task. It runs on a pool goroutine.
type TileFunc func(task TileTask) (TileStats, error)

// WorkerPool runs tile tasks on a bounded number of goroutines. The first
// failing task cancels the pool: tasks that have not started yet are skipped
// and Wait reports that failure.
type WorkerPool struct {
	group      *errgroup.Group
	ctx        context.Context
	numWorkers int
	run        TileFunc
	results    []TileResult
}

// NewWorkerPool creates a worker pool with room for numTasks results
func NewWorkerPool(numWorkers, numTasks int, run TileFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(numWorkers)

	return &WorkerPool{
		group:      group,
		ctx:        ctx,
		numWorkers: numWorkers,
		run:        run,
		results:    make([]TileResult, numTasks),
	}
}

// SubmitTask submits a tile task to the worker pool. It blocks while all
// workers are busy.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.group.Go(func() (err error) {
		if wp.ctx.Err() != nil {
			return nil // another tile already failed
		}

		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("tile %d: panic: %v", task.Tile.ID, r)
			}
		}()

		stats, runErr := wp.run(task)
		if runErr != nil {
			return fmt.Errorf("tile %d: %w", task.Tile.ID, runErr)
		}

		// Each task owns its own slot
		wp.results[task.TaskID] = TileResult{
			TaskID: task.TaskID,
			TileID: task.Tile.ID,
			Stats:  stats,
		}
		return nil
	})
}

// Wait blocks until every submitted task has finished and returns their
// results in submission order, or the first error
func (wp *WorkerPool) Wait() ([]TileResult, error) {
	if err := wp.group.Wait(); err != nil {
		return nil, err
	}
	return wp.results, nil
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
