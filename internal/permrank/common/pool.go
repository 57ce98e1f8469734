package common

import (
	"sync"
	"sync/atomic"
)

// WorkerPool represents a pool of goroutines that run the same function over submitted jobs.
type WorkerPool[T any] struct {
	fn          func(T) error
	workerCount int
	workersWg   *sync.WaitGroup
	closed      *atomic.Bool

	jobsWg    *sync.WaitGroup
	jobsMutex *sync.Mutex
	jobs      chan T
	errors    chan error
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers.
// Values of workerCount less than one start a single worker.
func NewWorkerPool[T any](fn func(T) error, workerCount int) *WorkerPool[T] {
	return &WorkerPool[T]{
		fn:          fn,
		workerCount: max(workerCount, 1),
		workersWg:   &sync.WaitGroup{},
		closed:      &atomic.Bool{},
		jobsWg:      &sync.WaitGroup{},
		jobsMutex:   &sync.Mutex{},
		jobs:        make(chan T),
		errors:      make(chan error, 1),
	}
}

// Start initializes the worker pool and starts processing jobs.
func (wp *WorkerPool[T]) Start() {
	for range wp.workerCount {
		wp.workersWg.Add(1)

		go func() {
			defer wp.workersWg.Done()

			for job := range wp.jobs {
				if !wp.closed.Load() {
					if err := wp.fn(job); err != nil {
						wp.jobError(err)
					}
				}

				wp.jobsWg.Done()
			}
		}()
	}
}

// jobError keeps the first error only.
func (wp *WorkerPool[T]) jobError(err error) {
	select {
	case wp.errors <- err:
	default:
	}
}

// Submit adds a new job to the pool. It blocks until a worker takes the job.
func (wp *WorkerPool[T]) Submit(job T) {
	wp.jobsMutex.Lock()
	defer wp.jobsMutex.Unlock()

	if wp.closed.Load() {
		return
	}

	wp.jobsWg.Add(1)
	wp.jobs <- job
}

// WaitOrError waits for all submitted jobs or first error.
func (wp *WorkerPool[T]) WaitOrError() error {
	done := make(chan struct{})

	go func() {
		wp.jobsWg.Wait()
		close(done)
	}()

	select {
	case err := <-wp.errors:
		return err
	case <-done:
		// an error of the last job is sent before it is marked done
		select {
		case err := <-wp.errors:
			return err
		default:
			return nil
		}
	}
}

// Stop waits for all workers to finish and closes the job channel.
func (wp *WorkerPool[T]) Stop() {
	wp.jobsMutex.Lock()
	close(wp.jobs)
	wp.closed.Store(true)
	wp.jobsMutex.Unlock()

	wp.workersWg.Wait()

	close(wp.errors)
}
