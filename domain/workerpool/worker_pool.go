package workerpool

import "sync"

// Job represents the job to be run
type Job[T any] struct {
	Task func() (T, error)
}

// JobResult represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

// Dispatcher fans jobs out to a fixed number of workers and collects
// their results on ResultQueue. ResultQueue is closed once all workers
// have drained the job queue.
type Dispatcher[T any] struct {
	MaxWorkers  int
	JobQueue    chan Job[T]
	ResultQueue chan JobResult[T]
}

func NewDispatcher[T any](maxWorkers int) *Dispatcher[T] {
	return &Dispatcher[T]{
		MaxWorkers:  maxWorkers,
		JobQueue:    make(chan Job[T]),
		ResultQueue: make(chan JobResult[T]),
	}
}

// Run starts the workers and blocks until the job queue is closed and all
// in-flight jobs have completed.
func (d *Dispatcher[T]) Run() {
	var wg sync.WaitGroup
	for i := 0; i < d.MaxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range d.JobQueue {
				result, err := job.Task()
				d.ResultQueue <- JobResult[T]{Result: result, Err: err}
			}
		}()
	}

	wg.Wait()
	close(d.ResultQueue)
}
