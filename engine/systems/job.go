package systems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/motion/engine/core"
)

// JobTask is a unit of background work, typically writing a rendered frame.
type JobTask struct {
	Name       string
	Run        func() error
	OnComplete func()
	OnFailure  func(err error)
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	closeMu sync.RWMutex
	closed  bool

	errMu sync.Mutex
	errs  []error
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = fmt.Errorf("job system is shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}
	js.start()
	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if job.Run == nil {
		return
	}
	if err := job.Run(); err != nil {
		err = fmt.Errorf("job %q: %w", job.Name, err)
		core.LogError(err.Error())
		js.errMu.Lock()
		js.errs = append(js.errs, err)
		js.errMu.Unlock()
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	js.closeMu.RLock()
	defer js.closeMu.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	js.jobQueue <- jt
	return nil
}

/**
 * @brief Shuts the job system down, waiting for queued jobs. Returns the
 * failures collected since start.
 */
func (js *JobSystem) Shutdown() error {
	js.closeMu.Lock()
	if js.closed {
		js.closeMu.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.closeMu.Unlock()

	js.wg.Wait()

	js.errMu.Lock()
	defer js.errMu.Unlock()
	return errors.Join(js.errs...)
}
