package general

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/common"
	"github.com/tarantool/permrank/internal/permrank/metrics"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/ranker"
	"github.com/tarantool/permrank/internal/permrank/usecase"
	"github.com/tarantool/permrank/internal/permrank/usecase/general/progress"
)

const TTL = 5 * time.Minute

// Task type is implementation of one task from usecase.
type Task struct {
	ID           string
	inputs       []string
	workersCount int
	results      []*models.RankResult
	progress     *progress.Handler
	runMutex     *sync.Mutex
	statusMutex  *sync.RWMutex
	finished     bool
	error        error
}

// NewTask function validates inputs and creates context for one ranking job.
func NewTask(cfg usecase.TaskConfig) (*Task, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.WithMessage(ranker.ErrInvalidInput, "no strings to rank")
	}

	for i, input := range cfg.Inputs {
		if err := models.ValidateInput(input, cfg.MaxLength); err != nil {
			return nil, errors.WithMessagef(err, "input #%d", i+1)
		}
	}

	return &Task{
		ID:           uuid.NewString(),
		inputs:       slices.Clone(cfg.Inputs),
		workersCount: cfg.WorkersCount,
		results:      make([]*models.RankResult, len(cfg.Inputs)),
		progress:     progress.NewHandler(),
		runMutex:     &sync.Mutex{},
		statusMutex:  &sync.RWMutex{},
		finished:     false,
		error:        nil,
	}, nil
}

// RunTask function ranks all inputs of task in background.
func (t *Task) RunTask(ctx context.Context, callback func()) {
	started := make(chan struct{})

	go func() {
		t.runMutex.Lock()
		defer t.runMutex.Unlock()

		t.statusMutex.Lock()
		t.finished = false
		t.error = nil
		t.statusMutex.Unlock()

		started <- struct{}{}

		err := t.runTask(ctx)

		metrics.TasksTotal.WithLabelValues(metrics.Status(err)).Inc()

		t.statusMutex.Lock()
		t.finished = true
		t.error = err
		t.statusMutex.Unlock()

		time.AfterFunc(TTL, callback)
	}()

	<-started
}

func (t *Task) runTask(ctx context.Context) error {
	metrics.ActiveTasks.Inc()
	defer metrics.ActiveTasks.Dec()

	t.progress.Create(uint64(len(t.inputs)))

	pool := common.NewWorkerPool(func(index int) error { return t.rankInput(ctx, index) }, t.workersCount)
	pool.Start()
	defer pool.Stop()

	slog.Debug("start ranking", "task", t.ID, "inputs", len(t.inputs))

	for i := range t.inputs {
		if common.CtxClosed(ctx) {
			break
		}

		pool.Submit(i)
	}

	if err := pool.WaitOrError(); err != nil {
		return errors.WithMessage(err, "failed to rank inputs")
	}

	if common.CtxClosed(ctx) {
		return &common.ContextCancelError{}
	}

	slog.Debug("ranking finished", "task", t.ID)

	return nil
}

func (t *Task) rankInput(ctx context.Context, index int) error {
	if common.CtxClosed(ctx) {
		return &common.ContextCancelError{}
	}

	result, err := rank(t.inputs[index])
	if err != nil {
		return err
	}

	// every index is ranked by exactly one worker
	t.results[index] = result

	t.progress.Add(1)

	return nil
}

func (t *Task) GetProgress() usecase.Progress {
	return t.progress.Get()
}

func (t *Task) GetError() (bool, error) {
	t.statusMutex.RLock()
	defer t.statusMutex.RUnlock()

	return t.finished, t.error
}

// GetResults returns ranks in order of inputs, it fails if task is still running or failed.
func (t *Task) GetResults() ([]*models.RankResult, error) {
	t.statusMutex.RLock()
	defer t.statusMutex.RUnlock()

	if !t.finished {
		return nil, errors.Errorf("task %s is not finished yet", t.ID)
	}

	if t.error != nil {
		return nil, t.error
	}

	return slices.Clone(t.results), nil
}

func (t *Task) WaitError() error {
	t.runMutex.Lock()
	defer t.runMutex.Unlock()

	return t.error
}
