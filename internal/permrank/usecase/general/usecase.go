package general

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/metrics"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCase type is implementation of common use case.
type UseCase struct {
	tasks map[string]*Task
	mutex *sync.RWMutex
}

// UseCaseConfig type is used to describe config for common usecase.
type UseCaseConfig struct{}

// NewUseCase function creates UseCase object.
func NewUseCase(_ UseCaseConfig) *UseCase {
	return &UseCase{
		tasks: make(map[string]*Task),
		mutex: &sync.RWMutex{},
	}
}

// Setup function do nothing.
func (uc *UseCase) Setup() error {
	return nil
}

// Rank function validates input and ranks it in the caller goroutine.
func (uc *UseCase) Rank(input string, maxLength int) (*models.RankResult, error) {
	if err := models.ValidateInput(input, maxLength); err != nil {
		metrics.RanksTotal.WithLabelValues(metrics.Status(err)).Inc()

		return nil, err
	}

	return rank(input)
}

// CreateTask function receive inputs from delivery and ranks them in background.
// It works asynchronously and returns string task ID to get results later.
func (uc *UseCase) CreateTask(ctx context.Context, config usecase.TaskConfig) (string, error) {
	task, err := NewTask(config)
	if err != nil {
		return "", err
	}

	uc.mutex.Lock()
	uc.tasks[task.ID] = task
	uc.mutex.Unlock()

	task.RunTask(ctx, func() { uc.removeTask(task.ID) })

	return task.ID, nil
}

// GetProgress function returns current progress of task by ID.
func (uc *UseCase) GetProgress(taskID string) (usecase.Progress, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return usecase.Progress{}, err
	}

	return task.GetProgress(), nil
}

// GetResult function returns error of task by ID.
func (uc *UseCase) GetResult(taskID string) (bool, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return false, err
	}

	return task.GetError()
}

// GetResults function returns ranks of finished task by ID.
func (uc *UseCase) GetResults(taskID string) ([]*models.RankResult, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}

	return task.GetResults()
}

// WaitResult function waits task by ID end and returns it error.
func (uc *UseCase) WaitResult(taskID string) error {
	task, err := uc.getTask(taskID)
	if err != nil {
		return err
	}

	return task.WaitError()
}

func (uc *UseCase) getTask(taskID string) (*Task, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return nil, errors.Errorf("no task with task id %s", taskID)
	}

	return task, nil
}

// removeTask function removes task from local storage.
func (uc *UseCase) removeTask(taskID string) {
	uc.mutex.Lock()
	delete(uc.tasks, taskID)
	uc.mutex.Unlock()
}

// Teardown function wait all ranking processes.
func (uc *UseCase) Teardown() error {
	uc.mutex.RLock()
	for _, task := range uc.tasks {
		_ = task.WaitError()
	}
	uc.mutex.RUnlock()

	return nil
}

func rank(input string) (*models.RankResult, error) {
	start := time.Now()

	result, err := models.NewRankResult(input)

	metrics.RankDuration.Observe(time.Since(start).Seconds())
	metrics.InputLength.Observe(float64(utf8.RuneCountInString(input)))
	metrics.RanksTotal.WithLabelValues(metrics.Status(err)).Inc()

	return result, err
}
