package usecase

import (
	"context"

	"github.com/tarantool/permrank/internal/permrank/models"
)

// UseCase interface implementation should rank strings on demand or in background tasks.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UseCase --output=mock --outpkg=mock
type UseCase interface {
	// Setup function should configure some use case parameters.
	Setup() error
	// Rank function should validate input against maxLength and rank it synchronously.
	Rank(input string, maxLength int) (*models.RankResult, error)
	// CreateTask function should start task to rank batch of inputs.
	CreateTask(ctx context.Context, config TaskConfig) (string, error)
	// GetProgress should return progress of ranking
	GetProgress(taskID string) (Progress, error)
	// GetResult should return task status (completed or not) and an error if necessary.
	GetResult(taskID string) (bool, error)
	// GetResults should return ranks of finished task in order of inputs
	GetResults(taskID string) ([]*models.RankResult, error)
	// WaitResult should wait task end and return error if needed
	WaitResult(taskID string) error
	// Teardown function should wait all tasks finish
	Teardown() error
}
