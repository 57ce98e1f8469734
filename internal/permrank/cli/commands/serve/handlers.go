package serve

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tarantool/permrank/internal/permrank/cli/utils"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/ranker"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

func setupRoutes(opts handlerOptions, e *echo.Echo) {
	e.Use(observeRequests)

	get := e.Group("", rejectRequestWithBody)
	get.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	get.GET("/rank", toEchoHandler(opts, handleRank))
	get.GET("/status/:taskID", toEchoHandler(opts, handleStatus))
	get.GET("/result/:taskID", toEchoHandler(opts, handleResult))

	post := e.Group("", rejectRequestWithMissingLength, middleware.BodyLimit(opts.bodyLimit))
	post.POST("/tasks", toEchoHandler(opts, handleCreateTask))
}

// isInputError reports whether err is caused by a string that can't be ranked.
func isInputError(err error) bool {
	return errors.Is(err, ranker.ErrInvalidInput) || errors.Is(err, models.ErrInputTooLong)
}

// handleRank handler for endpoint 'rank'.
func handleRank(opts handlerOptions, c echo.Context) error {
	input := c.QueryParam("input")

	result, err := opts.useCase.Rank(input, opts.maxLength)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if isInputError(err) {
			statusCode = http.StatusBadRequest
		}

		return sendResponse(
			c,
			"json",
			statusCode,
			response{
				Message: "Unable to rank string",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"json",
		http.StatusOK,
		result,
	)
}

// handleCreateTask handler for endpoint 'tasks'.
func handleCreateTask(opts handlerOptions, c echo.Context) error {
	var request createTaskRequest

	err := c.Bind(&request)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusBadRequest,
			response{
				Message: "Invalid request body",
				Error:   err.Error(),
			},
		)
	}

	// task outlives the request
	taskID, err := opts.useCase.CreateTask(
		context.WithoutCancel(c.Request().Context()), usecase.TaskConfig{
			Inputs:       request.Inputs,
			MaxLength:    opts.maxLength,
			WorkersCount: opts.workersCount,
		},
	)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if isInputError(err) {
			statusCode = http.StatusBadRequest
		}

		return sendResponse(
			c,
			"json",
			statusCode,
			response{
				Message: "Failed to start ranking",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"string",
		http.StatusOK,
		taskID,
	)
}

// handleStatus handler for endpoint 'status'.
func handleStatus(opts handlerOptions, c echo.Context) error {
	taskID := c.Param("taskID")

	finished, err := opts.useCase.GetResult(taskID)
	if err != nil && !finished {
		return sendResponse(
			c,
			"json",
			http.StatusNotFound,
			response{
				Message: "Failed to retrieve ranking result",
				Error:   err.Error(),
			},
		)
	}

	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusOK,
			response{
				Message: "Ranking failed",
				Error:   err.Error(),
			},
		)
	}

	progress, err := opts.useCase.GetProgress(taskID)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Failed to retrieve ranking progress",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"json",
		http.StatusOK,
		statusResponse{
			Finished:   finished,
			Done:       progress.Done,
			Total:      progress.Total,
			Percentage: utils.GetPercentage(progress.Total, progress.Done),
		},
	)
}

// handleResult handler for endpoint 'result'.
func handleResult(opts handlerOptions, c echo.Context) error {
	taskID := c.Param("taskID")

	finished, err := opts.useCase.GetResult(taskID)
	if err != nil && !finished {
		return sendResponse(
			c,
			"json",
			http.StatusNotFound,
			response{
				Message: "Failed to retrieve ranking result",
				Error:   err.Error(),
			},
		)
	}

	if !finished {
		return sendResponse(
			c,
			"json",
			http.StatusConflict,
			response{
				Message: "Ranking is not finished yet",
			},
		)
	}

	results, err := opts.useCase.GetResults(taskID)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Ranking failed",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"json",
		http.StatusOK,
		results,
	)
}
