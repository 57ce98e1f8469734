package serve

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/metrics"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

type handlerOptions struct {
	useCase      usecase.UseCase
	maxLength    int
	workersCount int
	bodyLimit    string
}

type httpHandler func(handlerOptions, echo.Context) error

func toEchoHandler(
	opts handlerOptions,
	handler httpHandler,
) func(echo.Context) error {
	return func(c echo.Context) error {
		return handler(opts, c)
	}
}

// createTaskRequest type used to describe request to rank batch of strings.
type createTaskRequest struct {
	Inputs []string `json:"inputs"`
}

// statusResponse type used to describe progress of task for http client.
type statusResponse struct {
	Finished   bool   `json:"finished"`
	Done       uint64 `json:"done"`
	Total      uint64 `json:"total"`
	Percentage uint64 `json:"percentage"`
}

// response type used to describe response for http client.
type response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// sendResponse function sets headers, status code and body for response and send it to client.
func sendResponse(c echo.Context, format string, statusCode int, response any) error {
	var err error

	switch format {
	case "json":
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		err = c.JSON(statusCode, response)
	case "string":
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)

		strResponse, ok := response.(string)
		if !ok {
			return errors.New("response is not a string")
		}

		err = c.String(statusCode, strResponse)
	}

	if err != nil {
		return errors.Errorf("failed to send response: %v", err)
	}

	return nil
}

func rejectRequestWithMissingLength(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().ContentLength == -1 {
			return echo.NewHTTPError(http.StatusLengthRequired, "Content-Length header required")
		}

		return next(c)
	}
}

func rejectRequestWithBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.ContentLength > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "request must not have a body")
		}

		if req.ContentLength == -1 {
			buf := make([]byte, 1)

			n, err := req.Body.Read(buf)
			if err == nil && n > 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "request must not have a body")
			}
		}

		return next(c)
	}
}

// observeRequests records count and duration of handled requests by route.
func observeRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}

		method := c.Request().Method
		path := c.Path()

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		slog.Debug("request handled",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
		)

		return err
	}
}
