package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSendResponse(t *testing.T) {
	type testCase struct {
		name        string
		format      string
		statusCode  int
		response    any
		expectError bool
		expectBody  string
		contentType string
	}

	testCases := []testCase{
		{
			name:        "Valid JSON response",
			format:      "json",
			statusCode:  http.StatusOK,
			response:    response{Message: "ok"},
			expectBody:  "{\"message\":\"ok\"}\n",
			contentType: echo.MIMEApplicationJSON,
		},
		{
			name:        "Valid string response",
			format:      "string",
			statusCode:  http.StatusOK,
			response:    "task-id",
			expectBody:  "task-id",
			contentType: echo.MIMETextPlainCharsetUTF8,
		},
		{
			name:        "Invalid string response",
			format:      "string",
			statusCode:  http.StatusOK,
			response:    42,
			expectError: true,
			contentType: echo.MIMETextPlainCharsetUTF8,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()
		c := e.NewContext(req, res)

		err := sendResponse(c, tc.format, tc.statusCode, tc.response)

		require.Equal(t, tc.expectError, err != nil)
		require.Equal(t, tc.statusCode, res.Code)
		require.Equal(t, tc.expectBody, res.Body.String())
		require.Equal(t, tc.contentType, res.Header().Get(echo.HeaderContentType))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRequestBodyMiddlewares(t *testing.T) {
	type testCase struct {
		name         string
		middleware   echo.MiddlewareFunc
		body         io.Reader
		chunked      bool
		expectedCode int
	}

	testCases := []testCase{
		{
			name:         "GET without body",
			middleware:   rejectRequestWithBody,
			expectedCode: http.StatusOK,
		},
		{
			name:         "GET with body",
			middleware:   rejectRequestWithBody,
			body:         strings.NewReader("abc"),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "GET with chunked body",
			middleware:   rejectRequestWithBody,
			body:         strings.NewReader("abc"),
			chunked:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "POST with length",
			middleware:   rejectRequestWithMissingLength,
			body:         strings.NewReader(`{"inputs":["abc"]}`),
			expectedCode: http.StatusOK,
		},
		{
			name:         "POST without length",
			middleware:   rejectRequestWithMissingLength,
			body:         strings.NewReader(`{"inputs":["abc"]}`),
			chunked:      true,
			expectedCode: http.StatusLengthRequired,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", tc.body)

		if tc.chunked {
			req.ContentLength = -1
		}

		res := httptest.NewRecorder()
		c := e.NewContext(req, res)

		handler := tc.middleware(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		err := handler(c)
		if tc.expectedCode == http.StatusOK {
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, res.Code)

			return
		}

		var httpErr *echo.HTTPError

		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, tc.expectedCode, httpErr.Code)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
