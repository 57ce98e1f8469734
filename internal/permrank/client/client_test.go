package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/permrank/internal/permrank/ranker"
)

func TestNew(t *testing.T) {
	_, err := New("http://localhost:8080", DefaultRetryMax)
	require.NoError(t, err)

	_, err = New("localhost:8080", DefaultRetryMax)
	require.Error(t, err)

	_, err = New("ftp://localhost", DefaultRetryMax)
	require.ErrorContains(t, err, "scheme should be http or https")
}

func TestRank(t *testing.T) {
	type testCase struct {
		name         string
		input        string
		statusCode   int
		body         string
		expectedRank string
		wantErr      error
		errContains  string
	}

	testCases := []testCase{
		{
			name:         "Successful",
			input:        "bookkeeper",
			statusCode:   http.StatusOK,
			body:         `{"input":"bookkeeper","rank":"10743","total":"151200"}`,
			expectedRank: "10743",
		},
		{
			name:        "Rejected input",
			input:       "",
			statusCode:  http.StatusBadRequest,
			body:        `{"message":"String is not valid","error":"string cannot be empty: invalid input"}`,
			wantErr:     ranker.ErrInvalidInput,
			errContains: "String is not valid",
		},
		{
			name:        "Server failure",
			input:       "abc",
			statusCode:  http.StatusNotFound,
			body:        "not found",
			errContains: "unexpected status 404: not found",
		},
		{
			name:        "Broken body",
			input:       "abc",
			statusCode:  http.StatusOK,
			body:        `{"input":"abc","rank":"one"}`,
			errContains: "failed to decode rank result",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/rank", r.URL.Path)
			require.Equal(t, tc.input, r.URL.Query().Get("input"))

			w.WriteHeader(tc.statusCode)
			_, _ = w.Write([]byte(tc.body))
		}))
		defer server.Close()

		c, err := New(server.URL, 0)
		require.NoError(t, err)

		result, err := c.Rank(context.Background(), tc.input)
		if tc.errContains != "" {
			require.ErrorContains(t, err, tc.errContains)

			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr))
			}

			return
		}

		require.NoError(t, err)
		require.Equal(t, tc.input, result.Input)
		require.Equal(t, tc.expectedRank, result.Rank.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{"input":"cba","rank":"6","total":"6"}`))
	}))
	defer server.Close()

	c, err := New(server.URL+"/", DefaultRetryMax)
	require.NoError(t, err)

	result, err := c.Rank(context.Background(), "cba")
	require.NoError(t, err)
	require.Equal(t, "6", result.Rank.String())
	require.Equal(t, int32(2), calls.Load())
}
