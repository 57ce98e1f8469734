package models

import (
	"encoding/json"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/permrank/internal/permrank/ranker"
)

func TestAppConfigYAMLParse(t *testing.T) {
	type testCase struct {
		name     string
		content  string
		expected AppConfig
		wantErr  error
	}

	defaultHTTPConfig := HTTPConfig{
		ListenAddress: ":8080",
		ReadTimeout:   time.Minute,
		WriteTimeout:  time.Minute,
		IdleTimeout:   time.Minute,
		BodyLimit:     "1M",
	}

	testCases := []testCase{
		{
			name:    "EmptyConfig",
			content: "{}",
			expected: AppConfig{
				LogFormat:    "text",
				MaxLength:    DefaultMaxLength,
				WorkersCount: runtime.NumCPU(),
				HTTPConfig:   defaultHTTPConfig,
			},
		},
		{
			name: "RankFullConfig",
			content: `
log_format: json
max_length: 40
workers_count: 3
`,
			expected: AppConfig{
				LogFormat:    "json",
				MaxLength:    40,
				WorkersCount: 3,
				HTTPConfig:   defaultHTTPConfig,
			},
		},
		{
			name: "HttpFullConfig",
			content: `
http:
    listen_address: "http://127.4.4.2:80"
    read_timeout: 60s
    write_timeout: 1m
    idle_timeout: 30000ms
    body_limit: 2K
`,
			expected: AppConfig{
				LogFormat:    "text",
				MaxLength:    DefaultMaxLength,
				WorkersCount: runtime.NumCPU(),
				HTTPConfig: HTTPConfig{
					ListenAddress: "http://127.4.4.2:80",
					ReadTimeout:   time.Minute,
					WriteTimeout:  time.Minute,
					IdleTimeout:   30 * time.Second,
					BodyLimit:     "2K",
				},
			},
		},
		{
			name: "AllPossibleErrors",
			content: `
log_format: yaml
max_length: -1
workers_count: -2
http:
    listen_address: "http://127.4.4.2:80"
    read_timeout: -1s
    write_timeout: -1m
    idle_timeout: -1ms
`,
			wantErr: errors.New(
				`failed to validate app config:
- unknown log format: yaml
- max length should be grater than 0, got -1
- workers count should be grater than 0, got -2
failed to validate HTTP configuration:
- read timeout should be grater than 0, got -1s
- write timeout should be grater than 0, got -1m0s
- idle timeout should be grater than 0, got -1ms`,
			),
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		tempFile, err := os.CreateTemp(t.TempDir(), "permrank-config-*.yml")
		require.NoError(t, err)
		defer os.Remove(tempFile.Name())

		_, err = tempFile.WriteString(tc.content)
		if err != nil {
			t.Fatalf("failed to save content: %s", err)
		}

		err = tempFile.Close()
		if err != nil {
			t.Fatalf("failed to close file: %s", err)
		}

		var cfg AppConfig

		err = cfg.ParseFromFile(tempFile.Name())
		if tc.wantErr != nil {
			// unwrap error to exclude path to config file
			require.EqualError(t, errors.Unwrap(err), tc.wantErr.Error())
		} else {
			require.NoError(t, err)
			require.Equal(t, tc.expected, cfg)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestAppConfigEnvOverride(t *testing.T) {
	t.Setenv("PERMRANK_MAX_LENGTH", "12")
	t.Setenv("PERMRANK_HTTP_LISTEN_ADDRESS", ":9090")

	var cfg AppConfig

	require.NoError(t, cfg.ParseFromFile(""))
	require.Equal(t, 12, cfg.MaxLength)
	require.Equal(t, ":9090", cfg.HTTPConfig.ListenAddress)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestAppConfigUnknownFormat(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "permrank-config-*.toml")
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())

	var cfg AppConfig

	require.ErrorContains(t, cfg.ParseFromFile(tempFile.Name()), `unknown file format ".toml"`)
}

func TestValidateInput(t *testing.T) {
	type testCase struct {
		name      string
		input     string
		maxLength int
		wantErr   error
	}

	testCases := []testCase{
		{name: "Valid", input: "question", maxLength: DefaultMaxLength},
		{name: "Empty", input: "", maxLength: DefaultMaxLength, wantErr: ranker.ErrInvalidInput},
		{name: "Too long", input: "abcdefghijklmnopqrstuvwxyz", maxLength: DefaultMaxLength, wantErr: ErrInputTooLong},
		{name: "Exactly at bound", input: "abcdefghijklmnopqrstuvwxy", maxLength: DefaultMaxLength},
		{name: "Runes are counted", input: "ёёё", maxLength: 3},
		{name: "Unbounded", input: "abcdefghijklmnopqrstuvwxyz", maxLength: 0},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		err := ValidateInput(tc.input, tc.maxLength)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr)
		} else {
			require.NoError(t, err)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankResult(t *testing.T) {
	result, err := NewRankResult("bookkeeper")
	require.NoError(t, err)
	require.Equal(t, `The rank for "bookkeeper" is 10743`, result.String())
	require.Equal(t, "151200", result.Total.String())

	data, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"input":"bookkeeper","rank":"10743","total":"151200"}`, string(data))

	var decoded RankResult

	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, result.Input, decoded.Input)
	require.Equal(t, 0, result.Rank.Cmp(decoded.Rank))

	require.Error(t, json.Unmarshal([]byte(`{"input":"a","rank":"x","total":"1"}`), &decoded))

	_, err = NewRankResult("")
	require.ErrorIs(t, err, ranker.ErrInvalidInput)
}
