package ranker

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMultiplicities(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected map[rune]int
	}

	testCases := []testCase{
		{
			name:     "Empty",
			input:    "",
			expected: map[rune]int{},
		},
		{
			name:     "Distinct",
			input:    "abc",
			expected: map[rune]int{'a': 1, 'b': 1, 'c': 1},
		},
		{
			name:     "Bookkeeper",
			input:    "bookkeeper",
			expected: map[rune]int{'b': 1, 'o': 2, 'k': 2, 'e': 3, 'p': 1, 'r': 1},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual := Multiplicities([]rune(tc.input))
		require.Equal(t, tc.expected, actual)

		var sum int
		for _, count := range actual {
			sum += count
		}

		require.Equal(t, len([]rune(tc.input)), sum)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestSortedAlphabet(t *testing.T) {
	require.Equal(t, []rune("bekopr"), SortedAlphabet([]rune("bookkeeper")))
	require.Equal(t, []rune("1234a"), SortedAlphabet([]rune("a1234")))
	require.Empty(t, SortedAlphabet(nil))
}

func TestConsume(t *testing.T) {
	remaining := Multiplicities([]rune("aab"))

	count, err := consume(remaining, 'a')
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, 1, remaining['a'])

	_, err = consume(remaining, 'z')

	var invariantErr *InvariantViolationError

	require.True(t, errors.As(err, &invariantErr))
	require.Contains(t, err.Error(), `'z'`)
}
