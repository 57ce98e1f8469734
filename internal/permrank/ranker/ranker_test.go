package ranker

import (
	"math/big"
	"slices"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// nextPermutation rearranges chars into the next lexicographically greater arrangement.
// It returns false when chars is already the largest one.
func nextPermutation(chars []rune) bool {
	i := len(chars) - 2
	for i >= 0 && chars[i] >= chars[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(chars) - 1
	for chars[j] <= chars[i] {
		j--
	}

	chars[i], chars[j] = chars[j], chars[i]
	slices.Reverse(chars[i+1:])

	return true
}

// arrangements returns all distinct arrangements of runes of s in lexicographic order.
func arrangements(s string) []string {
	chars := []rune(s)
	slices.Sort(chars)

	result := []string{string(chars)}
	for nextPermutation(chars) {
		result = append(result, string(chars))
	}

	return result
}

func TestRank(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected int64
	}

	testCases := []testCase{
		{name: "Sorted", input: "abc", expected: 1},
		{name: "Reversed", input: "cba", expected: 6},
		{name: "Single char", input: "z", expected: 1},
		{name: "Same chars", input: "aaaa", expected: 1},
		{name: "Two pairs", input: "abab", expected: 2},
		{name: "Sorted with duplicates", input: "aaab", expected: 1},
		{name: "Largest with duplicates", input: "baaa", expected: 4},
		{name: "Question", input: "question", expected: 24572},
		{name: "Bookkeeper", input: "bookkeeper", expected: 10743},
		{name: "Digits before letters", input: "a1234", expected: 97},
		{name: "Non ASCII", input: "ба", expected: 2},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := Rank(tc.input)
		require.NoError(t, err)
		require.Equal(t, 0, big.NewInt(tc.expected).Cmp(actual), "got rank %s", actual)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankOrderedSequences(t *testing.T) {
	type testCase struct {
		name    string
		ordered []string
	}

	testCases := []testCase{
		{
			name:    "Distinct chars",
			ordered: []string{"abc", "acb", "bac", "bca", "cab", "cba"},
		},
		{
			name: "Duplicated chars",
			ordered: []string{
				"aabc", "aacb", "abac", "abca", "acab", "acba",
				"baac", "baca", "bcaa", "caab", "caba", "cbaa",
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		for i, input := range tc.ordered {
			actual, err := Rank(input)
			require.NoError(t, err)
			require.Equal(t, int64(i+1), actual.Int64(), "rank of %q", input)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankBijection(t *testing.T) {
	type testCase struct {
		name     string
		multiset string
		total    int64
	}

	testCases := []testCase{
		{name: "Distinct", multiset: "edcba", total: 120},
		{name: "One pair", multiset: "aabc", total: 12},
		{name: "Pairs", multiset: "aabbcc", total: 90},
		{name: "Bookkeeper prefix", multiset: "bookkee", total: 630},
		{name: "Mississippi", multiset: "mississippi", total: 34650},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		ordered := arrangements(tc.multiset)
		require.Len(t, ordered, int(tc.total))

		previous := big.NewInt(0)

		for i, input := range ordered {
			actual, err := Rank(input)
			require.NoError(t, err)
			require.Equal(t, int64(i+1), actual.Int64(), "rank of %q", input)
			require.Equal(t, 1, actual.Cmp(previous), "%q is not ranked after its predecessor", input)

			previous = actual
		}

		maxRank, err := MaxRank(tc.multiset)
		require.NoError(t, err)
		require.Equal(t, 0, maxRank.Cmp(previous))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankBeyondInt64(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}

	testCases := []testCase{
		{
			name:     "Reversed alphabet",
			input:    "zyxwvutsrqponmlkjihgfedcba",
			expected: Factorial(26).String(),
		},
		{
			name:     "Reversed 25 chars",
			input:    "yxwvutsrqponmlkjihgfedcba",
			expected: "15511210043330985984000000",
		},
		{
			name:     "Sorted alphabet",
			input:    "abcdefghijklmnopqrstuvwxyz",
			expected: "1",
		},
		{
			name:     "Second smallest",
			input:    "abcdefghijklmnopqrstuvwxzy",
			expected: "2",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := Rank(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, actual.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRankEmpty(t *testing.T) {
	actual, err := Rank("")

	require.Nil(t, actual)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRankConcurrent(t *testing.T) {
	const goroutines = 16

	inputs := []string{"question", "bookkeeper", "mississippi", "zyxwvutsrqponmlkjihgfedcba"}

	expected := make([]*big.Int, len(inputs))

	for i, input := range inputs {
		rank, err := Rank(input)
		require.NoError(t, err)

		expected[i] = rank
	}

	var wg sync.WaitGroup

	errs := make(chan error, goroutines*len(inputs))

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i, input := range inputs {
				rank, err := Rank(input)
				if err != nil {
					errs <- err

					continue
				}

				if rank.Cmp(expected[i]) != 0 {
					errs <- errors.Errorf("rank of %q changed: %s != %s", input, rank, expected[i])
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestMaxRank(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}

	testCases := []testCase{
		{name: "Single char", input: "a", expected: "1"},
		{name: "Distinct", input: "abcd", expected: "24"},
		{name: "Two pairs", input: "abbacdef", expected: "10080"},
		{name: "Bookkeeper", input: "bookkeeper", expected: "151200"},
		{name: "Same chars", input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", expected: "1"},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := MaxRank(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, actual.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}

	_, err := MaxRank("")
	require.ErrorIs(t, err, ErrInvalidInput)
}
