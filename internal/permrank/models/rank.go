package models

import (
	"encoding/json"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/ranker"
)

// ErrInputTooLong is returned when an input exceeds the configured length bound.
var ErrInputTooLong = errors.New("input is too long")

// RankResult type is used to describe rank of one input string.
type RankResult struct {
	Input string
	// Rank is the 1-indexed position of Input among distinct permutations of its runes.
	Rank *big.Int
	// Total is the number of distinct permutations of runes of Input.
	Total *big.Int
}

// rankResultJSON type is a wire representation of RankResult, ranks are decimal strings
// so clients without big integers don't lose precision.
type rankResultJSON struct {
	Input string `json:"input"`
	Rank  string `json:"rank"`
	Total string `json:"total"`
}

// NewRankResult function ranks input and creates RankResult object.
func NewRankResult(input string) (*RankResult, error) {
	rank, err := ranker.Rank(input)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to rank %q", input)
	}

	total, err := ranker.MaxRank(input)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to count permutations of %q", input)
	}

	return &RankResult{
		Input: input,
		Rank:  rank,
		Total: total,
	}, nil
}

// String returns the line printed by CLI for the result.
func (r *RankResult) String() string {
	return fmt.Sprintf("The rank for %q is %s", r.Input, r.Rank)
}

func (r *RankResult) MarshalJSON() ([]byte, error) {
	out := rankResultJSON{Input: r.Input}

	if r.Rank != nil {
		out.Rank = r.Rank.String()
	}

	if r.Total != nil {
		out.Total = r.Total.String()
	}

	return json.Marshal(out) //nolint:wrapcheck
}

func (r *RankResult) UnmarshalJSON(data []byte) error {
	var in rankResultJSON

	if err := json.Unmarshal(data, &in); err != nil {
		return errors.New(err.Error())
	}

	rank, ok := new(big.Int).SetString(in.Rank, 10)
	if !ok {
		return errors.Errorf("invalid rank %q", in.Rank)
	}

	total, ok := new(big.Int).SetString(in.Total, 10)
	if !ok {
		return errors.Errorf("invalid total %q", in.Total)
	}

	r.Input = in.Input
	r.Rank = rank
	r.Total = total

	return nil
}

// ValidateInput checks that input can be ranked under the length bound.
// A maxLength of zero or less disables the bound.
func ValidateInput(input string, maxLength int) error {
	if input == "" {
		return errors.WithMessage(ranker.ErrInvalidInput, "string cannot be empty")
	}

	if length := utf8.RuneCountInString(input); maxLength > 0 && length > maxLength {
		return errors.WithMessagef(
			ErrInputTooLong,
			"please specify a string up to %d characters, got %d", maxLength, length,
		)
	}

	return nil
}
