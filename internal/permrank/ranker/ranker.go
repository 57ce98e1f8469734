package ranker

import (
	"math/big"

	"github.com/pkg/errors"
)

// Rank returns the 1-indexed position of s among all distinct permutations of its runes
// sorted in lexicographic order. Runes are compared by code point.
//
// Step-by-step explanation:
//   - count runes of s, the counts are the pool of runes not placed yet;
//   - for every position, each distinct rune c smaller than s[i] that is still in the pool
//     skips (k-1)! / prod((m_d - [d == c])!) arrangements, where k is the pool size
//     and m_d are the pool counts;
//   - since prod((m_d - [d == c])!) = prod(m_d!) / m_c, the skipped blocks of all smaller
//     runes add up to (k-1)! * sum(m_c) / prod(m_d!);
//   - that sum is computed with one exact division per position, a non-zero remainder
//     is reported as InvariantViolationError;
//   - remove s[i] from the pool and continue with the next position.
//
// It is safe to call Rank concurrently, all state is local to a call.
func Rank(s string) (*big.Int, error) {
	chars := []rune(s)
	if len(chars) == 0 {
		return nil, errors.WithMessage(ErrInvalidInput, "string cannot be empty")
	}

	remaining := Multiplicities(chars)
	alphabet := SortedAlphabet(chars)
	factorials := factorialTable(len(chars))

	// prod(m_d!) over the pool
	denominator := big.NewInt(1)
	for _, count := range remaining {
		denominator.Mul(denominator, factorials[count])
	}

	rank := big.NewInt(1)
	skipped := new(big.Int)

	for i, c := range chars {
		var smaller int

		for _, candidate := range alphabet {
			if candidate >= c {
				break
			}

			smaller += remaining[candidate]
		}

		if smaller > 0 {
			skipped.Mul(factorials[len(chars)-i-1], big.NewInt(int64(smaller)))

			block, err := divExact(skipped, denominator)
			if err != nil {
				return nil, errors.WithMessagef(err, "failed to count arrangements skipped at position %d", i)
			}

			rank.Add(rank, block)
		}

		count, err := consume(remaining, c)
		if err != nil {
			return nil, err
		}

		// m! turns into (m-1)!
		denominator, err = divExact(denominator, big.NewInt(int64(count)))
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to consume %q at position %d", c, i)
		}
	}

	return rank, nil
}

// MaxRank returns the number of distinct permutations of runes of s, which is also the rank
// of its lexicographically largest arrangement: len(s)! / prod(m_i!).
func MaxRank(s string) (*big.Int, error) {
	chars := []rune(s)
	if len(chars) == 0 {
		return nil, errors.WithMessage(ErrInvalidInput, "string cannot be empty")
	}

	denominator := big.NewInt(1)
	for _, count := range Multiplicities(chars) {
		denominator.Mul(denominator, Factorial(count))
	}

	return divExact(Factorial(len(chars)), denominator)
}
