package ranker

import (
	"math/big"
)

// Factorial returns n! as an arbitrary-precision integer. It returns 1 for n <= 1.
func Factorial(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(1, int64(n))
}

// factorialTable returns table[i] = i! for every i in [0, n].
func factorialTable(n int) []*big.Int {
	table := make([]*big.Int, n+1)
	table[0] = big.NewInt(1)

	for i := 1; i <= n; i++ {
		table[i] = new(big.Int).Mul(table[i-1], big.NewInt(int64(i)))
	}

	return table
}

// divExact divides x by y and fails if the remainder is not zero.
func divExact(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, newInvariantViolationError("division of %s by zero", x)
	}

	quotient, remainder := new(big.Int).QuoRem(x, y, new(big.Int))
	if remainder.Sign() != 0 {
		return nil, newInvariantViolationError("%s is not divisible by %s, remainder %s", x, y, remainder)
	}

	return quotient, nil
}
