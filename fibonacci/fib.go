package fibonacci

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Fib returns the n-th Fibonacci number, Fib(1) = Fib(2) = 1.
func Fib(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("fib(%d): n must be >= 1: %w", n, ErrInvalidArgument)
	}
	a, b := 1, 1
	for i := 2; i < n; i++ {
		if b > math.MaxInt-a {
			return 0, fmt.Errorf("fib(%d) overflows int: %w", n, ErrInvalidArgument)
		}
		a, b = b, a+b
	}
	return b, nil
}
