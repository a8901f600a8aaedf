package interpolate

import (
	"fmt"
)

// searcher finds the table segment containing a point. Tables are usually
// close to uniformly spaced, so a direct guess is tried before bisection.
type searcher struct {
	xs []float64
	x0, dx, lim float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs) - 1]
	s.dx = (s.lim - s.x0) / float64(len(xs) - 1)
}

// search returns the index of the largest element of xs which is not larger
// than x, capped at len(xs) - 2 so that it always names a segment.
func (s *searcher) search(x float64) int {
	if !(x >= s.x0 && x <= s.lim) {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g]", x, s.x0, s.lim,
		))
	}

	n := len(s.xs)

	// Guess under the assumption of uniform spacing. The guess names the
	// segment starting at xs[guess], so x must lie strictly below its end
	// unless it is the last segment.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < n-1 && s.xs[guess] <= x &&
		(x < s.xs[guess+1] || guess == n-2) {
		return guess
	}

	// Binary search.
	lo, hi := 0, n - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
