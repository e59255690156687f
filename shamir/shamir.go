// Package shamir implements Shamir secret sharing over the BN254 scalar
// field. A secret becomes the constant term of a random polynomial of degree
// threshold-1; any threshold shares recover it by Lagrange interpolation,
// fewer reveal nothing.
package shamir

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/giuliop/sumcheck/poly"
)

// Share is one point of the sharing polynomial.
type Share struct {
	X fr.Element
	Y fr.Element
}

// Split shares secret into n shares, any threshold of which recover it.
func Split(secret fr.Element, threshold, n int) ([]Share, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("threshold must be at least 1, got %d", threshold)
	}
	if n < threshold {
		return nil, fmt.Errorf("cannot split into %d shares with threshold %d",
			n, threshold)
	}

	coefficients := make([]fr.Element, threshold)
	coefficients[0] = secret
	for i := 1; i < threshold; i++ {
		if _, err := coefficients[i].SetRandom(); err != nil {
			return nil, fmt.Errorf("error sampling coefficient: %v", err)
		}
	}
	p := poly.New(coefficients...)

	shares := make([]Share, n)
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		var x fr.Element
		for {
			if _, err := x.SetRandom(); err != nil {
				return nil, fmt.Errorf("error sampling share point: %v", err)
			}
			// x = 0 would leak the secret, and repeated points waste shares
			if !x.IsZero() && !seen[x.String()] {
				break
			}
		}
		seen[x.String()] = true
		shares[i] = Share{X: x, Y: p.Evaluate(x)}
	}
	return shares, nil
}

// Recover reconstructs the secret from the shares by interpolating the
// sharing polynomial and reading its constant term. It needs at least as
// many distinct shares as the sharing threshold; with fewer the result is
// uniformly random rather than an error.
func Recover(shares []Share) (fr.Element, error) {
	if len(shares) == 0 {
		return fr.Element{}, fmt.Errorf("no shares to recover from")
	}
	xs := make([]fr.Element, len(shares))
	ys := make([]fr.Element, len(shares))
	for i, s := range shares {
		xs[i] = s.X
		ys[i] = s.Y
	}
	var zero fr.Element
	return poly.Interpolate(xs, ys).Evaluate(zero), nil
}
