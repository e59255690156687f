// Package poly implements univariate polynomials over the BN254 scalar field
// in dense coefficient form, including Lagrange interpolation. The sum-check
// verifier uses it to reconstruct round polynomials of degree greater than
// one from their evaluations.
package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Polynomial is a univariate polynomial; Coefficients[i] is the coefficient
// of x^i. An empty coefficient list is the zero polynomial.
type Polynomial struct {
	Coefficients []fr.Element
}

// New returns the polynomial with the given coefficients, constant term first.
func New(coefficients ...fr.Element) Polynomial {
	return Polynomial{Coefficients: coefficients}
}

// Degree returns len(coefficients) - 1, and 0 for the zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.Coefficients) == 0 {
		return 0
	}
	return len(p.Coefficients) - 1
}

// Evaluate returns p(x) using Horner's rule.
func (p Polynomial) Evaluate(x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p.Coefficients[i])
	}
	return res
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	longer, shorter := p.Coefficients, q.Coefficients
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	sum := make([]fr.Element, len(longer))
	copy(sum, longer)
	for i := range shorter {
		sum[i].Add(&sum[i], &shorter[i])
	}
	return Polynomial{Coefficients: sum}
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.Coefficients) == 0 || len(q.Coefficients) == 0 {
		return Polynomial{}
	}
	prod := make([]fr.Element, len(p.Coefficients)+len(q.Coefficients)-1)
	var t fr.Element
	for i := range p.Coefficients {
		for j := range q.Coefficients {
			t.Mul(&p.Coefficients[i], &q.Coefficients[j])
			prod[i+j].Add(&prod[i+j], &t)
		}
	}
	return Polynomial{Coefficients: prod}
}

// ScalarMul returns s * p.
func (p Polynomial) ScalarMul(s fr.Element) Polynomial {
	prod := make([]fr.Element, len(p.Coefficients))
	for i := range p.Coefficients {
		prod[i].Mul(&p.Coefficients[i], &s)
	}
	return Polynomial{Coefficients: prod}
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the points (xs[i], ys[i]). The xs must be pairwise distinct.
func Interpolate(xs, ys []fr.Element) Polynomial {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("interpolate: %d x values for %d y values",
			len(xs), len(ys)))
	}
	if len(xs) == 0 {
		return Polynomial{}
	}

	// denominators[i] = prod_{j != i} (xs[i] - xs[j]), inverted in one batch
	denominators := make([]fr.Element, len(xs))
	var diff fr.Element
	for i := range xs {
		denominators[i].SetOne()
		for j := range xs {
			if j == i {
				continue
			}
			diff.Sub(&xs[i], &xs[j])
			if diff.IsZero() {
				panic("interpolate: duplicate x values")
			}
			denominators[i].Mul(&denominators[i], &diff)
		}
	}
	denominators = fr.BatchInvert(denominators)

	var one fr.Element
	one.SetOne()

	sum := Polynomial{}
	for i := range xs {
		// basis numerator prod_{j != i} (x - xs[j])
		basis := New(one)
		for j := range xs {
			if j == i {
				continue
			}
			var negX fr.Element
			negX.Neg(&xs[j])
			basis = basis.Mul(New(negX, one))
		}
		var scale fr.Element
		scale.Mul(&ys[i], &denominators[i])
		sum = sum.Add(basis.ScalarMul(scale))
	}
	return sum
}
