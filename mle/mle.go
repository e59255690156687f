// Package mle implements multilinear polynomials over the BN254 scalar field
// in evaluation form: a polynomial of n variables is stored as its 2^n values
// on the boolean hypercube. The package also provides the product and sum
// compositions (ProdPoly, SumPoly) that the product sum-check and the layered
// circuit protocol build their round polynomials from.
//
// Indexing convention: for f(x_1,...,x_n), x_1 is the most significant bit,
// so Evals[i] is f evaluated at the big-endian n-bit pattern of i. Variable
// positions are 1-based; the stride of variable v is 2^(n-v).
package mle

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Op selects how Tensor combines the two operand values.
type Op int

const (
	Add Op = iota
	Mul
)

// Poly is a multilinear polynomial in evaluation form. The zero-variable
// polynomial is a single evaluation.
type Poly struct {
	NumVars int
	Evals   []fr.Element
}

// New returns the multilinear polynomial with the given hypercube
// evaluations. The length must be a power of two.
func New(evals []fr.Element) *Poly {
	return &Poly{
		NumVars: logOfPowerOfTwo(len(evals)),
		Evals:   evals,
	}
}

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	evals := make([]fr.Element, len(p.Evals))
	copy(evals, p.Evals)
	return &Poly{NumVars: p.NumVars, Evals: evals}
}

// PartialEvaluate fixes the variable at position pos (1-based, 1 is the most
// significant) to r, reducing p in place to a polynomial of one variable
// fewer. Each pair of evaluations differing only in that variable's bit is
// replaced by their interpolation at r.
func (p *Poly) PartialEvaluate(pos int, r fr.Element) {
	if pos < 1 || pos > p.NumVars {
		panic(fmt.Sprintf("variable position %d out of range [1..%d]",
			pos, p.NumVars))
	}
	stride := 1 << (p.NumVars - pos)
	reduced := make([]fr.Element, len(p.Evals)/2)
	k := 0
	for i := range p.Evals {
		if i&stride != 0 {
			continue
		}
		reduced[k] = Lerp(p.Evals[i], p.Evals[i|stride], r)
		k++
	}
	p.Evals = reduced
	p.NumVars--
}

// Evaluate returns p at the given point, folding in one coordinate at a
// time. p itself is left untouched.
func (p *Poly) Evaluate(point []fr.Element) fr.Element {
	if len(point) != p.NumVars {
		panic(fmt.Sprintf("evaluating %d-variable polynomial at %d coordinates",
			p.NumVars, len(point)))
	}
	q := p.Clone()
	for _, r := range point {
		q.PartialEvaluate(1, r)
	}
	return q.Evals[0]
}

// Tensor combines two polynomials of equal size over disjoint variable sets
// into one over their union: out[CombineIndex([i, j], d)] = a[i] op b[j],
// with d the variable count of each operand. The a variables become the most
// significant block of the result.
func Tensor(a, b *Poly, op Op) *Poly {
	if len(a.Evals) != len(b.Evals) {
		panic(fmt.Sprintf("tensor operands differ in size: %d vs %d",
			len(a.Evals), len(b.Evals)))
	}
	n := len(a.Evals)
	combined := make([]fr.Element, n*n)
	for i := range a.Evals {
		row := combined[i*n : (i+1)*n]
		for j := range b.Evals {
			switch op {
			case Add:
				row[j].Add(&a.Evals[i], &b.Evals[j])
			case Mul:
				row[j].Mul(&a.Evals[i], &b.Evals[j])
			default:
				panic(fmt.Sprintf("unknown op: %d", op))
			}
		}
	}
	return New(combined)
}

// Lerp interpolates the line through (0, v0) and (1, v1) at r.
func Lerp(v0, v1, r fr.Element) fr.Element {
	var res fr.Element
	res.Sub(&v1, &v0)
	res.Mul(&res, &r)
	res.Add(&res, &v0)
	return res
}

// CombineIndex concatenates the values as width-bit big-endian blocks and
// reads the result as an integer. The first value keeps whatever magnitude
// it has; each following value must fit in width bits.
func CombineIndex(vals []int, width int) int {
	acc := 0
	for _, v := range vals {
		acc = acc<<width | v
	}
	return acc
}

// Bytes returns the canonical byte encoding of p: the concatenated 32-byte
// big-endian encodings of its evaluations.
func (p *Poly) Bytes() []byte {
	return ToBytes(p.Evals)
}

// ToBytes concatenates the canonical big-endian encodings of the elements.
func ToBytes(evals []fr.Element) []byte {
	res := make([]byte, 0, len(evals)*fr.Bytes)
	for i := range evals {
		b := evals[i].Bytes()
		res = append(res, b[:]...)
	}
	return res
}

// logOfPowerOfTwo returns log2(n), panicking unless n is a power of two.
func logOfPowerOfTwo(n int) int {
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("%d is not a power of two", n))
	}
	return bits.TrailingZeros(uint(n))
}
