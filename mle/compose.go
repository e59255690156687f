package mle

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ProdPoly is a product of multilinear polynomials over the same variables.
// Its degree in any single variable equals the number of constituents.
type ProdPoly struct {
	Polys   []*Poly
	NumVars int
}

// NewProdPoly returns the product of the given polynomials, which must be
// non-empty and share a variable count.
func NewProdPoly(polys ...*Poly) *ProdPoly {
	if len(polys) == 0 {
		panic("product polynomial needs at least one constituent")
	}
	numVars := polys[0].NumVars
	for _, p := range polys {
		if p.NumVars != numVars {
			panic(fmt.Sprintf("product constituents differ in variables: %d vs %d",
				numVars, p.NumVars))
		}
	}
	return &ProdPoly{Polys: polys, NumVars: numVars}
}

// Clone returns a deep copy of pp.
func (pp *ProdPoly) Clone() *ProdPoly {
	polys := make([]*Poly, len(pp.Polys))
	for i, p := range pp.Polys {
		polys[i] = p.Clone()
	}
	return &ProdPoly{Polys: polys, NumVars: pp.NumVars}
}

// PartialEvaluate fixes the variable at pos to r in every constituent.
func (pp *ProdPoly) PartialEvaluate(pos int, r fr.Element) {
	for _, p := range pp.Polys {
		p.PartialEvaluate(pos, r)
	}
	pp.NumVars--
}

// Evaluate returns the product of the constituent evaluations at the point.
func (pp *ProdPoly) Evaluate(point []fr.Element) fr.Element {
	if len(point) != pp.NumVars {
		panic(fmt.Sprintf("evaluating %d-variable product at %d coordinates",
			pp.NumVars, len(point)))
	}
	var prod fr.Element
	prod.SetOne()
	for _, p := range pp.Polys {
		v := p.Evaluate(point)
		prod.Mul(&prod, &v)
	}
	return prod
}

// Reduce returns the pointwise product of the constituents over the
// hypercube, as a plain evaluation vector.
func (pp *ProdPoly) Reduce() []fr.Element {
	res := make([]fr.Element, len(pp.Polys[0].Evals))
	copy(res, pp.Polys[0].Evals)
	for _, p := range pp.Polys[1:] {
		for i := range res {
			res[i].Mul(&res[i], &p.Evals[i])
		}
	}
	return res
}

// Degree returns the degree of the product in any single variable.
func (pp *ProdPoly) Degree() int {
	return len(pp.Polys)
}

// Bytes concatenates the constituent encodings.
func (pp *ProdPoly) Bytes() []byte {
	res := make([]byte, 0, len(pp.Polys)*len(pp.Polys[0].Evals)*fr.Bytes)
	for _, p := range pp.Polys {
		res = append(res, p.Bytes()...)
	}
	return res
}

// SumPoly is a sum of product polynomials over the same variables, the shape
// of the layer round polynomial add_i*(W+W) + mul_i*(W*W).
type SumPoly struct {
	Polys []*ProdPoly
}

// NewSumPoly returns the sum of the given products, which must be non-empty
// and share a variable count.
func NewSumPoly(polys ...*ProdPoly) *SumPoly {
	if len(polys) == 0 {
		panic("sum polynomial needs at least one product")
	}
	numVars := polys[0].NumVars
	for _, pp := range polys {
		if pp.NumVars != numVars {
			panic(fmt.Sprintf("sum constituents differ in variables: %d vs %d",
				numVars, pp.NumVars))
		}
	}
	return &SumPoly{Polys: polys}
}

// Clone returns a deep copy of sp.
func (sp *SumPoly) Clone() *SumPoly {
	polys := make([]*ProdPoly, len(sp.Polys))
	for i, pp := range sp.Polys {
		polys[i] = pp.Clone()
	}
	return &SumPoly{Polys: polys}
}

// NumVars returns the shared variable count.
func (sp *SumPoly) NumVars() int {
	return sp.Polys[0].NumVars
}

// PartialEvaluate fixes the variable at pos to r in every product.
func (sp *SumPoly) PartialEvaluate(pos int, r fr.Element) {
	for _, pp := range sp.Polys {
		pp.PartialEvaluate(pos, r)
	}
}

// Evaluate returns the sum of the product evaluations at the point.
func (sp *SumPoly) Evaluate(point []fr.Element) fr.Element {
	var sum fr.Element
	for _, pp := range sp.Polys {
		v := pp.Evaluate(point)
		sum.Add(&sum, &v)
	}
	return sum
}

// Reduce returns the pointwise sum of the product reductions.
func (sp *SumPoly) Reduce() []fr.Element {
	res := sp.Polys[0].Reduce()
	for _, pp := range sp.Polys[1:] {
		reduced := pp.Reduce()
		for i := range res {
			res[i].Add(&res[i], &reduced[i])
		}
	}
	return res
}

// Degree returns the largest single-variable degree across the products.
func (sp *SumPoly) Degree() int {
	degree := 0
	for _, pp := range sp.Polys {
		if d := pp.Degree(); d > degree {
			degree = d
		}
	}
	return degree
}

// Bytes concatenates the product encodings.
func (sp *SumPoly) Bytes() []byte {
	var res []byte
	for _, pp := range sp.Polys {
		res = append(res, pp.Bytes()...)
	}
	return res
}
