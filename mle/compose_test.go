package mle_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/giuliop/sumcheck/mle"
	"github.com/giuliop/sumcheck/testutils"
)

// 3ab and 2ab as two-variable evaluation forms
func prodPoly() *mle.ProdPoly {
	return mle.NewProdPoly(
		mle.New(testutils.Elements(0, 0, 0, 3)),
		mle.New(testutils.Elements(0, 0, 0, 2)),
	)
}

func TestNewProdPoly(t *testing.T) {
	pp := prodPoly()
	require.Equal(t, 2, pp.NumVars)
	require.Equal(t, 2, pp.Degree())

	require.Panics(t, func() { mle.NewProdPoly() })
	require.Panics(t, func() {
		mle.NewProdPoly(
			mle.New(testutils.Elements(0, 1)),
			mle.New(testutils.Elements(0, 1, 2, 3)),
		)
	})
}

func TestProdPolyEvaluate(t *testing.T) {
	// 3ab * 2ab at (1,2) = 6 * 4
	got := prodPoly().Evaluate(testutils.Elements(1, 2))
	require.Equal(t, testutils.Elements(24)[0], got)

	require.Panics(t, func() { prodPoly().Evaluate(testutils.Elements(1)) })
}

func TestProdPolyPartialEvaluate(t *testing.T) {
	pp := prodPoly()
	var two fr.Element
	two.SetUint64(2)
	pp.PartialEvaluate(1, two)
	require.Equal(t, 1, pp.NumVars)
	// both constituents reduced: 3ab|a=2 -> [0,6], 2ab|a=2 -> [0,4]
	require.Equal(t, testutils.Elements(0, 6), pp.Polys[0].Evals)
	require.Equal(t, testutils.Elements(0, 4), pp.Polys[1].Evals)
}

func TestProdPolyReduce(t *testing.T) {
	require.Equal(t, testutils.Elements(0, 0, 0, 6), prodPoly().Reduce())
}

func TestProdPolyBytes(t *testing.T) {
	pp := prodPoly()
	require.Equal(t,
		append(pp.Polys[0].Bytes(), pp.Polys[1].Bytes()...),
		pp.Bytes())
}

func sumPoly() *mle.SumPoly {
	return mle.NewSumPoly(
		prodPoly(),
		mle.NewProdPoly(mle.New(testutils.Elements(1, 2, 3, 4))),
	)
}

func TestNewSumPoly(t *testing.T) {
	sp := sumPoly()
	require.Equal(t, 2, sp.NumVars())
	require.Equal(t, 2, sp.Degree())

	require.Panics(t, func() { mle.NewSumPoly() })
	require.Panics(t, func() {
		mle.NewSumPoly(prodPoly(),
			mle.NewProdPoly(mle.New(testutils.Elements(1, 2))))
	})
}

func TestSumPolyEvaluate(t *testing.T) {
	point := testutils.RandomElements(2)
	sp := sumPoly()
	v1 := sp.Polys[0].Evaluate(point)
	v2 := sp.Polys[1].Evaluate(point)
	var want fr.Element
	want.Add(&v1, &v2)
	got := sp.Evaluate(point)
	require.True(t, got.Equal(&want))
}

func TestSumPolyReduce(t *testing.T) {
	// 6ab + the plain polynomial [1,2,3,4]
	require.Equal(t, testutils.Elements(1, 2, 3, 10), sumPoly().Reduce())
}

func TestSumPolyPartialEvaluate(t *testing.T) {
	// at boolean values fixing a variable selects a half-hypercube, so it
	// commutes with reduction; at general r the product is not linear
	for _, bit := range []int64{0, 1} {
		sp := sumPoly()
		r := testutils.Elements(bit)[0]
		reducedBefore := mle.New(sp.Reduce())
		reducedBefore.PartialEvaluate(1, r)

		sp.PartialEvaluate(1, r)
		require.Equal(t, 1, sp.NumVars())
		require.Equal(t, reducedBefore.Evals, sp.Reduce())
	}
}

func TestSumPolyClone(t *testing.T) {
	sp := sumPoly()
	clone := sp.Clone()
	var two fr.Element
	two.SetUint64(2)
	clone.PartialEvaluate(1, two)
	require.Equal(t, 2, sp.NumVars(), "clone must not share state")
	require.Equal(t, 1, clone.NumVars())
}
