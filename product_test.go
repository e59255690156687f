package sumcheck_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/giuliop/sumcheck"
	"github.com/giuliop/sumcheck/circuit"
	"github.com/giuliop/sumcheck/mle"
	"github.com/giuliop/sumcheck/testutils"
)

func randomSumPoly(numVars, constituents int) *mle.SumPoly {
	polys := make([]*mle.Poly, constituents)
	for i := range polys {
		polys[i] = testutils.RandomPoly(numVars)
	}
	return mle.NewSumPoly(
		mle.NewProdPoly(polys...),
		mle.NewProdPoly(testutils.RandomPoly(numVars)),
	)
}

func TestProveAndVerifyProduct(t *testing.T) {
	sp := randomSumPoly(3, 2)
	sum := testutils.HypercubeSum(sp.Reduce())

	proof := sumcheck.ProveProduct(sp, sum)
	require.Len(t, proof.RoundPolys, 3)
	for _, round := range proof.RoundPolys {
		require.Len(t, round, 3, "degree-2 products need 3 evaluations per round")
	}
	require.True(t, sumcheck.VerifyProduct(proof, sp))
}

func TestProveAndVerifyProductHigherDegree(t *testing.T) {
	for degree := 1; degree <= 4; degree++ {
		sp := mle.NewSumPoly(mle.NewProdPoly(func() []*mle.Poly {
			polys := make([]*mle.Poly, degree)
			for i := range polys {
				polys[i] = testutils.RandomPoly(2)
			}
			return polys
		}()...))
		sum := testutils.HypercubeSum(sp.Reduce())

		proof := sumcheck.ProveProduct(sp, sum)
		for _, round := range proof.RoundPolys {
			require.Len(t, round, degree+1)
		}
		require.True(t, sumcheck.VerifyProduct(proof, sp), "degree %d", degree)
	}
}

func TestVerifyProductRejectsWrongSum(t *testing.T) {
	sp := randomSumPoly(3, 2)
	sum := testutils.HypercubeSum(sp.Reduce())
	var one fr.Element
	one.SetOne()
	sum.Add(&sum, &one)

	proof := sumcheck.ProveProduct(sp, sum)
	require.False(t, sumcheck.VerifyProduct(proof, sp))
}

func TestVerifyProductRejectsTamperedProof(t *testing.T) {
	sp := randomSumPoly(3, 2)
	sum := testutils.HypercubeSum(sp.Reduce())
	var one fr.Element
	one.SetOne()

	tampered := sumcheck.ProveProduct(sp, sum)
	tampered.RoundPolys[1][2].Add(&tampered.RoundPolys[1][2], &one)
	require.False(t, sumcheck.VerifyProduct(tampered, sp))

	tampered = sumcheck.ProveProduct(sp, sum)
	tampered.Sum.Add(&tampered.Sum, &one)
	require.False(t, sumcheck.VerifyProduct(tampered, sp))
}

func TestVerifyProductRejectsWrongRoundWidth(t *testing.T) {
	sp := randomSumPoly(3, 2)
	sum := testutils.HypercubeSum(sp.Reduce())
	proof := sumcheck.ProveProduct(sp, sum)
	proof.RoundPolys[0] = proof.RoundPolys[0][:2]
	require.False(t, sumcheck.VerifyProduct(proof, sp))
}

func TestProveProductLeavesPolyIntact(t *testing.T) {
	sp := randomSumPoly(3, 2)
	before := sp.Reduce()
	sum := testutils.HypercubeSum(before)
	sumcheck.ProveProduct(sp, sum)
	require.Equal(t, 3, sp.NumVars())
	require.Equal(t, before, sp.Reduce())
}

// The layer round polynomial of the reference circuit is a SumPoly; its
// hypercube sum over (b,c) must be provable with the product protocol.
func TestProductSumCheckOverLayerPoly(t *testing.T) {
	c := testutils.WiringCircuit()
	c.Evaluate(testutils.Elements(2, 3, 7, 10, 5, 4, 3, 8))

	addI, mulI := c.AddAndMulI(0)
	var zero fr.Element
	addI.PartialEvaluate(1, zero)
	mulI.PartialEvaluate(1, zero)
	f := circuit.FBC(addI, mulI, c.WMle(1))

	sum := testutils.HypercubeSum(f.Reduce())
	// the only wired (b,c) point contributes W(0)+W(1), the output value
	require.Equal(t, testutils.Elements(118)[0], sum)

	proof := sumcheck.ProveProduct(f, sum)
	require.True(t, sumcheck.VerifyProduct(proof, f))
}
