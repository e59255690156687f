package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/giuliop/sumcheck/fiatshamir"
	"github.com/giuliop/sumcheck/logger"
	"github.com/giuliop/sumcheck/mle"
	"github.com/giuliop/sumcheck/poly"
)

// ProveProduct generates a proof that sp, a sum of products of multilinears,
// sums to claimedSum over the boolean hypercube. Each round polynomial has
// degree equal to sp's largest product, so it is sent as degree+1
// evaluations at x = 0, 1, ..., degree. sp is left untouched.
func ProveProduct(sp *mle.SumPoly, claimedSum fr.Element) *Proof {
	t := fiatshamir.NewKeccak()
	t.Absorb(sp.Bytes())
	return ProveProductWithTranscript(sp, claimedSum, t)
}

// ProveProductWithTranscript is ProveProduct over a caller-owned transcript;
// layered-circuit drivers use it to chain one sum-check per layer on a
// single transcript. The caller absorbs sp (or a commitment) beforehand.
func ProveProductWithTranscript(sp *mle.SumPoly, claimedSum fr.Element,
	t *fiatshamir.Transcript) *Proof {

	if sp.NumVars() == 0 {
		panic("cannot run sum-check on a constant polynomial")
	}
	sumBytes := claimedSum.Bytes()
	t.Absorb(sumBytes[:])

	degree := sp.Degree()
	log := logger.Logger()
	log.Debug().Int("rounds", sp.NumVars()).Int("degree", degree).
		Msg("product sum-check prover started")

	q := sp.Clone()
	rounds := make([][]fr.Element, 0, sp.NumVars())
	for q.NumVars() > 0 {
		round := productRoundPoly(q, degree)
		t.Absorb(mle.ToBytes(round))
		r := t.Squeeze()

		rounds = append(rounds, round)
		q.PartialEvaluate(1, r)
	}
	return &Proof{Sum: claimedSum, RoundPolys: rounds}
}

// VerifyProduct checks a product sum-check proof against sp, mirroring
// ProveProduct's transcript and finishing with the oracle check.
func VerifyProduct(proof *Proof, sp *mle.SumPoly) bool {
	t := fiatshamir.NewKeccak()
	t.Absorb(sp.Bytes())

	if len(proof.RoundPolys) != sp.NumVars() {
		return false
	}
	width := sp.Degree() + 1
	for _, round := range proof.RoundPolys {
		if len(round) != width {
			return false
		}
	}
	ok, finalClaim, challenges := VerifyProductWithTranscript(proof, t)
	if !ok {
		return false
	}
	derived := sp.Evaluate(challenges)
	if !derived.Equal(&finalClaim) {
		l := logger.Logger()
		l.Debug().Msg("product sum-check oracle check failed")
		return false
	}
	return true
}

// VerifyProductWithTranscript replays the rounds of a product proof over a
// caller-owned transcript. As with VerifyWithTranscript the oracle check is
// left to the caller; in the layered protocol the next layer's claim stands
// in for it.
func VerifyProductWithTranscript(proof *Proof, t *fiatshamir.Transcript) (
	ok bool, finalClaim fr.Element, challenges []fr.Element) {

	sumBytes := proof.Sum.Bytes()
	t.Absorb(sumBytes[:])

	expected := proof.Sum
	challenges = make([]fr.Element, 0, len(proof.RoundPolys))
	for i, round := range proof.RoundPolys {
		if len(round) < 2 {
			return false, expected, challenges
		}
		// f(0) + f(1) is the hypercube sum of the remaining variables
		var sum fr.Element
		sum.Add(&round[0], &round[1])
		if !sum.Equal(&expected) {
			l := logger.Logger()
			l.Debug().Int("round", i).
				Msg("product sum-check round inconsistent with carried claim")
			return false, expected, challenges
		}

		t.Absorb(mle.ToBytes(round))
		r := t.Squeeze()

		expected = poly.Interpolate(interpolationDomain(len(round)), round).Evaluate(r)
		challenges = append(challenges, r)
	}
	return true, expected, challenges
}

// productRoundPoly evaluates the round univariate of the current first
// variable at x = 0..degree: fix the variable to x, reduce the composition
// to a plain evaluation vector and sum it over the remaining hypercube.
func productRoundPoly(sp *mle.SumPoly, degree int) []fr.Element {
	round := make([]fr.Element, degree+1)
	var x fr.Element
	for k := 0; k <= degree; k++ {
		x.SetUint64(uint64(k))
		fixed := sp.Clone()
		fixed.PartialEvaluate(1, x)
		for _, v := range fixed.Reduce() {
			round[k].Add(&round[k], &v)
		}
	}
	return round
}

func interpolationDomain(n int) []fr.Element {
	xs := make([]fr.Element, n)
	for i := range xs {
		xs[i].SetUint64(uint64(i))
	}
	return xs
}
