// Package sumcheck implements the non-interactive sum-check protocol over
// the BN254 scalar field: a prover convinces a verifier that a multilinear
// polynomial, given in evaluation form over the boolean hypercube, sums to a
// claimed value. A variant for products of multilinears (the shape of the
// layered-circuit round polynomials) lives alongside it.
//
// The interaction is replaced by a Fiat-Shamir transcript. Prover and
// verifier absorb the same bytes in the same order - the polynomial's
// encoding, the claimed sum, then each round polynomial before squeezing
// that round's challenge - so any divergence makes verification fail.
package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/giuliop/sumcheck/fiatshamir"
	"github.com/giuliop/sumcheck/logger"
	"github.com/giuliop/sumcheck/mle"
)

// Prove generates a proof that p sums to claimedSum over the boolean
// hypercube, using a fresh Keccak transcript. p is left untouched.
func Prove(p *mle.Poly, claimedSum fr.Element) *Proof {
	t := fiatshamir.NewKeccak()
	t.Absorb(p.Bytes())
	return ProveWithTranscript(p, claimedSum, t)
}

// ProveWithTranscript generates a proof over a caller-owned transcript, for
// protocols that bind extra context before the sum-check runs. The caller is
// responsible for absorbing p (or a commitment to it) beforehand.
func ProveWithTranscript(p *mle.Poly, claimedSum fr.Element,
	t *fiatshamir.Transcript) *Proof {

	if p.NumVars == 0 {
		panic("cannot run sum-check on a constant polynomial")
	}
	sumBytes := claimedSum.Bytes()
	t.Absorb(sumBytes[:])

	log := logger.Logger()
	log.Debug().Int("rounds", p.NumVars).Msg("sum-check prover started")

	q := p.Clone()
	rounds := make([][]fr.Element, 0, p.NumVars)
	for q.NumVars > 0 {
		round := roundPoly(q.Evals)
		t.Absorb(mle.ToBytes(round))
		r := t.Squeeze()

		rounds = append(rounds, round)
		q.PartialEvaluate(1, r)
	}
	return &Proof{Sum: claimedSum, RoundPolys: rounds}
}

// Verify checks a proof against the polynomial it claims to sum, using a
// fresh Keccak transcript mirroring Prove. It returns false on any round
// inconsistency and on the final oracle check failing.
func Verify(proof *Proof, p *mle.Poly) bool {
	t := fiatshamir.NewKeccak()
	t.Absorb(p.Bytes())

	if len(proof.RoundPolys) != p.NumVars {
		return false
	}
	ok, finalClaim, challenges := VerifyWithTranscript(proof, t)
	if !ok {
		return false
	}
	// oracle check: the polynomial at the accumulated challenges must match
	// the claim the rounds reduced to
	derived := p.Evaluate(challenges)
	if !derived.Equal(&finalClaim) {
		l := logger.Logger()
		l.Debug().Msg("sum-check oracle check failed")
		return false
	}
	return true
}

// VerifyWithTranscript replays the rounds of a proof over a caller-owned
// transcript. It returns whether every round was consistent, the claim the
// final round reduces to, and the challenges squeezed along the way; the
// caller must complete the oracle check against finalClaim itself.
func VerifyWithTranscript(proof *Proof, t *fiatshamir.Transcript) (
	ok bool, finalClaim fr.Element, challenges []fr.Element) {

	sumBytes := proof.Sum.Bytes()
	t.Absorb(sumBytes[:])

	expected := proof.Sum
	challenges = make([]fr.Element, 0, len(proof.RoundPolys))
	for i, round := range proof.RoundPolys {
		if len(round) != 2 {
			return false, expected, challenges
		}
		var sum fr.Element
		sum.Add(&round[0], &round[1])
		if !sum.Equal(&expected) {
			l := logger.Logger()
			l.Debug().Int("round", i).
				Msg("sum-check round inconsistent with carried claim")
			return false, expected, challenges
		}

		t.Absorb(mle.ToBytes(round))
		r := t.Squeeze()

		expected = mle.Lerp(round[0], round[1], r)
		challenges = append(challenges, r)
	}
	return true, expected, challenges
}

// roundPoly returns the round univariate [f(0), f(1)] of the current first
// variable: the hypercube sum of the half where its bit is 0, and of the
// half where it is 1.
func roundPoly(evals []fr.Element) []fr.Element {
	half := len(evals) / 2
	var v0, v1 fr.Element
	for i := 0; i < half; i++ {
		v0.Add(&v0, &evals[i])
		v1.Add(&v1, &evals[half+i])
	}
	return []fr.Element{v0, v1}
}
