package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Proof is a non-interactive sum-check proof: the claimed hypercube sum and
// one univariate round polynomial per variable, each given by its
// evaluations at x = 0, 1, ..., d. For a multilinear polynomial d = 1; for a
// product polynomial d is the number of multiplicands.
type Proof struct {
	Sum        fr.Element
	RoundPolys [][]fr.Element
}

// Bytes marshals the proof as a binary blob: the claimed sum followed by the
// round polynomials in round order, every field element in its canonical
// 32-byte big-endian encoding.
func (p *Proof) Bytes() []byte {
	size := fr.Bytes
	for _, round := range p.RoundPolys {
		size += len(round) * fr.Bytes
	}
	res := make([]byte, 0, size)

	sum := p.Sum.Bytes()
	res = append(res, sum[:]...)
	for _, round := range p.RoundPolys {
		for i := range round {
			b := round[i].Bytes()
			res = append(res, b[:]...)
		}
	}
	return res
}
