// Package fiatshamir implements the Fiat-Shamir transcript used to make the
// sum-check protocol non-interactive. A Transcript absorbs the byte encoding
// of everything the prover sends and squeezes verifier challenges as field
// elements, so that prover and verifier derive identical challenges from
// identical messages.
package fiatshamir

import (
	"fmt"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the digest width every transcript hash must produce.
const DigestSize = 32

// Transcript is an append-only hash state. It is owned by exactly one prover
// or verifier at a time; sharing one across goroutines is not supported.
type Transcript struct {
	h hash.Hash
}

// New returns a Transcript over h. The hash must produce 32-byte digests.
func New(h hash.Hash) *Transcript {
	if h.Size() != DigestSize {
		panic(fmt.Sprintf("transcript hash must have %d-byte digests, got %d",
			DigestSize, h.Size()))
	}
	return &Transcript{h: h}
}

// NewKeccak returns a Transcript over Keccak-256, the default hash.
func NewKeccak() *Transcript {
	return New(sha3.NewLegacyKeccak256())
}

// NewBlake3 returns a Transcript over BLAKE3-256.
func NewBlake3() *Transcript {
	return New(blake3.New())
}

// Absorb appends data to the transcript state.
func (t *Transcript) Absorb(data []byte) {
	// hash.Hash.Write never returns an error
	t.h.Write(data)
}

// Squeeze derives a field element from everything absorbed so far, reducing
// the 256-bit digest big-endian modulo the field order. The digest is
// absorbed back into the state before returning, so two consecutive squeezes
// with no intervening Absorb yield different challenges.
func (t *Transcript) Squeeze() fr.Element {
	digest := t.h.Sum(nil)
	t.h.Write(digest)

	var e fr.Element
	e.SetBytes(digest)
	return e
}
