// Package testutils contains shared fixtures for the package tests: small
// deterministic polynomials, random ones, and the reference circuits the
// protocol tests exercise end to end.
package testutils

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/giuliop/sumcheck/circuit"
	"github.com/giuliop/sumcheck/mle"
)

// Elements converts the given integers to field elements.
func Elements(vs ...int64) []fr.Element {
	res := make([]fr.Element, len(vs))
	for i, v := range vs {
		res[i].SetInt64(v)
	}
	return res
}

// RandomElements returns n uniformly random field elements.
func RandomElements(n int) []fr.Element {
	res := make([]fr.Element, n)
	for i := range res {
		if _, err := res[i].SetRandom(); err != nil {
			panic(err)
		}
	}
	return res
}

// RandomPoly returns a random multilinear polynomial of numVars variables.
func RandomPoly(numVars int) *mle.Poly {
	return mle.New(RandomElements(1 << numVars))
}

// HypercubeSum sums the evaluations, i.e. the polynomial over the hypercube.
func HypercubeSum(evals []fr.Element) fr.Element {
	var sum fr.Element
	for i := range evals {
		sum.Add(&sum, &evals[i])
	}
	return sum
}

// ReferenceCircuit is the three-layer, eight-input circuit used across the
// protocol tests: on inputs (2,3,7,10,5,4,3,8) the layers produce
// (6,17,20,11), (23,220) and finally 5060.
func ReferenceCircuit() *circuit.Circuit {
	return circuit.New(
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Mul),
			circuit.NewGate(2, 3, 1, circuit.Add),
			circuit.NewGate(4, 5, 2, circuit.Mul),
			circuit.NewGate(6, 7, 3, circuit.Add),
		),
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Add),
			circuit.NewGate(2, 3, 1, circuit.Mul),
		),
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Mul),
		),
	)
}

// WiringCircuit has ReferenceCircuit's wiring with different ops: three add
// gates and one mul gate on the input layer, a mul then an add gate on the
// middle layer, and an add gate at the output. The wiring-predicate tests pin
// its add_i and mul_i values down gate by gate.
func WiringCircuit() *circuit.Circuit {
	return circuit.New(
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Add),
			circuit.NewGate(2, 3, 1, circuit.Add),
			circuit.NewGate(4, 5, 2, circuit.Add),
			circuit.NewGate(6, 7, 3, circuit.Mul),
		),
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Mul),
			circuit.NewGate(2, 3, 1, circuit.Add),
		),
		circuit.NewLayer(
			circuit.NewGate(0, 1, 0, circuit.Add),
		),
	)
}
