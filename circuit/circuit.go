package circuit

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/giuliop/sumcheck/logger"
	"github.com/giuliop/sumcheck/mle"
)

// Op is a gate operation.
type Op int

const (
	Add Op = iota
	Mul
)

// Gate reads two slots of the previous layer's value vector and writes one
// slot of the current layer's.
type Gate struct {
	Left   int
	Right  int
	Output int
	Op     Op
}

// NewGate returns a gate combining input slots left and right into output.
func NewGate(left, right, output int, op Op) Gate {
	return Gate{Left: left, Right: right, Output: output, Op: op}
}

func (g Gate) evaluate(inputs, outputs []fr.Element) {
	switch g.Op {
	case Add:
		outputs[g.Output].Add(&inputs[g.Left], &inputs[g.Right])
	case Mul:
		outputs[g.Output].Mul(&inputs[g.Left], &inputs[g.Right])
	default:
		panic(fmt.Sprintf("unknown gate op: %d", g.Op))
	}
}

// Layer is one circuit layer. The gate count must be a power of two so the
// layer's value vector has a multilinear encoding.
type Layer struct {
	Gates []Gate
}

// NewLayer returns a layer with the given gates.
func NewLayer(gates ...Gate) Layer {
	n := len(gates)
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("layer needs a power-of-two gate count, got %d", n))
	}
	return Layer{Gates: gates}
}

// Evaluate runs every gate against inputs and returns the layer's value
// vector, one slot per gate.
func (l Layer) Evaluate(inputs []fr.Element) []fr.Element {
	outputs := make([]fr.Element, len(l.Gates))
	for _, g := range l.Gates {
		g.evaluate(inputs, outputs)
	}
	return outputs
}

// Circuit is a layered circuit, layers ordered from the one reading the
// inputs to the one producing the single output.
type Circuit struct {
	Layers []Layer

	// per-layer value vectors, output layer first; set by Evaluate
	layerEvals [][]fr.Element
}

// New returns a circuit over the given layers. The last layer must have
// exactly one gate.
func New(layers ...Layer) *Circuit {
	if len(layers) == 0 {
		panic("circuit needs at least one layer")
	}
	if n := len(layers[len(layers)-1].Gates); n != 1 {
		panic(fmt.Sprintf("output layer must have one gate, got %d", n))
	}
	return &Circuit{Layers: layers}
}

// Evaluate runs the circuit on inputs and returns the value vectors of every
// layer, inputs first and the single output last. The reversed list is kept
// for WMle, indexed from the output layer down.
func (c *Circuit) Evaluate(inputs []fr.Element) [][]fr.Element {
	if arity := 2 * len(c.Layers[0].Gates); len(inputs) != arity {
		panic(fmt.Sprintf("circuit takes %d inputs, got %d", arity, len(inputs)))
	}

	evals := make([][]fr.Element, 0, len(c.Layers)+1)
	evals = append(evals, inputs)
	for _, layer := range c.Layers {
		evals = append(evals, layer.Evaluate(evals[len(evals)-1]))
	}

	c.layerEvals = make([][]fr.Element, len(evals))
	for i, e := range evals {
		c.layerEvals[len(evals)-1-i] = e
	}

	log := logger.Logger()
	log.Debug().Int("layers", len(c.Layers)).Int("inputs", len(inputs)).
		Msg("circuit evaluated")
	return evals
}

// WMle returns the multilinear extension of layer i's value vector, with
// i = 0 the output layer (a single evaluation) and i = len(Layers) the
// inputs. Evaluate must run first.
func (c *Circuit) WMle(i int) *mle.Poly {
	if len(c.layerEvals) == 0 {
		panic("evaluate the circuit before asking for layer polynomials")
	}
	if i < 0 || i >= len(c.layerEvals) {
		panic(fmt.Sprintf("layer index %d out of range [0..%d]",
			i, len(c.layerEvals)-1))
	}
	evals := make([]fr.Element, len(c.layerEvals[i]))
	copy(evals, c.layerEvals[i])
	return mle.New(evals)
}

// AddAndMulI returns the wiring predicates of layer i (output-numbered) as
// multilinears over the concatenated (out, left, right) bits: the add
// polynomial is 1 exactly at the triples wired by an add gate, the mul
// polynomial at those wired by a mul gate. For a layer of g gates the
// domain has 3 bits when g = 1, else 2 + 3*log2(g) bits, with left and
// right each occupying log2(2g) bits.
func (c *Circuit) AddAndMulI(i int) (addI, mulI *mle.Poly) {
	if i < 0 || i >= len(c.Layers) {
		panic(fmt.Sprintf("layer index %d out of range [0..%d]",
			i, len(c.Layers)-1))
	}
	layer := c.Layers[len(c.Layers)-1-i]
	g := len(layer.Gates)

	width := 3
	if g > 1 {
		width = 2 + 3*log2(g)
	}
	inWidth := log2(2 * g)

	addEvals := make([]fr.Element, 1<<width)
	mulEvals := make([]fr.Element, 1<<width)
	for _, gate := range layer.Gates {
		index := mle.CombineIndex([]int{gate.Output, gate.Left, gate.Right}, inWidth)
		switch gate.Op {
		case Add:
			addEvals[index].SetOne()
		case Mul:
			mulEvals[index].SetOne()
		}
	}
	return mle.New(addEvals), mle.New(mulEvals)
}

// FBC composes the layer round polynomial
//
//	f(b,c) = add_i(b,c) * (W(b) + W(c))  +  mul_i(b,c) * (W(b) * W(c))
//
// as a sum of two products. addI and mulI must already be restricted to the
// (b, c) variables (their output variables bound), so that they match the
// tensor combinations of wNext, the next layer's value polynomial.
func FBC(addI, mulI, wNext *mle.Poly) *mle.SumPoly {
	return mle.NewSumPoly(
		mle.NewProdPoly(addI, mle.Tensor(wNext, wNext, mle.Add)),
		mle.NewProdPoly(mulI, mle.Tensor(wNext, wNext, mle.Mul)),
	)
}

func log2(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("log2 undefined for %d", n))
	}
	return bits.Len(uint(n)) - 1
}
