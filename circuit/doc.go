/*
Package circuit implements the circuit side of the layered (GKR-style) proof
protocol: layered arithmetic circuits and the multilinear encodings a
layer-by-layer driver consumes.

How a driver reduces one layer to the next
====================================================================================================
Evaluating a circuit yields one value vector per layer, the single output
first (WMle(0)) down to the inputs (WMle(len(Layers))). The claim "layer i
has these values" reduces to a claim about layer i+1 through the layer round
polynomial

	f(b,c) = add_i(b,c) * (W_{i+1}(b) + W_{i+1}(c))  +  mul_i(b,c) * (W_{i+1}(b) * W_{i+1}(c))

whose sum over all boolean (b,c) is the layer-i value under scrutiny.
AddAndMulI builds the wiring predicates over the concatenated
(out, left, right) bits; after the driver binds the out variables to the
verifier's randomness with PartialEvaluate, FBC assembles f(b,c) as a sum of
two products of multilinears. That shape is exactly what the product
sum-check (ProveProduct / VerifyProduct in the root package, with the
WithTranscript variants sharing one transcript across layers) proves, each
round leaving the verifier with a claim about W_{i+1} alone - the next
layer's starting point, until the input layer is reached and checked
directly.

This package deliberately stops at these encodings; it does not fix the
outer protocol's message flow.
*/
package circuit
