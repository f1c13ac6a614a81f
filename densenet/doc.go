// Package densenet provides a small generic feed-forward network used for
// auxiliary models around the graph pipeline (kernel approximators,
// lifting/projection maps).
//
// A DenseNet is a chain of fully connected layers with a shared hidden
// activation and an optional output activation. Weights are initialized
// deterministically (Xavier uniform) from a caller-supplied seed, so two
// networks built with equal sizes and seeds are identical. The package
// performs inference only; no optimizer or training loop is included.
//
// Layout: inputs are batched row-wise, x is rows×layers[0] and Forward
// returns rows×layers[len−1].
//
// Errors: ErrTooFewLayers, ErrBadLayerSize, ErrUnknownActivation,
// ErrNilInput, ErrWidthMismatch.
package densenet
