package densenet

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for network construction and inference.
var (
	// ErrTooFewLayers indicates fewer than two layer sizes.
	ErrTooFewLayers = errors.New("densenet: at least two layer sizes are required")
	// ErrBadLayerSize indicates a layer size below 1.
	ErrBadLayerSize = errors.New("densenet: every layer size must be >= 1")
	// ErrUnknownActivation indicates an activation outside the supported set.
	ErrUnknownActivation = errors.New("densenet: unknown activation")
	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("densenet: input matrix must not be nil")
	// ErrWidthMismatch indicates input width differing from the first layer.
	ErrWidthMismatch = errors.New("densenet: input width must equal the first layer size")
)

// Activation selects a pointwise nonlinearity.
type Activation int

const (
	// Identity applies no nonlinearity.
	Identity Activation = iota
	// Tanh applies the hyperbolic tangent.
	Tanh
	// ReLU applies max(0, v).
	ReLU
	// Sigmoid applies the logistic function.
	Sigmoid
)

func (a Activation) valid() bool {
	return a >= Identity && a <= Sigmoid
}

func (a Activation) apply(v float64) float64 {
	switch a {
	case Tanh:
		return math.Tanh(v)
	case ReLU:
		if v < 0 {
			return 0
		}
		return v
	case Sigmoid:
		return 1 / (1 + math.Exp(-v))
	default:
		return v
	}
}

// DenseNet is an immutable feed-forward network.
type DenseNet struct {
	weights []*mat.Dense // weights[j] is layers[j]×layers[j+1]
	biases  [][]float64
	act     Activation
	outAct  Activation
}

// Option tunes network construction.
type Option func(*config)

type config struct {
	seed   int64
	outAct Activation
}

// WithSeed fixes the weight-initialization seed. Equal layers and seeds
// produce identical networks.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithOutputActivation applies an extra nonlinearity after the last layer.
func WithOutputActivation(a Activation) Option {
	return func(c *config) { c.outAct = a }
}

// New builds a network with the given layer sizes and hidden activation,
// Xavier-uniform initialized. Returns ErrTooFewLayers, ErrBadLayerSize or
// ErrUnknownActivation on invalid parameters.
// Complexity: O(Σ layers[j]·layers[j+1]).
func New(layers []int, act Activation, opts ...Option) (*DenseNet, error) {
	if len(layers) < 2 {
		return nil, ErrTooFewLayers
	}
	for _, size := range layers {
		if size < 1 {
			return nil, ErrBadLayerSize
		}
	}
	cfg := config{outAct: Identity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !act.valid() || !cfg.outAct.valid() {
		return nil, ErrUnknownActivation
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	net := &DenseNet{act: act, outAct: cfg.outAct}
	for j := 0; j+1 < len(layers); j++ {
		in, out := layers[j], layers[j+1]
		limit := math.Sqrt(6 / float64(in+out))
		w := mat.NewDense(in, out, nil)
		for r := 0; r < in; r++ {
			for c := 0; c < out; c++ {
				w.Set(r, c, (2*rng.Float64()-1)*limit)
			}
		}
		net.weights = append(net.weights, w)
		net.biases = append(net.biases, make([]float64, out))
	}

	return net, nil
}

// NumLayers returns the number of linear layers.
func (n *DenseNet) NumLayers() int {
	return len(n.weights)
}

// Forward runs the network on a batch (rows = samples).
// Returns ErrNilInput or ErrWidthMismatch.
// Complexity: O(rows·Σ layers[j]·layers[j+1]).
func (n *DenseNet) Forward(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	_, cols := x.Dims()
	if in, _ := n.weights[0].Dims(); cols != in {
		return nil, ErrWidthMismatch
	}
	cur := x
	for j, w := range n.weights {
		var next mat.Dense
		next.Mul(cur, w)
		rows, outCols := next.Dims()
		act := n.act
		if j == len(n.weights)-1 {
			act = n.outAct
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < outCols; c++ {
				next.Set(r, c, act.apply(next.At(r, c)+n.biases[j][c]))
			}
		}
		cur = &next
	}

	return mat.DenseCopyOf(cur), nil
}
