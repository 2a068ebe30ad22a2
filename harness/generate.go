package harness

import (
	"math/rand"
)

type Shape int

const (
	Empty Shape = iota
	AllZero
	AllNonZero
	Mixed
	numShapes
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case AllZero:
		return "all-zero"
	case AllNonZero:
		return "all-non-zero"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ShapeOf returns the shape generated for the given trial. Shapes rotate so
// that every run covers each of them.
func ShapeOf(trial uint) Shape {
	return Shape(trial % uint(numShapes))
}

// Generate draws a sequence of the given shape. Non-empty shapes have length
// in [1, cfg.MaxLen] and non-zero values in [-cfg.MaxAbs, cfg.MaxAbs].
func Generate(rng *rand.Rand, shape Shape, cfg Config) []int64 {
	if shape == Empty || cfg.MaxLen == 0 {
		return []int64{}
	}

	xs := make([]int64, 1+rng.Intn(cfg.MaxLen))
	for i := range xs {
		switch shape {
		case AllZero:
			xs[i] = 0
		case AllNonZero:
			xs[i] = nonZero(rng, cfg.MaxAbs)
		default:
			if rng.Float64() < cfg.ZeroRatio {
				xs[i] = 0
			} else {
				xs[i] = nonZero(rng, cfg.MaxAbs)
			}
		}
	}
	return xs
}

func nonZero(rng *rand.Rand, maxAbs int64) int64 {
	v := 1 + rng.Int63n(maxAbs)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}
