package number

import (
	"golang.org/x/exp/constraints"
)

type Integer interface {
	constraints.Integer
}

func IsZero[T Integer](x T) bool {
	return x == 0
}

func IsNonZero[T Integer](x T) bool {
	return x != 0
}
