package check

import "github.com/cockroachdb/errors"

var (
	ErrBoundaryOutOfRange = errors.New("boundary out of range")
	ErrNonZeroInPrefix    = errors.New("non-zero element in zero prefix")
	ErrZeroInSuffix       = errors.New("zero element in non-zero suffix")
	ErrLengthChanged      = errors.New("sequence length changed")
	ErrMultisetMismatch   = errors.New("multiset mismatch")
	ErrOrderChanged       = errors.New("order of non-zero elements changed")
	ErrNotIdempotent      = errors.New("partition is not idempotent")
)
