package check

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ar90n/zeropart/multiset"
	"github.com/ar90n/zeropart/number"
	"github.com/cockroachdb/errors"
)

// Partition verifies that after is a zero-partitioned permutation of before
// with the given boundary.
func Partition[T number.Integer](before, after []T, boundary int) error {
	if len(before) != len(after) {
		return errors.Wrapf(ErrLengthChanged, "%d -> %d", len(before), len(after))
	}
	if boundary < 0 || len(after) < boundary {
		return errors.Wrapf(ErrBoundaryOutOfRange, "boundary %d, length %d", boundary, len(after))
	}

	for p, v := range after {
		if p < boundary && v != 0 {
			return errors.Wrapf(ErrNonZeroInPrefix, "after[%d] = %d, boundary %d", p, v, boundary)
		}
		if boundary <= p && v == 0 {
			return errors.Wrapf(ErrZeroInSuffix, "after[%d] = 0, boundary %d", p, boundary)
		}
	}

	return Permutation(before, after)
}

// Permutation verifies that before and after hold the same multiset.
func Permutation[T comparable](before, after []T) error {
	b := multiset.FromSlice(before)
	a := multiset.FromSlice(after)
	if b.Equal(a) {
		return nil
	}

	deltas := b.Diff(a)
	parts := make([]string, 0, len(deltas))
	for _, d := range deltas {
		parts = append(parts, fmt.Sprintf("%v: %d -> %d", d.Value, d.Left, d.Right))
	}
	slices.Sort(parts)
	return errors.Wrap(ErrMultisetMismatch, strings.Join(parts, ", "))
}

// Stable verifies that the non-zero elements of after appear in the same
// order as in before.
func Stable[T number.Integer](before, after []T) error {
	b := nonZeros(before)
	a := nonZeros(after)
	if i := firstMismatch(b, a); 0 <= i {
		return errors.Wrapf(ErrOrderChanged, "non-zero #%d differs", i)
	}
	return nil
}

// Idempotent re-applies partition to a copy of the already partitioned v and
// verifies that neither the boundary nor the elements change.
func Idempotent[T number.Integer](v []T, boundary int, partition func([]T) int) error {
	again := slices.Clone(v)
	if got := partition(again); got != boundary {
		return errors.Wrapf(ErrNotIdempotent, "boundary %d -> %d", boundary, got)
	}
	if i := firstMismatch(v, again); 0 <= i {
		return errors.Wrapf(ErrNotIdempotent, "element %d moved", i)
	}
	return nil
}

func nonZeros[T number.Integer](v []T) []T {
	out := make([]T, 0, len(v))
	for _, x := range v {
		if number.IsNonZero(x) {
			out = append(out, x)
		}
	}
	return out
}

// firstMismatch returns the first index where x and y differ, or -1.
func firstMismatch[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			return i
		}
	}
	if len(x) != len(y) {
		return n
	}
	return -1
}
