package zeropart

import (
	"github.com/ar90n/zeropart/collection"
	"github.com/ar90n/zeropart/number"
)

// PushZeroStart permutes v in place so that every zero precedes every non-zero
// element, and returns the boundary i: v[:i] are all zero, v[i:] all non-zero.
// It runs a single pass with O(1) extra memory. The relative order of the
// non-zero elements is not kept, see StablePushZeroStart.
func PushZeroStart[T number.Integer](v []T) int {
	return collection.Partition(v, number.IsZero[T])
}

// StablePushZeroStart is PushZeroStart keeping the relative order of the
// non-zero elements.
func StablePushZeroStart[T number.Integer](v []T) int {
	return collection.StablePartition(v, number.IsZero[T])
}

// Boundary returns the length of the leading zero run of v and whether v is
// already partitioned, i.e. no zero follows a non-zero element.
func Boundary[T number.Integer](v []T) (int, bool) {
	return collection.PartitionPoint(v, number.IsZero[T])
}
