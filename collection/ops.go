package collection

// Partition moves every element satisfying predicate in front of the ones that
// don't and returns the number of matching elements. Matching elements end up
// in buf[:i], the rest in buf[i:].
//
// Loop invariant, with i <= j:
//
//	predicate(buf[p])  for p < i
//	!predicate(buf[p]) for i <= p < j
//
// A matching buf[j] is swapped with buf[i], which is either buf[j] itself or
// the first non-matching element of the window, so the window shifts right by
// one. The order of non-matching elements is not kept: the swapped one moves to
// the end of the window.
func Partition[T any](buf []T, predicate func(T) bool) int {
	i := 0
	for j := 0; j < len(buf); j++ {
		if predicate(buf[j]) {
			buf[i], buf[j] = buf[j], buf[i]
			i++
		}
	}
	return i
}

// StablePartition behaves like Partition but keeps the relative order of the
// elements that don't satisfy predicate. It scans right to left; buf(j, k]
// only holds matching elements and buf(k, len) the non-matching ones seen so
// far, in their original order.
func StablePartition[T any](buf []T, predicate func(T) bool) int {
	k := len(buf) - 1
	for j := len(buf) - 1; 0 <= j; j-- {
		if !predicate(buf[j]) {
			buf[j], buf[k] = buf[k], buf[j]
			k--
		}
	}
	return k + 1
}

// PartitionPoint returns the length of the leading run of elements satisfying
// predicate and whether no matching element follows it.
func PartitionPoint[T any](buf []T, predicate func(T) bool) (int, bool) {
	i := 0
	for i < len(buf) && predicate(buf[i]) {
		i++
	}
	for _, v := range buf[i:] {
		if predicate(v) {
			return i, false
		}
	}
	return i, true
}
