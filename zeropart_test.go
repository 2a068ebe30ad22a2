package zeropart

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ar90n/zeropart/check"
	"github.com/ar90n/zeropart/multiset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PushZeroStart(t *testing.T) {
	type TestCase struct {
		Name     string
		Input    []int
		Boundary int
	}

	testCases := []TestCase{
		{Name: "empty", Input: []int{}, Boundary: 0},
		{Name: "nil", Input: nil, Boundary: 0},
		{Name: "all zero", Input: []int{0, 0, 0, 0}, Boundary: 4},
		{Name: "all non-zero", Input: []int{3, -1, 7}, Boundary: 0},
		{Name: "single zero", Input: []int{0}, Boundary: 1},
		{Name: "single non-zero", Input: []int{5}, Boundary: 0},
		{Name: "mixed", Input: []int{0, 1, 0, 2, 5, 0, 10}, Boundary: 3},
		{Name: "zeros at end", Input: []int{4, 4, 0, 0}, Boundary: 2},
		{Name: "negative", Input: []int{-1, 0, -2, 0}, Boundary: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			xs := slices.Clone(tc.Input)
			i := PushZeroStart(xs)

			assert.Equal(t, tc.Boundary, i)
			assert.NoError(t, check.Partition(tc.Input, xs, i))
		})
	}
}

func Test_PushZeroStartScenario(t *testing.T) {
	xs := []int{0, 1, 0, 2, 5, 0, 10}
	i := PushZeroStart(xs)

	require.Equal(t, 3, i)
	for _, v := range xs[:i] {
		assert.Zero(t, v)
	}
	for _, v := range xs[i:] {
		assert.NotZero(t, v)
	}

	counter := multiset.FromSlice(xs)
	want := map[int]int{0: 3, 1: 1, 2: 1, 5: 1, 10: 1}
	assert.Equal(t, len(want), counter.Len())
	for v, cnt := range want {
		assert.Equal(t, cnt, counter.Get(v), "count of %d", v)
	}
}

func Test_PushZeroStartEmptyIsUntouched(t *testing.T) {
	xs := make([]int, 0, 4)
	assert.Equal(t, 0, PushZeroStart(xs))
	assert.Empty(t, xs)
}

func Test_PushZeroStartAllZero(t *testing.T) {
	xs := make([]int8, 17)
	assert.Equal(t, len(xs), PushZeroStart(xs))
	for _, v := range xs {
		assert.Zero(t, v)
	}
}

func Test_PushZeroStartIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 200; n++ {
		xs := randomInts(rng, n%40)
		i := PushZeroStart(xs)
		assert.NoError(t, check.Idempotent(xs, i, PushZeroStart[int]))
	}
}

func Test_PushZeroStartRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 500; n++ {
		before := randomInts(rng, n%50)
		xs := slices.Clone(before)
		i := PushZeroStart(xs)

		require.NoError(t, check.Partition(before, xs, i), "input %v", before)
		assert.True(t, multiset.FromSlice(before).Equal(multiset.FromSlice(xs)))
	}
}

// The swap moves the first non-zero of the scanned window behind the others,
// so the non-zero order is not kept in general.
func Test_PushZeroStartIsNotStable(t *testing.T) {
	before := []int{1, 2, 0}
	xs := slices.Clone(before)
	i := PushZeroStart(xs)

	assert.Equal(t, 1, i)
	assert.Equal(t, []int{0, 2, 1}, xs)
	assert.ErrorIs(t, check.Stable(before, xs), check.ErrOrderChanged)
}

func Test_StablePushZeroStart(t *testing.T) {
	type TestCase struct {
		Name     string
		Input    []int
		Want     []int
		Boundary int
	}

	testCases := []TestCase{
		{Name: "empty", Input: []int{}, Want: []int{}, Boundary: 0},
		{Name: "all zero", Input: []int{0, 0, 0}, Want: []int{0, 0, 0}, Boundary: 3},
		{Name: "all non-zero", Input: []int{3, 1, 2}, Want: []int{3, 1, 2}, Boundary: 0},
		{Name: "unstable case", Input: []int{1, 2, 0}, Want: []int{0, 1, 2}, Boundary: 1},
		{Name: "mixed", Input: []int{0, 1, 0, 2, 5, 0, 10}, Want: []int{0, 0, 0, 1, 2, 5, 10}, Boundary: 3},
		{Name: "interleaved", Input: []int{9, 0, -3, 0, 9, 0}, Want: []int{0, 0, 0, 9, -3, 9}, Boundary: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			xs := slices.Clone(tc.Input)
			i := StablePushZeroStart(xs)

			assert.Equal(t, tc.Boundary, i)
			assert.Equal(t, tc.Want, xs)
		})
	}
}

func Test_StablePushZeroStartRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 500; n++ {
		before := randomInts(rng, n%50)
		xs := slices.Clone(before)
		i := StablePushZeroStart(xs)

		require.NoError(t, check.Partition(before, xs, i), "input %v", before)
		require.NoError(t, check.Stable(before, xs), "input %v", before)
		require.NoError(t, check.Idempotent(xs, i, StablePushZeroStart[int]))
	}
}

func Test_Boundary(t *testing.T) {
	type TestCase struct {
		Input       []int
		Boundary    int
		Partitioned bool
	}

	testCases := []TestCase{
		{Input: nil, Boundary: 0, Partitioned: true},
		{Input: []int{0, 0}, Boundary: 2, Partitioned: true},
		{Input: []int{0, 3, 4}, Boundary: 1, Partitioned: true},
		{Input: []int{0, 3, 0}, Boundary: 1, Partitioned: false},
		{Input: []int{1, 0}, Boundary: 0, Partitioned: false},
	}

	for _, tc := range testCases {
		i, ok := Boundary(tc.Input)
		assert.Equal(t, tc.Boundary, i, "%v", tc.Input)
		assert.Equal(t, tc.Partitioned, ok, "%v", tc.Input)
	}
}

func randomInts(rng *rand.Rand, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		if rng.Intn(3) == 0 {
			continue
		}
		xs[i] = rng.Intn(21) - 10
	}
	return xs
}
