package pdqsort

import (
	"math/rand"
	"slices"
	"testing"
)

// TestHeapSort tests the fallback on full ranges against the stdlib
// oracle
func TestHeapSort(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	sizes := []int{0, 1, 2, 3, 7, 8, 100, 1000}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(1000)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		heapSort(data, 0, n, intLess)
		if !slices.Equal(data, want) {
			t.Errorf("heapSort(n=%d) produced wrong order", n)
		}
	}
}

// TestHeapSortSubrange verifies elements outside [lo, hi) are
// untouched
func TestHeapSortSubrange(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	n := 100
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(1000)
	}
	orig := slices.Clone(data)

	lo, hi := 5, 95
	heapSort(data, lo, hi, intLess)

	if !slices.Equal(data[:lo], orig[:lo]) || !slices.Equal(data[hi:], orig[hi:]) {
		t.Errorf("heapSort touched elements outside the subrange")
	}
	want := slices.Clone(orig[lo:hi])
	slices.Sort(want)
	if !slices.Equal(data[lo:hi], want) {
		t.Errorf("heapSort(subrange) produced wrong order")
	}
}

// TestHeapSortComparator exercises a non-natural ordering
func TestHeapSortComparator(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6}
	heapSort(data, 0, len(data), func(a, b int) bool { return a > b })
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("heapSort(descending) produced ascending pair at %d: %v", i, data)
		}
	}
}
