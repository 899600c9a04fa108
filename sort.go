// Copyright 2025 go-pdqsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pdqsort

import "cmp"

// Thresholds for the adaptive strategies.
const (
	// insertionSortThreshold: subranges below this size are insertion
	// sorted.
	insertionSortThreshold = 24

	// partialInsertionSortLimit: maximum element moves the
	// already-sorted probe tolerates before giving up.
	partialInsertionSortLimit = 8
)

// Sort sorts data in-place in ascending natural order.
//
// Sort is not stable. It performs no heap allocation, uses O(log n)
// stack and is O(n log n) in the worst case. Inputs that are already
// sorted, reverse sorted or contain few distinct keys are sorted in
// O(n).
func Sort[T cmp.Ordered](data []T) {
	SortFunc(data, cmp.Less[T])
}

// SortFunc sorts data in-place in ascending order as determined by
// the less function. less must be a strict weak ordering; see the
// requirements of sort.Interface.
//
// SortFunc is not stable and has the same complexity guarantees as
// Sort.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n <= 1 {
		return
	}
	pdqsortLoop(data, 0, n, less, log2(n), true)
}

// log2 returns floor(log2(n)), assumes n > 0.
func log2(n int) int {
	log := 0
	for n >>= 1; n > 0; n >>= 1 {
		log++
	}
	return log
}

// pdqsortLoop sorts data[lo:hi]. badAllowed is the remaining budget
// of highly unbalanced partitions before the heapsort fallback fires.
// leftmost is true iff lo is the start of the original range; when it
// is false, data[lo-1] is known to be no larger than any element of
// data[lo:hi].
//
// The left partition is sorted by recursion, the right one by
// continuing the loop, which bounds the stack to one frame per level.
func pdqsortLoop[T any](data []T, lo, hi int, less func(a, b T) bool, badAllowed int, leftmost bool) {
	for {
		n := hi - lo

		// Insertion sort is faster for small subranges.
		if n < insertionSortThreshold {
			if leftmost {
				insertionSort(data, lo, hi, less)
			} else {
				unguardedInsertionSort(data, lo, hi, less)
			}
			return
		}

		// Median of three. Leaves the pivot at lo, an element no
		// larger than the pivot at lo+n/2 and an element no smaller
		// at hi-1; the outer two are the sentinels for the partition
		// scans.
		sort3(data, lo+n/2, lo, hi-1, less)

		// If data[lo-1] ended the left partition of an earlier step,
		// no element of data[lo:hi] is smaller than it. If it also
		// compares equal to our pivot, the elements equal to the
		// pivot form an already sorted block: partition with equal
		// elements going left and skip past them without recursing.
		if !leftmost && !less(data[lo-1], data[lo]) {
			lo = partitionLeft(data, lo, hi, less) + 1
			continue
		}

		pivotPos, alreadyPartitioned := partitionRight(data, lo, hi, less)

		leftLen := pivotPos - lo
		highlyUnbalanced := leftLen < n/8 || leftLen > n-n/8

		if highlyUnbalanced {
			badAllowed--
			if badAllowed == 0 {
				heapSort(data, lo, hi, less)
				return
			}
			breakPatterns(data, lo, pivotPos, hi)
		} else if alreadyPartitioned &&
			partialInsertionSort(data, lo, pivotPos, less) &&
			partialInsertionSort(data, pivotPos+1, hi, less) {
			// A decently balanced partition that needed no swaps:
			// the subrange is likely already sorted, and the bounded
			// probes just confirmed it.
			return
		}

		// Sort the left partition by recursion, then continue with
		// the right one.
		pdqsortLoop(data, lo, pivotPos, less, badAllowed, leftmost)
		lo = pivotPos + 1
		leftmost = false
	}
}
