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

// sort3 orders the elements at positions i, j and k so that
// data[i] <= data[j] <= data[k], using at most three comparisons and
// three swaps.
func sort3[T any](data []T, i, j, k int, less func(a, b T) bool) {
	if !less(data[j], data[i]) {
		if !less(data[k], data[j]) {
			return
		}
		data[j], data[k] = data[k], data[j]
		if less(data[j], data[i]) {
			data[i], data[j] = data[j], data[i]
		}
		return
	}

	if less(data[k], data[j]) {
		data[i], data[k] = data[k], data[i]
		return
	}

	data[i], data[j] = data[j], data[i]
	if less(data[k], data[j]) {
		data[j], data[k] = data[k], data[j]
	}
}

// partitionRight partitions data[lo:hi] around the pivot at lo.
// Elements equal to the pivot go to the right partition. Returns the
// final pivot position and whether no swap was needed (the subrange
// was already partitioned). Assumes the pivot is a median of at least
// three elements and that hi-lo >= insertionSortThreshold.
func partitionRight[T any](data []T, lo, hi int, less func(a, b T) bool) (int, bool) {
	pivot := data[lo]
	first := lo
	last := hi

	// Find the first element >= pivot. The median of three guarantees
	// one exists before hi, so no bound check is needed.
	for first++; less(data[first], pivot); first++ {
	}

	// Find the first element from the back that is strictly < pivot.
	// While the forward scan has not moved past lo+1 there is no proven
	// element < pivot below last, so the scan is guarded; afterwards
	// data[first-1] is such an element and bounds the scan.
	if first-1 == lo {
		for first < last {
			last--
			if less(data[last], pivot) {
				break
			}
		}
	} else {
		for last--; !less(data[last], pivot); last-- {
		}
	}

	// If the first out-of-place pair did not exist, the subrange was
	// already correctly partitioned around the pivot.
	alreadyPartitioned := first >= last

	// Swap pairs on the wrong side of the pivot. Each swapped pair
	// provides the sentinels for the next pair of scans, which is why
	// the first round above is special-cased.
	for first < last {
		data[first], data[last] = data[last], data[first]
		for first++; less(data[first], pivot); first++ {
		}
		for last--; !less(data[last], pivot); last-- {
		}
	}

	// Put the pivot in its place.
	pivotPos := first - 1
	data[lo] = data[pivotPos]
	data[pivotPos] = pivot

	return pivotPos, alreadyPartitioned
}

// partitionLeft partitions data[lo:hi] around the pivot at lo, with
// elements equal to the pivot going to the left partition and
// strictly greater elements to the right. Returns the final pivot
// position. Used to carve the run of elements equal to the left
// sentinel off the front of a subrange.
func partitionLeft[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	pivot := data[lo]
	first := lo
	last := hi

	// The pivot copy at lo stops this scan at the latest.
	for last--; less(pivot, data[last]); last-- {
	}

	// Guard the forward scan only when the backward scan stopped at
	// hi-1: then no element > pivot is known to sit above first.
	if last+1 == hi {
		for first < last {
			first++
			if less(pivot, data[first]) {
				break
			}
		}
	} else {
		for first++; !less(pivot, data[first]); first++ {
		}
	}

	for first < last {
		data[first], data[last] = data[last], data[first]
		for last--; less(pivot, data[last]); last-- {
		}
		for first++; !less(pivot, data[first]); first++ {
		}
	}

	pivotPos := last
	data[lo] = data[pivotPos]
	data[pivotPos] = pivot

	return pivotPos
}

// breakPatterns perturbs both sides of a highly unbalanced partition
// of data[lo:hi] around pivotPos. The swaps are deterministic and
// local, and they break the patterns that drive a classical quicksort
// quadratic.
func breakPatterns[T any](data []T, lo, pivotPos, hi int) {
	if l := pivotPos - lo; l >= insertionSortThreshold {
		data[lo], data[lo+l/4] = data[lo+l/4], data[lo]
		data[pivotPos-1], data[pivotPos-l/4] = data[pivotPos-l/4], data[pivotPos-1]
	}
	if r := hi - (pivotPos + 1); r >= insertionSortThreshold {
		data[pivotPos+1], data[pivotPos+1+r/4] = data[pivotPos+1+r/4], data[pivotPos+1]
		data[hi-1], data[hi-r/4] = data[hi-r/4], data[hi-1]
	}
}
