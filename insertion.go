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

// insertionSort sorts data[lo:hi]. Safe at the start of the sequence.
func insertionSort[T any](data []T, lo, hi int, less func(a, b T) bool) {
	for cur := lo + 1; cur < hi; cur++ {
		// Compare first so an element already in position costs one
		// comparison and no moves.
		if less(data[cur], data[cur-1]) {
			tmp := data[cur]
			sift := cur
			for {
				data[sift] = data[sift-1]
				sift--
				if sift == lo || !less(tmp, data[sift-1]) {
					break
				}
			}
			data[sift] = tmp
		}
	}
}

// unguardedInsertionSort sorts data[lo:hi], assuming data[lo-1] is no
// larger than any element of the subrange. The sentinel terminates
// the shift loop without a bound check.
func unguardedInsertionSort[T any](data []T, lo, hi int, less func(a, b T) bool) {
	for cur := lo + 1; cur < hi; cur++ {
		if less(data[cur], data[cur-1]) {
			tmp := data[cur]
			sift := cur
			for {
				data[sift] = data[sift-1]
				sift--
				if !less(tmp, data[sift-1]) {
					break
				}
			}
			data[sift] = tmp
		}
	}
}

// partialInsertionSort attempts to insertion sort data[lo:hi], giving
// up once more than partialInsertionSortLimit elements have been
// moved. Returns true if the subrange was left sorted. On false the
// partial work stays in place; it is a rearrangement of the input, so
// the caller may keep partitioning.
func partialInsertionSort[T any](data []T, lo, hi int, less func(a, b T) bool) bool {
	moved := 0
	for cur := lo + 1; cur < hi; cur++ {
		if moved > partialInsertionSortLimit {
			return false
		}

		if less(data[cur], data[cur-1]) {
			tmp := data[cur]
			data[cur] = data[cur-1]
			sift := cur - 1
			for sift != lo && less(tmp, data[sift-1]) {
				data[sift] = data[sift-1]
				sift--
			}
			data[sift] = tmp
			moved += cur - sift
		}
	}
	return true
}
