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

// NthElement rearranges data such that the element at index k is the
// element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
// Out-of-range k leaves data unchanged.
func NthElement[T cmp.Ordered](data []T, k int) {
	NthElementFunc(data, k, cmp.Less[T])
}

// NthElementFunc is NthElement under a caller-supplied ordering.
//
// It reuses the quicksort partition machinery, narrowing to the side
// containing k. Like SortFunc it keeps a bad-partition budget; when
// the budget runs out the remaining window is heapsorted, which
// bounds the worst case to O(n log n).
func NthElementFunc[T any](data []T, k int, less func(a, b T) bool) {
	n := len(data)
	if k < 0 || k >= n || n <= 1 {
		return
	}

	badAllowed := log2(n)
	lo, hi := 0, n

	for hi-lo >= insertionSortThreshold {
		m := hi - lo
		sort3(data, lo+m/2, lo, hi-1, less)
		pivotPos, _ := partitionRight(data, lo, hi, less)
		if pivotPos == k {
			return
		}

		leftLen := pivotPos - lo
		if leftLen < m/8 || leftLen > m-m/8 {
			badAllowed--
			if badAllowed == 0 {
				heapSort(data, lo, hi, less)
				return
			}
			breakPatterns(data, lo, pivotPos, hi)
		}

		if k < pivotPos {
			hi = pivotPos
		} else {
			lo = pivotPos + 1
		}
	}

	insertionSort(data, lo, hi, less)
}
