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

// heapSort sorts data[lo:hi] with a binary max-heap. It needs no
// sentinel properties and is the O(n log n) safety net once the
// bad-partition budget runs out.
func heapSort[T any](data []T, lo, hi int, less func(a, b T) bool) {
	n := hi - lo

	// Build max-heap.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, lo, i, n, less)
	}

	// Extract elements.
	for i := n - 1; i > 0; i-- {
		data[lo], data[lo+i] = data[lo+i], data[lo]
		siftDown(data, lo, 0, i, less)
	}
}

// siftDown restores the max-heap property of the heap rooted at i
// within data[lo:lo+n].
func siftDown[T any](data []T, lo, i, n int, less func(a, b T) bool) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && less(data[lo+largest], data[lo+left]) {
			largest = left
		}
		if right < n && less(data[lo+largest], data[lo+right]) {
			largest = right
		}

		if largest == i {
			return
		}

		data[lo+i], data[lo+largest] = data[lo+largest], data[lo+i]
		i = largest
	}
}
