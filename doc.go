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

// Package pdqsort provides a pattern-defeating quicksort: an in-place,
// unstable, comparison-based sort over a slice.
//
// # Algorithm
//
// Pdqsort is an introsort variant that combines:
//   - Insertion sort for small subranges (guarded at the range start,
//     unguarded behind a known sentinel)
//   - Median-of-three pivot selection with quicksort partitioning
//   - An equal-element partition to handle inputs with few distinct
//     keys in linear time
//   - A bounded insertion-sort probe that finishes already-sorted
//     subranges in linear time
//   - Deterministic element shuffling after unbalanced partitions to
//     break adversarial patterns
//   - Heapsort fallback to guarantee O(n log n) worst case
//
// # Example Usage
//
//	import "github.com/ajroetker/go-pdqsort"
//
//	func ProcessData(data []float64) {
//	    pdqsort.Sort(data)  // In-place ascending sort
//	}
//
//	func SortByAge(people []Person) {
//	    pdqsort.SortFunc(people, func(a, b Person) bool {
//	        return a.Age < b.Age
//	    })
//	}
//
// # Performance
//
// Pdqsort matches classical introsort on random data and degrades to
// O(n) on inputs that are already sorted, reverse sorted, or contain
// few distinct keys. The sort performs no heap allocation and uses
// O(log n) stack.
//
// The sort is not stable: the relative order of equal elements is not
// preserved.
package pdqsort
