// Copyright the Vigil contributors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package funcutil provides generic helpers shared across the analyzer.
package funcutil

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Map returns a new slice b such that b[i] = f(a[i]).
func Map[T any, S any](a []T, f func(T) S) []S {
	b := make([]S, len(a))
	for i, x := range a {
		b[i] = f(x)
	}
	return b
}

// Filter returns the elements of a for which pred holds, in order.
func Filter[T any](a []T, pred func(T) bool) []T {
	var b []T
	for _, x := range a {
		if pred(x) {
			b = append(b, x)
		}
	}
	return b
}

// Contains returns true if x is an element of a.
func Contains[T comparable](a []T, x T) bool {
	for _, y := range a {
		if y == x {
			return true
		}
	}
	return false
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
