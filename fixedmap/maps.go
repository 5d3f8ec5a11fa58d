// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fixedmap

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// CollectEntries drains the given iterator into a slice, preserving the
// iteration order.
func CollectEntries[T any](it Iterator[T]) []T {
	res := []T{}
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

// EqualMaps returns whether two maps associate the same set of keys with the
// same values, independent of their entry order.
func EqualMaps[K comparable, V comparable](a, b ReadOnlyMap[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.ForEach(func(key K, val V) {
		if other, exists := b.Get(key); !exists || other != val {
			equal = false
		}
	})
	return equal
}

// SortedKeys returns the keys of the given map in ascending order.
func SortedKeys[K constraints.Ordered, V any](m ReadOnlyMap[K, V]) []K {
	keys := make([]K, 0, m.Size())
	m.ForEach(func(key K, _ V) {
		keys = append(keys, key)
	})
	slices.Sort(keys)
	return keys
}
