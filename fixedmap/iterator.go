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

// EntryIterator iterates the entries of a FixedMap in insertion order. It is
// a forward-only cursor; a new traversal is started by requesting a fresh
// iterator from the map.
type EntryIterator[K comparable, V any] struct {
	entries []Entry[K, V]
	index   int
}

// HasNext returns true if there is still at least one more entry to visit.
func (it *EntryIterator[K, V]) HasNext() bool {
	return it.index < len(it.entries)
}

// Next returns the next entry and advances the iterator. It must only be
// called after HasNext reported true.
func (it *EntryIterator[K, V]) Next() Entry[K, V] {
	res := it.entries[it.index]
	it.index++
	return res
}
