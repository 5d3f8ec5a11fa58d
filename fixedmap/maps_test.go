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
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slices"

	"github.com/Fantom-foundation/TinyMap/go/common"
)

func TestCollectEntriesDrainsIterator(t *testing.T) {
	ctrl := gomock.NewController(t)
	it := NewMockIterator[int](ctrl)

	gomock.InOrder(
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(10),
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(20),
		it.EXPECT().HasNext().Return(false),
	)

	common.AssertArraysEqual(t, []int{10, 20}, CollectEntries[int](it))
}

func TestCollectEntriesOfEmptyIteratorIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	it := NewMockIterator[int](ctrl)
	it.EXPECT().HasNext().Return(false)

	if got := CollectEntries[int](it); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestEqualMapsComparesContent(t *testing.T) {
	a := Of(
		Entry[string, int]{"key1", 1},
		Entry[string, int]{"key2", 2},
	)
	sameReordered := Of(
		Entry[string, int]{"key2", 2},
		Entry[string, int]{"key1", 1},
	)
	differentValue := Of(
		Entry[string, int]{"key1", 1},
		Entry[string, int]{"key2", 3},
	)
	differentKey := Of(
		Entry[string, int]{"key1", 1},
		Entry[string, int]{"key3", 2},
	)
	smaller := Of(
		Entry[string, int]{"key1", 1},
	)

	if !EqualMaps[string, int](a, a) {
		t.Errorf("a map must equal itself")
	}
	if !EqualMaps[string, int](a, sameReordered) {
		t.Errorf("entry order must not affect equality")
	}
	if EqualMaps[string, int](a, differentValue) {
		t.Errorf("maps with different values must not be equal")
	}
	if EqualMaps[string, int](a, differentKey) {
		t.Errorf("maps with different keys must not be equal")
	}
	if EqualMaps[string, int](a, smaller) {
		t.Errorf("maps of different sizes must not be equal")
	}
}

func TestEqualMapsShortCircuitsOnSizeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockReadOnlyMap[string, int](ctrl)
	b := NewMockReadOnlyMap[string, int](ctrl)

	a.EXPECT().Size().Return(2)
	b.EXPECT().Size().Return(3)

	// no lookup may be issued when the sizes already differ
	if EqualMaps[string, int](a, b) {
		t.Errorf("maps of different sizes must not be equal")
	}
}

func TestSortedKeysReturnsKeysInAscendingOrder(t *testing.T) {
	m := Of(
		Entry[string, int]{"c", 3},
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
	)

	keys := SortedKeys[string, int](m)
	common.AssertArraysEqual(t, []string{"a", "b", "c"}, keys)
	if !slices.IsSorted(keys) {
		t.Errorf("keys are not sorted: %v", keys)
	}
}

func TestSortedKeysQueriesTheMapOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockReadOnlyMap[int, string](ctrl)

	m.EXPECT().Size().Return(3)
	m.EXPECT().ForEach(gomock.Any()).Do(func(callback func(int, string)) {
		callback(3, "c")
		callback(1, "a")
		callback(2, "b")
	})

	common.AssertArraysEqual(t, []int{1, 2, 3}, SortedKeys[int, string](m))
}
