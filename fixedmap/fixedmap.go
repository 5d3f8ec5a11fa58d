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
	"fmt"
	"strings"
	"unsafe"

	"github.com/Fantom-foundation/TinyMap/go/common"
)

const (
	// ErrEmptyMap is returned when a map is constructed with a declared size of zero.
	ErrEmptyMap = common.ConstError("fixed map must hold at least one entry")
	// ErrSizeMismatch is returned when the number of supplied entries does not
	// match the declared size of the map.
	ErrSizeMismatch = common.ConstError("number of entries does not match the declared map size")
)

// Entry is a single key-value pair stored in a FixedMap.
type Entry[K comparable, V any] struct {
	Key K
	Val V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}

// FixedMap is an immutable associative container holding a fixed number of
// key-value pairs determined at construction time. Entries are stored by value
// in a contiguous sequence in their insertion order, which is also the
// iteration order. Lookups scan this sequence from the front and resolve keys
// through a pluggable Equality predicate.
//
// The map offers no mutating operation, so any number of concurrent readers is
// safe without synchronization. Duplicate keys are not detected; when present,
// lookups resolve to the first entry in insertion order holding such a key.
//
// Instances must be created through New, Of, or their WithEquality variants;
// the zero value is not a valid map.
type FixedMap[K comparable, V any] struct {
	entries []Entry[K, V]
	eq      Equality[K]
}

// New creates a FixedMap holding the given entries. The declared size must be
// positive and must match the number of supplied entries exactly; otherwise
// ErrEmptyMap or ErrSizeMismatch is returned and no map is created. The
// entries are copied, later changes to the input slice have no effect on
// the map.
func New[K comparable, V any](size int, entries ...Entry[K, V]) (FixedMap[K, V], error) {
	return NewWithEquality[K, V](size, NativeEquality[K]{}, entries...)
}

// NewWithEquality is like New, with key comparison delegated to the given
// equality predicate instead of the native == operator.
func NewWithEquality[K comparable, V any](size int, eq Equality[K], entries ...Entry[K, V]) (FixedMap[K, V], error) {
	if size <= 0 {
		return FixedMap[K, V]{}, fmt.Errorf("%w, got size %d", ErrEmptyMap, size)
	}
	if len(entries) != size {
		return FixedMap[K, V]{}, fmt.Errorf("%w, declared %d, got %d", ErrSizeMismatch, size, len(entries))
	}
	data := make([]Entry[K, V], size)
	copy(data, entries)
	return FixedMap[K, V]{entries: data, eq: eq}, nil
}

// Of creates a FixedMap whose size is the number of supplied entries, ruling
// out a size mismatch by construction. It panics when called without entries,
// as a fixed map may never be empty.
func Of[K comparable, V any](entries ...Entry[K, V]) FixedMap[K, V] {
	return OfWithEquality[K, V](NativeEquality[K]{}, entries...)
}

// OfWithEquality is like Of, with key comparison delegated to the given
// equality predicate instead of the native == operator.
func OfWithEquality[K comparable, V any](eq Equality[K], entries ...Entry[K, V]) FixedMap[K, V] {
	res, err := NewWithEquality[K, V](len(entries), eq, entries...)
	if err != nil {
		panic(fmt.Sprintf("fixedmap: invalid construction: %v", err))
	}
	return res
}

// Find returns the position of the first entry in insertion order whose key
// equals the given key, or an invalid position if there is no such entry.
func (m FixedMap[K, V]) Find(key K) Position[K, V] {
	for i := 0; i < len(m.entries); i++ {
		if m.eq.Equal(m.entries[i].Key, key) {
			return Position[K, V]{entries: m.entries, index: i}
		}
	}
	return Position[K, V]{entries: m.entries, index: len(m.entries)}
}

// Get returns the value associated with the given key. The second return
// value indicates whether the key was present; when false, the first return
// value is the zero value of V and must not be interpreted.
func (m FixedMap[K, V]) Get(key K) (V, bool) {
	if pos := m.Find(key); pos.Valid() {
		return m.entries[pos.index].Val, true
	}
	var none V
	return none, false
}

// At returns the value associated with the given key without reporting
// presence. The key must be present; At panics otherwise. Callers that cannot
// guarantee presence need to use Get or Contains first.
func (m FixedMap[K, V]) At(key K) V {
	pos := m.Find(key)
	if !pos.Valid() {
		panic(fmt.Sprintf("fixedmap: no entry for key %v", key))
	}
	return m.entries[pos.index].Val
}

// Contains returns whether an entry with the given key is present.
func (m FixedMap[K, V]) Contains(key K) bool {
	return m.Find(key).Valid()
}

// Size returns the number of entries, fixed for the lifetime of the map.
func (m FixedMap[K, V]) Size() int {
	return len(m.entries)
}

// Empty always reports false, since a FixedMap cannot be constructed without
// entries.
func (m FixedMap[K, V]) Empty() bool {
	return false
}

// ForEach calls the callback for each key-value pair in insertion order.
func (m FixedMap[K, V]) ForEach(callback func(K, V)) {
	for i := 0; i < len(m.entries); i++ {
		callback(m.entries[i].Key, m.entries[i].Val)
	}
}

// Entries returns a fresh iterator over all entries in insertion order. Each
// call starts a new traversal.
func (m FixedMap[K, V]) Entries() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{entries: m.entries}
}

// GetAll returns a copy of all entries in insertion order. The copy is owned
// by the caller; modifying it has no effect on the map.
func (m FixedMap[K, V]) GetAll() []Entry[K, V] {
	res := make([]Entry[K, V], len(m.entries))
	copy(res, m.entries)
	return res
}

func (m FixedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("FixedMap{")
	for i := 0; i < len(m.entries); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", m.entries[i].Key, m.entries[i].Val)
	}
	sb.WriteString("}")
	return sb.String()
}

func (m FixedMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	selfSize := unsafe.Sizeof(m)
	entrySize := unsafe.Sizeof(Entry[K, V]{})
	mf := common.NewMemoryFootprint(selfSize + uintptr(len(m.entries))*entrySize)
	mf.SetNote(fmt.Sprintf("%d entries", len(m.entries)))
	return mf
}

// Position is a cursor into a FixedMap produced by Find. It either designates
// one of the map's entries or is the distinguished invalid position reporting
// that no entry matched.
type Position[K comparable, V any] struct {
	entries []Entry[K, V]
	index   int
}

// Valid returns whether the position designates an entry.
func (p Position[K, V]) Valid() bool {
	return p.index < len(p.entries)
}

// Key returns the key of the designated entry. It panics on an invalid
// position.
func (p Position[K, V]) Key() K {
	if !p.Valid() {
		panic("fixedmap: key of an invalid position")
	}
	return p.entries[p.index].Key
}

// Value returns the value of the designated entry. It panics on an invalid
// position.
func (p Position[K, V]) Value() V {
	if !p.Valid() {
		panic("fixedmap: value of an invalid position")
	}
	return p.entries[p.index].Val
}
