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

import "unsafe"

// Equality is an interface for types implementing equality predicates for
// keys. It replaces the native == operator for key types where == does not
// express the intended key identity, most notably pointer-shaped keys whose
// == compares addresses rather than the pointed-to content.
type Equality[K any] interface {
	Equal(a, b K) bool
}

// NativeEquality compares keys using the == operator of the key type. It is
// the default predicate of FixedMap.
type NativeEquality[K comparable] struct{}

func (NativeEquality[K]) Equal(a, b K) bool {
	return a == b
}

// StringPtrEquality compares *string keys by the content of the referenced
// strings. Two nil pointers are equal; a nil pointer never equals a non-nil
// one. Using the native == on *string keys would compare addresses, treating
// two identical strings stored at different locations as distinct keys.
type StringPtrEquality struct{}

func (StringPtrEquality) Equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// BytePtrEquality compares *byte keys as zero-terminated strings, character
// by character up to and including the terminator. It serves keys carrying
// C-string data, where the key value is the address of the first character.
// Both pointers must reference zero-terminated sequences; nil is only equal
// to nil.
type BytePtrEquality struct{}

func (BytePtrEquality) Equal(a, b *byte) bool {
	if a == nil || b == nil {
		return a == b
	}
	pa := unsafe.Pointer(a)
	pb := unsafe.Pointer(b)
	for {
		ca := *(*byte)(pa)
		cb := *(*byte)(pb)
		if ca != cb {
			return false
		}
		if ca == 0 {
			return true
		}
		pa = unsafe.Add(pa, 1)
		pb = unsafe.Add(pb, 1)
	}
}
