// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package demo shows how the fixedmap package is consumed by application
// code. It is not part of the container itself.
package demo

import "github.com/Fantom-foundation/TinyMap/go/fixedmap"

// statusText is a fixed lookup table translating status codes to their
// human-readable reasons. The table is populated once at startup and never
// changes; for tables of this size the linear scan of a fixed map resolves
// lookups faster than a hash map, without any allocation per query.
var statusText = fixedmap.Of(
	fixedmap.Entry[int, string]{Key: 200, Val: "OK"},
	fixedmap.Entry[int, string]{Key: 301, Val: "Moved Permanently"},
	fixedmap.Entry[int, string]{Key: 400, Val: "Bad Request"},
	fixedmap.Entry[int, string]{Key: 404, Val: "Not Found"},
	fixedmap.Entry[int, string]{Key: 500, Val: "Internal Server Error"},
)

// StatusText returns the reason for the given status code and whether the
// code is known.
func StatusText(code int) (string, bool) {
	return statusText.Get(code)
}

// MustStatusText returns the reason for the given status code. The code must
// be one of the known codes; the call panics otherwise.
func MustStatusText(code int) string {
	return statusText.At(code)
}

// KnownStatusCodes returns all codes of the table in ascending order.
func KnownStatusCodes() []int {
	return fixedmap.SortedKeys[int, string](statusText)
}
