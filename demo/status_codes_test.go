// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package demo

import (
	"testing"

	"github.com/Fantom-foundation/TinyMap/go/common"
)

func TestStatusTextResolvesKnownCodes(t *testing.T) {
	tests := []struct {
		code   int
		reason string
	}{
		{200, "OK"},
		{404, "Not Found"},
		{500, "Internal Server Error"},
	}
	for _, test := range tests {
		if got, exists := StatusText(test.code); !exists || got != test.reason {
			t.Errorf("wrong reason for code %d: %q, %t", test.code, got, exists)
		}
		if got := MustStatusText(test.code); got != test.reason {
			t.Errorf("wrong reason for code %d: %q", test.code, got)
		}
	}
}

func TestStatusTextReportsUnknownCodes(t *testing.T) {
	if reason, exists := StatusText(418); exists {
		t.Errorf("unknown code resolved to %q", reason)
	}
}

func TestMustStatusTextPanicsOnUnknownCode(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic for an unknown code")
		}
	}()
	MustStatusText(418)
}

func TestKnownStatusCodesAreSorted(t *testing.T) {
	common.AssertArraysEqual(t, []int{200, 301, 400, 404, 500}, KnownStatusCodes())
}
