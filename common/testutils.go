package common

import "testing"

// AssertArraysEqual fails the test when the two slices differ in length or in
// any element.
func AssertArraysEqual[V comparable](t *testing.T, want, got []V) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("array sizes differ, %d != %d", len(want), len(got))
		return
	}
	for i := 0; i < len(want); i++ {
		if want[i] != got[i] {
			t.Errorf("elements at index %d differ: %v != %v", i, want[i], got[i])
		}
	}
}
