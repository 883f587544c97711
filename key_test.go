package snaek

import "testing"

// keyAt is one call site used with several sub-keys.
//
//go:noinline
func keyAt(i uint64) WidgetKey { return Key(i) }

func TestKeyCallSite(t *testing.T) {
	a := Key()
	b := Key()
	if a == b {
		t.Error("keys from different lines collide")
	}

	var loop []WidgetKey
	for i := 0; i < 2; i++ {
		loop = append(loop, Key())
	}
	if loop[0] != loop[1] {
		t.Error("the same line produced different keys")
	}

	if keyAt(1) == keyAt(2) {
		t.Error("sub-keys do not disambiguate")
	}
	if keyAt(3) != keyAt(3) {
		t.Error("same call site and sub-key produced different keys")
	}
}

func TestKeyOf(t *testing.T) {
	parent := WidgetKey(1234)
	if KeyOf(parent, 1) != KeyOf(parent, 1) {
		t.Error("KeyOf is not deterministic")
	}
	if KeyOf(parent, 1) == KeyOf(parent, 2) {
		t.Error("sub-keys collide")
	}
	if KeyOf(parent, 1) == KeyOf(parent, 1, 0) {
		t.Error("sub-key count ignored")
	}
	if KeyOf(parent) == KeyOf(parent+1) {
		t.Error("parents collide")
	}
	for i := uint64(0); i < 1000; i++ {
		if KeyOf(parent, i) == 0 {
			t.Fatalf("KeyOf returned the anonymous key for %d", i)
		}
	}
}
