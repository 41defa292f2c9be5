package id

import "testing"

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()
	a, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := gen.NewID()
	if a == b {
		t.Fatalf("expected distinct ids")
	}
	if !Valid(a) {
		t.Fatalf("generated id %q should be valid", a)
	}
	if Valid("not-a-uuid") {
		t.Fatalf("expected junk to be rejected")
	}
}
