package main

import "testing"

func TestExtensionIDFormat(t *testing.T) {
	id := extensionID([]byte("arbitrary public key bytes"))

	if len(id) != 32 {
		t.Fatalf("id length = %d, want 32", len(id))
	}
	for i, c := range id {
		if c < 'a' || c > 'p' {
			t.Errorf("id[%d] = %q, outside the a-p alphabet", i, c)
		}
	}
}

func TestExtensionIDDeterministic(t *testing.T) {
	input := []byte{0x30, 0x82, 0x01, 0x22}
	if extensionID(input) != extensionID(input) {
		t.Error("same input produced different IDs")
	}
	if extensionID(input) == extensionID([]byte{0x30, 0x82, 0x01, 0x23}) {
		t.Error("different inputs produced the same ID")
	}
}
