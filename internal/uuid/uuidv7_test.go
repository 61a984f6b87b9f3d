package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	// version nibble is the first character of the third group
	if parts := strings.Split(id, "-"); parts[2][0] != '7' {
		t.Errorf("expected version 7, got %q", id)
	}
	if New() == id {
		t.Error("expected distinct ids")
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F5B4-1C2D-7A3B-8C4D-5E6F7A8B9C0D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190f5b4-1c2d-7a3b-8c4d-5e6f7a8b9c0d" {
		t.Errorf("expected lower-case canonical form, got %q", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
}
