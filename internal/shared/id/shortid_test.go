package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(16)
	if err != nil {
		t.Fatalf("Generate(16) error = %v", err)
	}
	if len(got) != 16 {
		t.Errorf("len(Generate(16)) = %d, want 16", len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune(alphabet, r) {
			t.Errorf("Generate(16) produced %q outside the alphabet", r)
		}
	}
}

func TestGenerate_DefaultsLength(t *testing.T) {
	got, err := Generate(0)
	if err != nil {
		t.Fatalf("Generate(0) error = %v", err)
	}
	if len(got) != DefaultLength {
		t.Errorf("len(Generate(0)) = %d, want %d", len(got), DefaultLength)
	}
}

func TestNewClaimSuffix(t *testing.T) {
	got := NewClaimSuffix()
	if len(got) != ClaimSuffixLength {
		t.Errorf("len(NewClaimSuffix()) = %d, want %d", len(got), ClaimSuffixLength)
	}
	if got == NewClaimSuffix() {
		t.Error("two claim suffixes collided")
	}
}
