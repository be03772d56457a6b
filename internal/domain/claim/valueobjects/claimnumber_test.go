package valueobjects

import (
	"strings"
	"testing"
)

func TestDeriveClaimNumber(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    string
	}{
		{"storefront order reference", "TMR-O12345", "CLAIM-12345"},
		{"single digit", "TMR-O7", "CLAIM-7"},
		{"leading zeros kept", "TMR-O007", "CLAIM-007"},
		{"whitespace trimmed", "  TMR-O42  ", "CLAIM-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveClaimNumber(tt.orderID)
			if got.String() != tt.want {
				t.Errorf("DeriveClaimNumber(%q) = %q, want %q", tt.orderID, got.String(), tt.want)
			}
		})
	}
}

func TestDeriveClaimNumber_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
	}{
		{"foreign order format", "SHOP-999"},
		{"marker without digits", "TMR-O"},
		{"marker with trailing text", "TMR-O123X"},
		{"lowercase marker", "tmr-o123"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveClaimNumber(tt.orderID)
			if !strings.HasPrefix(got.String(), "CLAIM-X") {
				t.Errorf("DeriveClaimNumber(%q) = %q, want random CLAIM-X prefix", tt.orderID, got.String())
			}
			if len(got.String()) <= len("CLAIM-X") {
				t.Errorf("DeriveClaimNumber(%q) = %q, missing random suffix", tt.orderID, got.String())
			}
		})
	}
}

func TestDeriveClaimNumber_FallbackIsRandom(t *testing.T) {
	a := DeriveClaimNumber("SHOP-1")
	b := DeriveClaimNumber("SHOP-1")
	if a.String() == b.String() {
		t.Errorf("two fallback claim numbers collided: %q", a.String())
	}
}

func TestReconstructClaimNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"derived number", "CLAIM-12345", false},
		{"random number", "CLAIM-Xa1B2c3D4", false},
		{"missing prefix", "12345", true},
		{"bare prefix", "CLAIM-", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ReconstructClaimNumber(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReconstructClaimNumber(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && n.String() != tt.input {
				t.Errorf("ReconstructClaimNumber(%q).String() = %q", tt.input, n.String())
			}
		})
	}
}
