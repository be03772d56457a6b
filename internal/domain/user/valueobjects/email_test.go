package valueobjects

import (
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid address", "jane@example.com", "jane@example.com", false},
		{"normalizes case", "Jane.Lee@Example.COM", "jane.lee@example.com", false},
		{"trims whitespace", "  jane@example.com  ", "jane@example.com", false},
		{"plus addressing", "jane+claims@example.com", "jane+claims@example.com", false},
		{"empty", "", "", true},
		{"missing at sign", "jane.example.com", "", true},
		{"missing domain", "jane@", "", true},
		{"missing tld", "jane@example", "", true},
		{"embedded space", "jane doe@example.com", "", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewEmail(%q) expected error, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEmail(%q) unexpected error: %v", tt.input, err)
			}
			if email.String() != tt.want {
				t.Errorf("NewEmail(%q) = %q, want %q", tt.input, email.String(), tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("approver@example.com") {
		t.Error("IsValidEmail rejected a valid address")
	}
	if IsValidEmail("not-an-email") {
		t.Error("IsValidEmail accepted a malformed address")
	}
	if IsValidEmail("") {
		t.Error("IsValidEmail accepted an empty string")
	}
}
