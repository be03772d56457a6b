// Package id generates short random identifiers. The claim engine uses them
// as collision-resistant suffixes for claim numbers derived from order ids
// that do not follow the store's "TMR-O<digits>" convention.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12

	// ClaimSuffixLength is the length of the random suffix appended to
	// fallback claim numbers.
	ClaimSuffixLength = 8
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewClaimSuffix generates the random suffix used by fallback claim numbers.
// crypto/rand failures are not recoverable at this level, so it panics rather
// than forcing an error branch on every caller.
func NewClaimSuffix() string {
	return MustGenerate(ClaimSuffixLength)
}
