// Package pingen generates withdrawal PIN codes from the system CSPRNG.
// Withdrawal PINs gate money movement, so they are treated as a security
// control rather than UX friction.
package pingen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/tonsuimining/platform/internal/domain/port/core"
)

// CryptoGenerator implements PinGenerator using crypto/rand
type CryptoGenerator struct{}

// NewCryptoGenerator creates a CSPRNG-backed PIN generator
func NewCryptoGenerator() core.PinGenerator {
	return &CryptoGenerator{}
}

// Generate returns a uniformly random numeric string of exactly length
// digits. Leading zeros are allowed; collisions across PINs are not checked.
func (g *CryptoGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("pin length must be positive, got %d", length)
	}

	digits := make([]byte, length)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("reading random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
