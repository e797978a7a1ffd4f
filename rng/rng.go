// Package rng provides the randomness sources consumed by key generation,
// OAEP seeds, PSS salts, and PKCS#1 type 2 padding.
package rng

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Reader is the process CSPRNG.  Operations taking a rand io.Reader are
// normally given this.
var Reader io.Reader = rand.Reader

// Bytes reads n cryptographically secure random bytes from rand.  A short
// read or failure is returned as an error; callers treat it as fatal.
func Bytes(rand io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, fmt.Errorf("rng: read %d bytes: %w", n, err)
	}
	return buf, nil
}
