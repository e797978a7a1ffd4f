package rng

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the required length of seeds for NewDeterministic.
const SeedSize = 32

// Deterministic is a ChaCha20 PRNG for reproducible randomness in tests and
// tooling.  It implements io.Reader.  It is not safe for concurrent access.
type Deterministic struct {
	cipher *chacha20.Cipher
}

// NewDeterministic creates a ChaCha20 PRNG keyed by a 32-byte seed and a
// stream number.  This will panic if the length of seed is not SeedSize
// bytes.
func NewDeterministic(seed []byte, stream uint32) *Deterministic {
	if l := len(seed); l != SeedSize {
		panic("rng: bad seed length " + strconv.Itoa(l))
	}
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint32(nonce[:4], stream)
	cipher, err := chacha20.NewUnauthenticatedCipher(seed, nonce[:])
	if err != nil {
		panic("rng: " + err.Error())
	}
	return &Deterministic{cipher: cipher}
}

// Read implements io.Reader.
func (r *Deterministic) Read(b []byte) (int, error) {
	// Zero the destination so it is written with just the keystream.
	for i := range b {
		b[i] = 0
	}
	r.cipher.XORKeyStream(b, b)
	return len(b), nil
}

// Next returns the next n bytes from the reader.
func (r *Deterministic) Next(n int) []byte {
	b := make([]byte, n)
	r.cipher.XORKeyStream(b, b)
	return b
}
