package rsa

import (
	"bytes"
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/decred/dcrd/crypto/blake256"
)

// mgf1 expands seed to length bytes by masking a zero buffer.
func mgf1(seed []byte, length int, h func() hash.Hash) []byte {
	out := make([]byte, length)
	mgf1XOR(out, seed, h)
	return out
}

func TestMGF1(t *testing.T) {
	seed := []byte("mask generation seed")
	for _, h := range []func() hash.Hash{sha256.New, blake256.New} {
		hLen := h().Size()
		for _, length := range []int{1, hLen - 1, hLen, hLen + 1, 3*hLen + 7} {
			mask := mgf1(seed, length, h)
			if len(mask) != length {
				t.Fatalf("mask length %d, want %d", len(mask), length)
			}

			// The leading bytes are H(seed || 0x00000000).
			hh := h()
			hh.Write(seed)
			hh.Write([]byte{0, 0, 0, 0})
			first := hh.Sum(nil)
			n := length
			if n > hLen {
				n = hLen
			}
			if !bytes.Equal(mask[:n], first[:n]) {
				t.Fatalf("mask prefix %x, want %x", mask[:n], first[:n])
			}
		}

		// Masking twice restores the original buffer.
		buf := []byte("some buffer contents under mask")
		orig := append([]byte(nil), buf...)
		mgf1XOR(buf, seed, h)
		if bytes.Equal(buf, orig) {
			t.Fatal("mask is a no-op")
		}
		mgf1XOR(buf, seed, h)
		if !bytes.Equal(buf, orig) {
			t.Fatal("double masking did not restore input")
		}
	}
}
