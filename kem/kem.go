// Package kem wraps the Streamlined NTRU Prime 4591^761 key encapsulation
// mechanism and derives hybrid keys from a KEM shared key combined with an
// X25519 shared secret, so key exchanges remain confidential against a
// future quantum adversary as long as either primitive holds.
package kem

import (
	"errors"
	"io"

	"github.com/companyzero/sntrup4591761"
	"github.com/decred/dcrd/crypto/blake256"
)

// Sizes of the KEM artifacts in bytes.
const (
	PublicKeySize  = sntrup4591761.PublicKeySize
	PrivateKeySize = sntrup4591761.PrivateKeySize
	CiphertextSize = sntrup4591761.CiphertextSize
	SharedKeySize  = sntrup4591761.SharedKeySize
)

type (
	PublicKey  = [PublicKeySize]byte
	PrivateKey = [PrivateKeySize]byte
	Ciphertext = [CiphertextSize]byte
	SharedKey  = [SharedKeySize]byte
)

// ErrDecapsulate is returned when a ciphertext does not decapsulate under
// the private key.
var ErrDecapsulate = errors.New("kem: invalid ciphertext")

// GenerateKey creates a KEM key pair.
func GenerateKey(rand io.Reader) (*PublicKey, *PrivateKey, error) {
	return sntrup4591761.GenerateKey(rand)
}

// Encapsulate creates a shared key and the ciphertext that transports it to
// the holder of the private key.
func Encapsulate(rand io.Reader, pk *PublicKey) (*Ciphertext, *SharedKey, error) {
	return sntrup4591761.Encapsulate(rand, pk)
}

// Decapsulate recovers the shared key created by the sender from the
// ciphertext.
func Decapsulate(ct *Ciphertext, sk *PrivateKey) (*SharedKey, error) {
	key, ok := sntrup4591761.Decapsulate(ct, sk)
	if ok != 1 {
		return nil, ErrDecapsulate
	}
	return key, nil
}

// HybridKey derives the 32-byte session key from an X25519 shared secret
// and a KEM shared key by hashing the concatenation.
func HybridKey(ecdhShared []byte, kemShared *SharedKey) [32]byte {
	h := blake256.New()
	h.Write(ecdhShared)
	h.Write(kemShared[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
