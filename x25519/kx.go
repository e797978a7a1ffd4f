package x25519

import (
	"errors"
	"io"
)

// errLowOrderPoint is returned by SharedKey when the peer public value is a
// low-order point and the shared secret would be all zeros.
var errLowOrderPoint = errors.New("x25519: low-order peer public value")

type Public [32]byte
type Scalar [32]byte

// KX is the client-generated public and secret portions of a key exchange.
type KX struct {
	Public
	Scalar // secret
}

// New begins a new key exchange by generating a public and secret value.
// Public portions must be exchanged between parties to derive a shared secret
// key.
func New(rand io.Reader) (*KX, error) {
	kx := new(KX)
	_, err := io.ReadFull(rand, kx.Scalar[:])
	if err != nil {
		return nil, err
	}

	// https://cr.yp.to/ecdh.html; Computing secret keys.
	kx.Scalar[0] &= 248
	kx.Scalar[31] &= 127
	kx.Scalar[31] |= 64

	scalarMult((*[32]byte)(&kx.Public), (*[32]byte)(&kx.Scalar), &basePoint)
	return kx, nil
}

// SharedKey computes a shared key with the other party from our secret value
// and their public value.  An all-zero result, produced by a low-order peer
// public value, is rejected.  The result should be securely hashed before
// usage.
func (kx *KX) SharedKey(theirPublic *Public) ([]byte, error) {
	var sharedKey [32]byte
	scalarMult(&sharedKey, (*[32]byte)(&kx.Scalar), (*[32]byte)(theirPublic))
	var zero [32]byte
	if sharedKey == zero {
		return nil, errLowOrderPoint
	}
	return sharedKey[:], nil
}
