// Package rsa implements textbook RSA with PKCS#1 v1.5, OAEP, and PSS
// padding over arbitrary-precision arithmetic from vexil.org/pkc/bigint.
//
// Messages are processed in successive blocks of the modulus width;
// each ciphertext or signature block is exactly Size() bytes, big-endian,
// zero-left-padded.  Private-key operations use the CRT parameters when the
// key carries them.
package rsa

import (
	"errors"
	"fmt"
	"io"

	"vexil.org/pkc/bigint"
)

var one = bigint.FromUint64(1)

// PublicKey holds the modulus and public exponent of an RSA key.
type PublicKey struct {
	N *bigint.Int
	E uint32 // below 2^31
}

// PrivateKey holds private RSA key material.  P through Qinv are the CRT
// parameters and may be absent together; when present, P > Q and N = P*Q.
type PrivateKey struct {
	PublicKey
	D    *bigint.Int
	P    *bigint.Int
	Q    *bigint.Int
	Dp   *bigint.Int // D mod (P-1)
	Dq   *bigint.Int // D mod (Q-1)
	Qinv *bigint.Int // Q^-1 mod P
}

// Size returns the modulus width in bytes; every ciphertext and signature
// block has exactly this length.
func (k *PublicKey) Size() int { return (k.N.BitLen() + 7) / 8 }

// CanEncrypt returns whether the key has the material for public-key
// operations.
func (k *PublicKey) CanEncrypt() bool { return k.N != nil && k.E != 0 }

// CanDecrypt returns whether the key has the material for private-key
// operations.
func (k *PrivateKey) CanDecrypt() bool { return k.CanEncrypt() && k.D != nil }

var errKeyMaterial = errors.New("rsa: key lacks material for requested operation")

// ParsePublicKey builds a public key from big-endian hex strings of
// arbitrary length.
func ParsePublicKey(nHex, eHex string) (*PublicKey, error) {
	n, err := bigint.FromHex(nHex)
	if err != nil {
		return nil, fmt.Errorf("rsa: bad modulus: %w", err)
	}
	e, err := bigint.FromHex(eHex)
	if err != nil {
		return nil, fmt.Errorf("rsa: bad public exponent: %w", err)
	}
	if e.BitLen() > 31 {
		return nil, errors.New("rsa: public exponent exceeds 31 bits")
	}
	return &PublicKey{N: n, E: uint32(e.Uint64())}, nil
}

// ParsePrivateKey builds a private key from big-endian hex strings.  The
// CRT strings may all be empty; absent Dp, Dq, and Qinv are derived when P
// and Q are given.
func ParsePrivateKey(nHex, eHex, dHex, pHex, qHex, dpHex, dqHex, qinvHex string) (*PrivateKey, error) {
	pub, err := ParsePublicKey(nHex, eHex)
	if err != nil {
		return nil, err
	}
	d, err := bigint.FromHex(dHex)
	if err != nil {
		return nil, fmt.Errorf("rsa: bad private exponent: %w", err)
	}
	key := &PrivateKey{PublicKey: *pub, D: d}
	if pHex == "" && qHex == "" {
		return key, nil
	}
	if pHex == "" || qHex == "" {
		return nil, errors.New("rsa: CRT parameters require both primes")
	}
	if key.P, err = bigint.FromHex(pHex); err != nil {
		return nil, fmt.Errorf("rsa: bad prime p: %w", err)
	}
	if key.Q, err = bigint.FromHex(qHex); err != nil {
		return nil, fmt.Errorf("rsa: bad prime q: %w", err)
	}
	if key.P.Cmp(key.Q) <= 0 {
		return nil, errors.New("rsa: prime p must exceed prime q")
	}
	if key.P.Mul(key.Q).Cmp(key.N) != 0 {
		return nil, errors.New("rsa: primes do not factor modulus")
	}
	if dpHex != "" {
		if key.Dp, err = bigint.FromHex(dpHex); err != nil {
			return nil, fmt.Errorf("rsa: bad dP: %w", err)
		}
	} else {
		key.Dp = d.Mod(key.P.Sub(one))
	}
	if dqHex != "" {
		if key.Dq, err = bigint.FromHex(dqHex); err != nil {
			return nil, fmt.Errorf("rsa: bad dQ: %w", err)
		}
	} else {
		key.Dq = d.Mod(key.Q.Sub(one))
	}
	if qinvHex != "" {
		if key.Qinv, err = bigint.FromHex(qinvHex); err != nil {
			return nil, fmt.Errorf("rsa: bad qInv: %w", err)
		}
	} else {
		key.Qinv = key.Q.ModInverse(key.P)
	}
	return key, nil
}

// doPublic computes x^E mod N.
func (k *PublicKey) doPublic(x *bigint.Int) *bigint.Int {
	return x.ExpWord(uint(k.E), k.N)
}

// doPrivate computes x^D mod N, via the CRT when P and Q are present.
func (k *PrivateKey) doPrivate(x *bigint.Int) *bigint.Int {
	if k.P == nil || k.Q == nil {
		return x.Exp(k.D, k.N)
	}
	xp := x.Mod(k.P).Exp(k.Dp, k.P)
	xq := x.Mod(k.Q).Exp(k.Dq, k.Q)
	// xp += P * [xp < xq].  The correction is computed unconditionally and
	// selected by a 0/1 mask so no branch depends on the comparison.
	mask := uint64(int64(xp.Cmp(xq)) >> 63 & 1)
	xp = xp.Add(k.P.Mul(bigint.FromUint64(mask)))
	return xp.Sub(xq).Mul(k.Qinv).Mod(k.P).Mul(k.Q).Add(xq)
}

// apply runs op over msg in blocks, consuming at most max source bytes per
// block and emitting exactly k output bytes per block.  A zero-length msg
// still produces one block.
func apply(msg []byte, k, max int, op func(chunk []byte) (*bigint.Int, error)) ([]byte, error) {
	if max < 0 || (max == 0 && len(msg) > 0) {
		return nil, ErrMessageTooLong
	}
	if max > len(msg) {
		max = len(msg)
	}
	var dst []byte
	for off := 0; ; {
		end := off + max
		if end > len(msg) {
			end = len(msg)
		}
		v, err := op(msg[off:end])
		if err != nil {
			return nil, err
		}
		dst = append(dst, v.FillBytes(make([]byte, k))...)
		off = end
		if off >= len(msg) {
			return dst, nil
		}
	}
}

// Encrypt encrypts msg with the public key using type 2 padding, PKCS#1
// v1.5 when pad is nil.
func (k *PublicKey) Encrypt(rand io.Reader, pad Padding, msg []byte) ([]byte, error) {
	if pad == nil {
		pad = PKCS1v15{}
	}
	if !k.CanEncrypt() {
		return nil, errKeyMaterial
	}
	kLen := k.Size()
	return apply(msg, kLen, pad.MaxLen(kLen, TypeEncrypt), func(chunk []byte) (*bigint.Int, error) {
		em, err := pad.Pad(rand, chunk, kLen, TypeEncrypt)
		if err != nil {
			return nil, err
		}
		return k.doPublic(bigint.FromBytes(em)), nil
	})
}

// Decrypt decrypts ciphertext with the private key using type 2 unpadding,
// PKCS#1 v1.5 when pad is nil.
func (k *PrivateKey) Decrypt(pad Padding, ciphertext []byte) ([]byte, error) {
	if pad == nil {
		pad = PKCS1v15{}
	}
	if !k.CanDecrypt() {
		return nil, errKeyMaterial
	}
	return k.unseal(pad, TypeEncrypt, ciphertext, nil, k.doPrivate)
}

// Sign signs msg with the private key using type 1 padding, PKCS#1 v1.5
// when pad is nil.
func (k *PrivateKey) Sign(rand io.Reader, pad Padding, msg []byte) ([]byte, error) {
	if pad == nil {
		pad = PKCS1v15{}
	}
	if !k.CanDecrypt() {
		return nil, errKeyMaterial
	}
	kLen := k.Size()
	return apply(msg, kLen, pad.MaxLen(kLen, TypeSig), func(chunk []byte) (*bigint.Int, error) {
		em, err := pad.Pad(rand, chunk, kLen, TypeSig)
		if err != nil {
			return nil, err
		}
		return k.doPrivate(bigint.FromBytes(em)), nil
	})
}

// Verify opens sig with the public key using type 1 unpadding and returns
// the recovered message.  orig is the message being verified; it is
// consulted by PSS and ignored by PKCS#1 v1.5.
func (k *PublicKey) Verify(pad Padding, sig, orig []byte) ([]byte, error) {
	if pad == nil {
		pad = PKCS1v15{}
	}
	if !k.CanEncrypt() {
		return nil, errKeyMaterial
	}
	return k.unseal(pad, TypeSig, sig, orig, func(x *bigint.Int) *bigint.Int {
		return k.doPublic(x)
	})
}

// unseal runs the inverse block transform over src: each k-byte block is
// exponentiated and unpadded, and the decoded parts are concatenated.
func (k *PublicKey) unseal(pad Padding, bt BlockType, src, orig []byte, op func(*bigint.Int) *bigint.Int) ([]byte, error) {
	kLen := k.Size()
	if len(src) == 0 || len(src)%kLen != 0 {
		return nil, fmt.Errorf("rsa: input length %d is not a positive multiple of the %d-byte block size", len(src), kLen)
	}
	var dst []byte
	for off := 0; off < len(src); off += kLen {
		c := bigint.FromBytes(src[off : off+kLen])
		if c.Cmp(k.N) >= 0 {
			return nil, ErrDecode
		}
		em := op(c).FillBytes(make([]byte, kLen))
		msg, err := pad.Unpad(em, kLen, bt, orig)
		if err != nil {
			return nil, err
		}
		dst = append(dst, msg...)
	}
	return dst, nil
}
