package rsa

import (
	"crypto/subtle"
	"hash"
	"io"
	"math"
)

// PSS implements the probabilistic signature scheme of RFC 8017 section 9.1,
// including the eight leading zero octets of M'.  A zero SaltLen selects a
// salt the size of the hash output.
type PSS struct {
	Hash    func() hash.Hash
	SaltLen int
}

func (p PSS) saltLen() int {
	if p.SaltLen == 0 {
		return p.Hash().Size()
	}
	return p.SaltLen
}

// MaxLen reports that a block consumes the entire message: PSS signs the
// message hash, so its length is not bounded by the modulus.
func (p PSS) MaxLen(_ int, _ BlockType) int { return math.MaxInt }

var pssPrefix [8]byte

// Pad encodes maskedDB || H || 0xBC where H = hash(0x00*8 || hash(msg) ||
// salt).  The top bit of the block is cleared so the encoded integer stays
// below a byte-aligned modulus.
func (p PSS) Pad(rand io.Reader, msg []byte, k int, _ BlockType) ([]byte, error) {
	h := p.Hash()
	hLen := h.Size()
	sLen := p.saltLen()
	if k < hLen+sLen+2 {
		return nil, ErrMessageTooLong
	}

	salt := make([]byte, sLen)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return nil, err
	}
	mHash := hashBytes(p.Hash, msg)
	h.Write(pssPrefix[:])
	h.Write(mHash)
	h.Write(salt)
	hh := h.Sum(nil)

	em := make([]byte, k)
	db := em[:k-hLen-1]
	db[len(db)-sLen-1] = 0x01
	copy(db[len(db)-sLen:], salt)
	mgf1XOR(db, hh, p.Hash)
	db[0] &= 0x7F
	copy(em[len(db):], hh)
	em[k-1] = 0xBC
	return em, nil
}

// Unpad verifies em against the original message orig and returns orig when
// the signature padding is consistent.
func (p PSS) Unpad(em []byte, k int, _ BlockType, orig []byte) ([]byte, error) {
	h := p.Hash()
	hLen := h.Size()
	sLen := p.saltLen()
	if len(em) != k || k < hLen+sLen+2 {
		return nil, ErrDecode
	}
	em = append([]byte(nil), em...)

	valid := subtle.ConstantTimeByteEq(em[k-1], 0xBC)
	db := em[:k-hLen-1]
	hh := em[k-hLen-1 : k-1]
	valid &= subtle.ConstantTimeByteEq(db[0]&0x80, 0)

	mgf1XOR(db, hh, p.Hash)
	db[0] &= 0x7F

	ps := db[:len(db)-sLen-1]
	valid &= subtle.ConstantTimeCompare(ps, make([]byte, len(ps)))
	valid &= subtle.ConstantTimeByteEq(db[len(db)-sLen-1], 0x01)
	salt := db[len(db)-sLen:]

	mHash := hashBytes(p.Hash, orig)
	h.Reset()
	h.Write(pssPrefix[:])
	h.Write(mHash)
	h.Write(salt)
	valid &= subtle.ConstantTimeCompare(hh, h.Sum(nil))

	if valid != 1 {
		return nil, ErrDecode
	}
	return orig, nil
}
