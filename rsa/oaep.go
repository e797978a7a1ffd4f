package rsa

import (
	"crypto/subtle"
	"hash"
	"io"
)

// OAEP implements Optimal Asymmetric Encryption Padding per RFC 8017
// section 7.1 with an empty label.  The seed length equals the hash output
// size and the mask generation function is MGF1 over the same hash.
type OAEP struct {
	Hash func() hash.Hash
}

// MaxLen returns the largest message a k-byte block can carry.
func (o OAEP) MaxLen(k int, _ BlockType) int {
	return k - 2*o.Hash().Size() - 2
}

// Pad encodes msg as 0x00 || maskedSeed || maskedDB.
func (o OAEP) Pad(rand io.Reader, msg []byte, k int, _ BlockType) ([]byte, error) {
	h := o.Hash()
	hLen := h.Size()
	if len(msg) > k-2*hLen-2 {
		return nil, ErrMessageTooLong
	}
	em := make([]byte, k)
	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	// DB = lHash || zero padding || 0x01 || msg, with lHash the hash of
	// the empty label.
	copy(db, h.Sum(nil))
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)

	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, err
	}
	mgf1XOR(db, seed, o.Hash)
	mgf1XOR(seed, db, o.Hash)
	return em, nil
}

// Unpad reverses Pad.  All integrity checks accumulate into a single
// constant-time verdict; the separator scan has no early exit.
func (o OAEP) Unpad(em []byte, k int, _ BlockType, _ []byte) ([]byte, error) {
	h := o.Hash()
	hLen := h.Size()
	if len(em) != k || k < 2*hLen+2 {
		return nil, ErrDecode
	}
	em = append([]byte(nil), em...)

	firstByteOK := subtle.ConstantTimeByteEq(em[0], 0)
	seed := em[1 : 1+hLen]
	db := em[1+hLen:]
	mgf1XOR(seed, db, o.Hash)
	mgf1XOR(db, seed, o.Hash)

	lHashOK := subtle.ConstantTimeCompare(db[:hLen], h.Sum(nil))

	rest := db[hLen:]
	var index, invalid int
	lookingForIndex := 1
	for i := 0; i < len(rest); i++ {
		equals0 := subtle.ConstantTimeByteEq(rest[i], 0)
		equals1 := subtle.ConstantTimeByteEq(rest[i], 1)
		index = subtle.ConstantTimeSelect(lookingForIndex&equals1, i, index)
		lookingForIndex = subtle.ConstantTimeSelect(equals1, 0, lookingForIndex)
		invalid = subtle.ConstantTimeSelect(lookingForIndex&^equals0, 1, invalid)
	}

	if firstByteOK&lHashOK&^invalid&^lookingForIndex != 1 {
		return nil, ErrDecode
	}
	return rest[index+1:], nil
}
