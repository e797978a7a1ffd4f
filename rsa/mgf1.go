package rsa

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
)

// mgf1XOR XORs out with the MGF1 mask generated from seed, per RFC 8017
// appendix B.2.1: the concatenation of H(seed || counter) for counter = 0,
// 1, ... truncated to len(out).  The walk is straight-line with no
// data-dependent branching.
func mgf1XOR(out, seed []byte, h func() hash.Hash) {
	hh := h()
	var counterBuf [4]byte
	for counter, off := uint32(0), 0; off < len(out); counter++ {
		binary.BigEndian.PutUint32(counterBuf[:], counter)
		hh.Reset()
		hh.Write(seed)
		hh.Write(counterBuf[:])
		off += subtle.XORBytes(out[off:], out[off:], hh.Sum(nil))
	}
}

func hashBytes(h func() hash.Hash, data []byte) []byte {
	hh := h()
	hh.Write(data)
	return hh.Sum(nil)
}
