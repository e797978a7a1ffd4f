// Package x25519 implements X25519 ECDHE over curve25519.
//
// Scalar multiplication is a constant-time Montgomery ladder over the field
// of 16-bit limbs modulo 2^255 - 19; see RFC 7748.
package x25519

import "fmt"

const (
	// ScalarSize is the size of the scalar input to X25519.
	ScalarSize = 32
	// PointSize is the size of the point input to X25519.
	PointSize = 32
)

// Basepoint is the canonical curve25519 generator, x = 9.
var Basepoint []byte

var basePoint = [32]byte{9}

func init() { Basepoint = basePoint[:] }

// clamp prepares a scalar for the ladder per RFC 7748: clear the low three
// bits, clear the top bit, set bit 254.
func clamp(scalar *[32]byte) {
	scalar[0] &= 248
	scalar[31] = scalar[31]&127 | 64
}

// scalarMult computes clamp(scalar) * point on the Montgomery curve and
// writes the result to out.  The entire ladder is branch-free on scalar and
// point bits.
func scalarMult(out, scalar, point *[32]byte) {
	var clamped [32]byte
	copy(clamped[:], scalar[:])
	clamp(&clamped)

	var x1, x2, z2, x3, z3 fieldElement
	x1.unpack(point)
	x2[0] = 1
	x3 = x1
	z3[0] = 1

	// 255 differential add-and-double steps from bit 254 down to bit 0.
	// Swaps are accumulated in swapBit and applied lazily so each step
	// performs exactly one conditional swap pair.
	var swapBit int64
	for t := 254; t >= 0; t-- {
		kt := int64(clamped[t>>3]>>(uint(t)&7)) & 1
		swapBit ^= kt
		cswap(&x2, &x3, swapBit)
		cswap(&z2, &z3, swapBit)
		swapBit = kt

		var a, aa, b, bb, e, c, d, da, cb, tmp fieldElement
		add(&a, &x2, &z2)
		square(&aa, &a)
		sub(&b, &x2, &z2)
		square(&bb, &b)
		sub(&e, &aa, &bb)
		add(&c, &x3, &z3)
		sub(&d, &x3, &z3)
		mul(&da, &d, &a)
		mul(&cb, &c, &b)

		add(&tmp, &da, &cb)
		square(&x3, &tmp)
		sub(&tmp, &da, &cb)
		square(&tmp, &tmp)
		mul(&z3, &x1, &tmp)

		mul(&x2, &aa, &bb)
		mul(&tmp, &e, &a24)
		add(&tmp, &tmp, &aa)
		mul(&z2, &e, &tmp)
	}
	cswap(&x2, &x3, swapBit)
	cswap(&z2, &z3, swapBit)

	var zinv, res fieldElement
	invert(&zinv, &z2)
	mul(&res, &x2, &zinv)
	res.pack(out)
}

// ScalarMult returns the result of the scalar multiplication
// clamp(scalar) * point per RFC 7748 section 5.  scalar and point must both
// be 32 bytes.
func ScalarMult(scalar, point []byte) ([]byte, error) {
	if l := len(scalar); l != ScalarSize {
		return nil, fmt.Errorf("x25519: bad scalar length %d, expected %d", l, ScalarSize)
	}
	if l := len(point); l != PointSize {
		return nil, fmt.Errorf("x25519: bad point length %d, expected %d", l, PointSize)
	}
	var dst, in, base [32]byte
	copy(in[:], scalar)
	copy(base[:], point)
	scalarMult(&dst, &in, &base)
	return dst[:], nil
}

// ScalarBaseMult returns clamp(scalar) * G where G is the standard
// generator.  scalar must be 32 bytes.
func ScalarBaseMult(scalar []byte) ([]byte, error) {
	return ScalarMult(scalar, Basepoint)
}
