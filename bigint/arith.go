package bigint

import "math/bits"

// Low-level limb arithmetic.  Slices are base-2^32 little-endian magnitudes
// with no high zero limbs except where noted.

func norm(l []uint32) []uint32 {
	for len(l) > 0 && l[len(l)-1] == 0 {
		l = l[:len(l)-1]
	}
	return l
}

func ucmp(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func uadd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]uint32, len(a)+1)
	var carry uint64
	for i := range a {
		s := uint64(a[i]) + carry
		if i < len(b) {
			s += uint64(b[i])
		}
		z[i] = uint32(s)
		carry = s >> 32
	}
	z[len(a)] = uint32(carry)
	return norm(z)
}

// usub computes a - b.  The caller guarantees a >= b.
func usub(a, b []uint32) []uint32 {
	z := make([]uint32, len(a))
	var borrow uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		d, bo := bits.Sub32(a[i], bi, borrow)
		z[i] = d
		borrow = bo
	}
	return norm(z)
}

func umul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	z := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			t := uint64(ai)*uint64(bj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
		z[i+len(b)] = uint32(carry)
	}
	return norm(z)
}

// udivmod computes the quotient and remainder of u / v with Knuth's
// Algorithm D.  It panics if v is zero.
func udivmod(u, v []uint32) (q, r []uint32) {
	if len(v) == 0 {
		panic("bigint: division by zero")
	}
	if ucmp(u, v) < 0 {
		r = make([]uint32, len(u))
		copy(r, u)
		return nil, norm(r)
	}
	if len(v) == 1 {
		q, rw := udivmodWord(u, v[0])
		if rw == 0 {
			return q, nil
		}
		return q, []uint32{rw}
	}

	const b = 1 << 32
	n := len(v)
	m := len(u) - n

	// Normalize so the divisor's top limb has its high bit set.
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | uint32(uint64(v[i-1])>>(32-s))
	}
	vn[0] = v[0] << s
	un := make([]uint32, len(u)+1)
	un[len(u)] = uint32(uint64(u[len(u)-1]) >> (32 - s))
	for i := len(u) - 1; i > 0; i-- {
		un[i] = u[i]<<s | uint32(uint64(u[i-1])>>(32-s))
	}
	un[0] = u[0] << s

	q = make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit.
		uhi := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := uhi / uint64(vn[n-1])
		rhat := uhi - qhat*uint64(vn[n-1])
		for qhat >= b || qhat*uint64(vn[n-2]) > b*rhat+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		// Multiply and subtract.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(uint32(p))
			un[i+j] = uint32(t)
			k = int64(p>>32) - t>>32
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		q[j] = uint32(qhat)
		if t < 0 {
			// The estimate was one too large; add the divisor back.
			q[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				sum := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(sum)
				carry = sum >> 32
			}
			un[j+n] = uint32(uint64(un[j+n]) + carry)
		}
	}

	// Denormalize the remainder.
	r = make([]uint32, n)
	for i := 0; i < n-1; i++ {
		r[i] = un[i]>>s | uint32(uint64(un[i+1])<<(32-s))
	}
	r[n-1] = un[n-1] >> s
	return norm(q), norm(r)
}

func udivmodWord(u []uint32, d uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return norm(q), uint32(rem)
}
