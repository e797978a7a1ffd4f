package bigint

import "io"

// smallPrimes is used for cheap trial division before Miller-Rabin.
var smallPrimes = []uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
}

func mustRead(rand io.Reader, buf []byte) {
	if _, err := io.ReadFull(rand, buf); err != nil {
		panic("bigint: randomness source failed: " + err.Error())
	}
}

// RandBits returns a uniformly random value of at most bits bits, sampled
// from ceil(bits/8) bytes of rand.
func RandBits(rand io.Reader, bits int) *Int {
	if bits <= 0 {
		panic("bigint: nonpositive random bit count")
	}
	buf := make([]byte, (bits+7)/8)
	mustRead(rand, buf)
	return FromBytes(buf).truncBits(bits)
}

// randBelow returns a uniformly random value in [0, limit) by rejection
// sampling.  limit must be positive.
func randBelow(rand io.Reader, limit *Int) *Int {
	k := limit.BitLen()
	for {
		v := RandBits(rand, k)
		if v.Cmp(limit) < 0 {
			return v
		}
	}
}

// ProbablyPrime reports whether x passes rounds rounds of the Miller-Rabin
// test with uniformly random bases drawn from rand.  Composites are detected
// with probability at least 1 - 4^-rounds.
func (x *Int) ProbablyPrime(rounds int, rand io.Reader) bool {
	if x.Cmp(two) < 0 {
		return false
	}
	for _, p := range smallPrimes {
		sp := FromUint64(uint64(p))
		if x.Cmp(sp) == 0 {
			return true
		}
		if _, r := udivmodWord(x.limbs, p); r == 0 {
			return false
		}
	}

	// x-1 = d * 2^s with d odd.
	nm1 := x.Sub(one)
	s := nm1.trailingZeroBits()
	d := nm1.Rsh(s)

	// Bases are drawn uniformly from [2, x-2].
	baseLimit := x.Sub(FromUint64(3))

	for i := 0; i < rounds; i++ {
		a := randBelow(rand, baseLimit).Add(two)
		y := a.Exp(d, x)
		if y.Cmp(one) == 0 || y.Cmp(nm1) == 0 {
			continue
		}
		witness := true
		for j := uint(1); j < s; j++ {
			y = y.Mul(y).Mod(x)
			if y.Cmp(nm1) == 0 {
				witness = false
				break
			}
			if y.Cmp(one) == 0 {
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// NextPrime truncates x to bits bits, forces bit bits-1 and the low bit to
// one, and advances by two until the value passes rounds rounds of
// Miller-Rabin.  A search that runs past 2**bits - 1 continues from
// 2**(bits-1) + 1, so the result always has exactly bits bits.
func (x *Int) NextPrime(bits, rounds int, rand io.Reader) *Int {
	if bits < 2 {
		panic("bigint: prime width below 2 bits")
	}
	v := x.truncBits(bits).setBit(bits - 1).setBit(0)
	for !v.ProbablyPrime(rounds, rand) {
		v = v.Add(two)
		if v.BitLen() > bits {
			v = one.Lsh(uint(bits - 1)).setBit(0)
		}
	}
	return v
}
