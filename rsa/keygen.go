package rsa

import (
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"vexil.org/pkc/bigint"
)

// mrRounds is the Miller-Rabin round count applied to prime candidates.
const mrRounds = 10

// GenerateKey produces a key with a bits-bit modulus and public exponent e.
// The searches for the two primes run concurrently; candidates are rejected
// until gcd(p-1, e) = 1 and ten Miller-Rabin rounds pass, and the whole
// procedure restarts if e is not invertible modulo the totient.
func GenerateKey(rand io.Reader, bits int, e uint32) (*PrivateKey, error) {
	if bits < 32 {
		return nil, errors.New("rsa: modulus size too small")
	}
	if e < 3 || e&1 == 0 || e >= 1<<31 {
		return nil, errors.New("rsa: invalid public exponent")
	}
	eInt := bigint.FromUint64(uint64(e))
	qs := bits / 2

	for {
		var p, q *bigint.Int
		var g errgroup.Group
		g.Go(func() error {
			var err error
			p, err = findPrime(rand, bits-qs, eInt)
			return err
		})
		g.Go(func() error {
			var err error
			q, err = findPrime(rand, qs, eInt)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if p.Cmp(q) == 0 {
			continue
		}
		if p.Cmp(q) < 0 {
			p, q = q, p
		}
		pm1 := p.Sub(one)
		qm1 := q.Sub(one)
		phi := pm1.Mul(qm1)
		if phi.GCD(eInt).Cmp(one) != 0 {
			continue
		}

		n := p.Mul(q)
		if n.BitLen() != bits {
			continue
		}

		d := eInt.ModInverse(phi)
		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
			Dp:        d.Mod(pm1),
			Dq:        d.Mod(qm1),
			Qinv:      q.ModInverse(p),
		}, nil
	}
}

// findPrime samples bits-bit candidates from rand until one is coprime to e
// after decrementing and survives the full Miller-Rabin round count.
func findPrime(rand io.Reader, bits int, e *bigint.Int) (*bigint.Int, error) {
	buf := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		cand := bigint.FromBytes(buf).NextPrime(bits, 1, rand)
		if cand.Sub(one).GCD(e).Cmp(one) != 0 {
			continue
		}
		if !cand.ProbablyPrime(mrRounds, rand) {
			continue
		}
		return cand, nil
	}
}
