package rsa

import (
	"testing"

	"vexil.org/pkc/bigint"
)

// The classic toy key: p=61, q=53, n=3233, e=17, d=2753.  Too small to pad,
// but every CRT identity is checkable by hand.
func toyKey(t *testing.T) *PrivateKey {
	t.Helper()
	key, err := ParsePrivateKey("ca1", "11", "ac1", "3d", "35", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func TestParseDerivesCRT(t *testing.T) {
	key := toyKey(t)
	if got := key.Dp.Hex(); got != "35" { // 2753 mod 60 = 53
		t.Errorf("Dp = %s, want 35", got)
	}
	if got := key.Dq.Hex(); got != "31" { // 2753 mod 52 = 49
		t.Errorf("Dq = %s, want 31", got)
	}
	if got := key.Qinv.Hex(); got != "26" { // 53^-1 mod 61 = 38
		t.Errorf("Qinv = %s, want 26", got)
	}
	if key.Size() != 2 {
		t.Errorf("Size = %d, want 2", key.Size())
	}
}

func TestRawExponentiation(t *testing.T) {
	key := toyKey(t)
	m := bigint.FromUint64(65)
	c := key.doPublic(m)
	if c.Hex() != "ae6" { // 65^17 mod 3233 = 2790
		t.Fatalf("doPublic(65) = %s, want ae6", c.Hex())
	}
	if got := key.doPrivate(c); got.Cmp(m) != 0 {
		t.Fatalf("doPrivate(doPublic(65)) = %s", got.Hex())
	}
}

func TestCRTMatchesPlain(t *testing.T) {
	key := toyKey(t)
	plain := &PrivateKey{PublicKey: key.PublicKey, D: key.D}
	for m := uint64(0); m < 3233; m += 97 {
		x := bigint.FromUint64(m)
		crt := key.doPrivate(x)
		ref := plain.doPrivate(x)
		if crt.Cmp(ref) != 0 {
			t.Fatalf("m=%d: CRT %s != plain %s", m, crt.Hex(), ref.Hex())
		}
	}
}

func TestParsePublicKeyErrors(t *testing.T) {
	if _, err := ParsePublicKey("zz", "11"); err == nil {
		t.Error("bad modulus hex accepted")
	}
	if _, err := ParsePublicKey("ca1", "100000000"); err == nil {
		t.Error("33-bit exponent accepted")
	}
	if _, err := ParsePublicKey("ca1", "80000000"); err == nil {
		t.Error("32-bit exponent accepted")
	}
}

func TestParsePrivateKeyErrors(t *testing.T) {
	// Primes swapped: p must exceed q.
	if _, err := ParsePrivateKey("ca1", "11", "ac1", "35", "3d", "", "", ""); err == nil {
		t.Error("p < q accepted")
	}
	// Primes that do not factor the modulus.
	if _, err := ParsePrivateKey("ca1", "11", "ac1", "3d", "2f", "", "", ""); err == nil {
		t.Error("wrong factorization accepted")
	}
	// One prime without the other.
	if _, err := ParsePrivateKey("ca1", "11", "ac1", "3d", "", "", "", ""); err == nil {
		t.Error("lone prime accepted")
	}
}

func TestKeyCapabilities(t *testing.T) {
	key := toyKey(t)
	if !key.CanEncrypt() || !key.CanDecrypt() {
		t.Fatal("full key missing capability")
	}
	pub := &PrivateKey{PublicKey: key.PublicKey}
	if pub.CanDecrypt() {
		t.Fatal("public-only key claims decrypt capability")
	}
	if _, err := pub.Decrypt(nil, make([]byte, 2)); err != errKeyMaterial {
		t.Fatalf("got %v, want errKeyMaterial", err)
	}
}
