package kem

import (
	"crypto/rand"
	"testing"

	"vexil.org/pkc/x25519"
)

func TestEncapsulateDecapsulate(t *testing.T) {
	pk, sk, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ct, sent, err := Encapsulate(rand.Reader, pk)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decapsulate(ct, sk)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *sent {
		t.Fatalf("decapsulated key %x, want %x", *got, *sent)
	}
}

func TestDecapsulateTampered(t *testing.T) {
	pk, sk, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ct, sent, err := Encapsulate(rand.Reader, pk)
	if err != nil {
		t.Fatal(err)
	}
	ct[0] ^= 0x80
	got, err := Decapsulate(ct, sk)
	if err == nil && *got == *sent {
		t.Fatal("tampered ciphertext decapsulated to the sent key")
	}
}

func TestHybridKey(t *testing.T) {
	// Both sides derive the same session key from the X25519 exchange and
	// the KEM shared key.
	kx0, err := x25519.New(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	kx1, err := x25519.New(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ecdh0, err := kx0.SharedKey(&kx1.Public)
	if err != nil {
		t.Fatal(err)
	}
	ecdh1, err := kx1.SharedKey(&kx0.Public)
	if err != nil {
		t.Fatal(err)
	}

	pk, sk, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ct, sent, err := Encapsulate(rand.Reader, pk)
	if err != nil {
		t.Fatal(err)
	}
	recv, err := Decapsulate(ct, sk)
	if err != nil {
		t.Fatal(err)
	}

	k0 := HybridKey(ecdh0, sent)
	k1 := HybridKey(ecdh1, recv)
	if k0 != k1 {
		t.Fatalf("hybrid keys differ: %x != %x", k0, k1)
	}
	if k0 == ([32]byte{}) {
		t.Fatal("all-zero hybrid key")
	}
}
