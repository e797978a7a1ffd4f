package x25519

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestKX(t *testing.T) {
	r := rand.Reader
	kx0, err := New(r)
	if err != nil {
		t.Fatal(err)
	}
	kx1, err := New(r)
	if err != nil {
		t.Fatal(err)
	}
	shared0, err := kx0.SharedKey(&kx1.Public)
	if err != nil {
		t.Fatal(err)
	}
	shared1, err := kx1.SharedKey(&kx0.Public)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(shared0, shared1) {
		t.Fatal("non-agreement on shared key")
	}
}

func TestSharedKeyLowOrder(t *testing.T) {
	kx, err := New(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	var zeroPub Public
	if _, err := kx.SharedKey(&zeroPub); err == nil {
		t.Fatal("all-zero shared key not rejected")
	}
}
