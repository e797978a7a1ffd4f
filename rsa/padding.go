package rsa

import (
	"errors"
	"io"
)

// ErrDecode is returned when a decrypted block or verified signature does
// not carry well-formed padding.  Callers must treat it as "invalid
// ciphertext or signature" and must not distinguish its causes.
var ErrDecode = errors.New("rsa: decode error")

// ErrMessageTooLong is returned when a message cannot fit the padding
// scheme's limit for the modulus size.  Unlike ErrDecode this is an input
// shape error.
var ErrMessageTooLong = errors.New("rsa: message too long for modulus")

// BlockType selects the PKCS#1 v1.5 block format: type 1 blocks are padded
// with 0xFF bytes for signatures, type 2 blocks with random nonzero bytes
// for encryption.  OAEP and PSS ignore the type.
type BlockType int

const (
	TypeSig     BlockType = 1
	TypeEncrypt BlockType = 2
)

// Padding encodes messages into k-byte blocks that, read as big-endian
// integers, are below the modulus, and decodes such blocks back into
// messages.
type Padding interface {
	// Pad encodes msg into a block of exactly k bytes.
	Pad(rand io.Reader, msg []byte, k int, bt BlockType) ([]byte, error)

	// Unpad decodes the k-byte block em.  orig is the original message
	// and is consulted only by PSS verification.  Malformed padding is
	// reported as ErrDecode.
	Unpad(em []byte, k int, bt BlockType, orig []byte) ([]byte, error)

	// MaxLen returns the number of message bytes a single k-byte block
	// can carry.  Schemes that hash the message (PSS) consume it whole.
	MaxLen(k int, bt BlockType) int
}
