package rsa

import (
	"bytes"
	"io"
)

// PKCS1v15 implements the PKCS#1 v1.5 block format of RFC 8017 sections 7.2
// and 8.2.  It is the default padding for Encrypt, Decrypt, Sign, and
// Verify.
//
// Unpadding is inherently variable-time against malformed ciphertexts;
// callers that must avoid padding oracles should mask failures with a
// synthetic plaintext.
type PKCS1v15 struct{}

// MaxLen returns the largest message a k-byte block can carry: the block
// holds two format bytes, at least eight padding bytes, and a separator.
func (PKCS1v15) MaxLen(k int, _ BlockType) int { return k - 11 }

// Pad encodes msg as 0x00 || type || PS || 0x00 || msg, where PS is at
// least eight bytes of 0xFF for signature blocks or random nonzero bytes
// for encryption blocks.
func (PKCS1v15) Pad(rand io.Reader, msg []byte, k int, bt BlockType) ([]byte, error) {
	if len(msg) > k-11 {
		return nil, ErrMessageTooLong
	}
	em := make([]byte, k)
	em[1] = byte(bt)
	ps := em[2 : k-len(msg)-1]
	switch bt {
	case TypeSig:
		for i := range ps {
			ps[i] = 0xFF
		}
	case TypeEncrypt:
		if err := fillNonZeroBytes(rand, ps); err != nil {
			return nil, err
		}
	default:
		panic("rsa: unknown block type")
	}
	copy(em[k-len(msg):], msg)
	return em, nil
}

// Unpad reverses Pad: the leading zero byte and block type are checked, the
// nonzero padding is scanned for its zero separator, and the bytes after
// the separator are returned.
func (PKCS1v15) Unpad(em []byte, k int, bt BlockType, _ []byte) ([]byte, error) {
	if len(em) != k || k < 11 {
		return nil, ErrDecode
	}
	if em[0] != 0 || em[1] != byte(bt) {
		return nil, ErrDecode
	}
	sep := bytes.IndexByte(em[2:], 0)
	if sep < 8 {
		return nil, ErrDecode
	}
	return em[2+sep+1:], nil
}

func fillNonZeroBytes(rand io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rand, buf); err != nil {
		return err
	}
	for i := range buf {
		for buf[i] == 0 {
			if _, err := io.ReadFull(rand, buf[i:i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}
