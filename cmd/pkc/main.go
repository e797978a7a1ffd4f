// pkc generates keys and runs the public-key operations of vexil.org/pkc
// from the command line.  Key material and messages are hex encoded.
package main

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"hash"
	"log"
	"os"

	"github.com/decred/dcrd/crypto/blake256"

	"vexil.org/pkc/rng"
	"vexil.org/pkc/rsa"
	"vexil.org/pkc/x25519"
)

var (
	fs          = flag.NewFlagSet("", flag.ExitOnError)
	rsagenFlag  = fs.Int("rsagen", 0, "generate an RSA key with this many modulus bits")
	x25519Flag  = fs.Bool("x25519gen", false, "generate an X25519 key pair")
	encryptFlag = fs.Bool("encrypt", false, "encrypt -in with the public key")
	decryptFlag = fs.Bool("decrypt", false, "decrypt -in with the private key")
	signFlag    = fs.Bool("sign", false, "sign -in with the private key")
	verifyFlag  = fs.Bool("verify", false, "verify the signature -sig of -in")
	padFlag     = fs.String("pad", "pkcs1", "padding scheme: pkcs1, oaep, or pss")
	hashFlag    = fs.String("hash", "sha256", "hash for oaep and pss: sha1, sha256, or blake256")
	eFlag       = fs.String("e", "10001", "public exponent (hex)")
	nFlag       = fs.String("n", "", "modulus (hex)")
	dFlag       = fs.String("d", "", "private exponent (hex)")
	pFlag       = fs.String("p", "", "CRT prime p (hex)")
	qFlag       = fs.String("q", "", "CRT prime q (hex)")
	inFlag      = fs.String("in", "", "input message or ciphertext (hex)")
	sigFlag     = fs.String("sig", "", "signature to verify (hex)")
	seedFlag    = fs.String("seed", "", "32-byte hex seed for deterministic x25519 generation")
)

type rsaKeyOut struct {
	N    string `json:"n"`
	E    string `json:"e"`
	D    string `json:"d"`
	P    string `json:"p"`
	Q    string `json:"q"`
	Dp   string `json:"dmp1"`
	Dq   string `json:"dmq1"`
	Qinv string `json:"iqmp"`
}

func padding() rsa.Padding {
	var h func() hash.Hash
	switch *hashFlag {
	case "sha1":
		h = sha1.New
	case "sha256":
		h = sha256.New
	case "blake256":
		h = blake256.New
	default:
		log.Fatalf("unknown hash %q", *hashFlag)
	}
	switch *padFlag {
	case "pkcs1":
		return rsa.PKCS1v15{}
	case "oaep":
		return rsa.OAEP{Hash: h}
	case "pss":
		return rsa.PSS{Hash: h}
	}
	log.Fatalf("unknown padding %q", *padFlag)
	return nil
}

func unhex(name, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Fatalf("bad %s: %v", name, err)
	}
	return b
}

func privateKey() *rsa.PrivateKey {
	key, err := rsa.ParsePrivateKey(*nFlag, *eFlag, *dFlag, *pFlag, *qFlag, "", "", "")
	if err != nil {
		log.Fatal(err)
	}
	return key
}

func publicKey() *rsa.PublicKey {
	key, err := rsa.ParsePublicKey(*nFlag, *eFlag)
	if err != nil {
		log.Fatal(err)
	}
	return key
}

func main() {
	fs.Parse(os.Args[1:])

	switch {
	case *rsagenFlag != 0:
		pub, err := rsa.ParsePublicKey("1", *eFlag)
		if err != nil {
			log.Fatal(err)
		}
		key, err := rsa.GenerateKey(rand.Reader, *rsagenFlag, pub.E)
		if err != nil {
			log.Fatal(err)
		}
		out := rsaKeyOut{
			N:    key.N.Hex(),
			E:    *eFlag,
			D:    key.D.Hex(),
			P:    key.P.Hex(),
			Q:    key.Q.Hex(),
			Dp:   key.Dp.Hex(),
			Dq:   key.Dq.Hex(),
			Qinv: key.Qinv.Hex(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "\t")
		if err := enc.Encode(&out); err != nil {
			log.Fatal(err)
		}

	case *x25519Flag:
		reader := rng.Reader
		if *seedFlag != "" {
			reader = rng.NewDeterministic(unhex("seed", *seedFlag), 0)
		}
		kx, err := x25519.New(reader)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("secret: %x\npublic: %x\n", kx.Scalar[:], kx.Public[:])

	case *encryptFlag:
		ct, err := publicKey().Encrypt(rand.Reader, padding(), unhex("in", *inFlag))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%x\n", ct)

	case *decryptFlag:
		pt, err := privateKey().Decrypt(padding(), unhex("in", *inFlag))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%x\n", pt)

	case *signFlag:
		sig, err := privateKey().Sign(rand.Reader, padding(), unhex("in", *inFlag))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%x\n", sig)

	case *verifyFlag:
		_, err := publicKey().Verify(padding(), unhex("sig", *sigFlag), unhex("in", *inFlag))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("ok")

	default:
		fs.Usage()
		os.Exit(2)
	}
}
