package cryptography

import (
	"crypto"
	"crypto/ed25519"

	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/ssierr"
)

// DecodeMultibase decodes a multibase string such as a publicKeyMultibase
// value. Decoding failures are reported as ssierr.Multibase.
func DecodeMultibase(mb string) ([]byte, error) {
	_, d, err := multibase.Decode(mb)
	if err != nil {
		return nil, ssierr.FromMultibase(err)
	}
	return d, nil
}

func EncodeMultibase(publicKey crypto.PublicKey) (string, error) {
	var raw []byte

	switch t := publicKey.(type) {
	case ed25519.PublicKey:
		raw = []byte(t)
	case *Bls12381PublicKey:
		b, err := t.Bytes()
		if err != nil {
			return "", err
		}
		raw = b
	case *Secp256k1PublicKey:
		raw = t.CompressedBytes()
	default:
		return "", errors.Errorf("unsupported pk type: %T", t)
	}

	return multibase.Encode(multibase.Base58BTC, raw)
}
