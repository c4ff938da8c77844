package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"io"

	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/ssierr"
)

type Secp256k1PrivateKey struct {
	*ecdsa.PrivateKey
}

func NewEcdsaSecp256k1PrivateKey() (*Secp256k1PrivateKey, error) {
	pk, err := ecdsa.GenerateKey(ethCrypto.S256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generating ecdsa key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func (p *Secp256k1PrivateKey) Bytes() ([]byte, error) {
	return ethCrypto.FromECDSA(p.PrivateKey), nil
}

// Sign signs the Keccak-256 digest of msg, returning the 64 byte R || S form.
func (p *Secp256k1PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) ([]byte, error) {
	sig, err := ethCrypto.Sign(ethCrypto.Keccak256(msg), p.PrivateKey)
	if err != nil {
		return nil, ssierr.FromCrypto(err)
	}

	return sig[:64], nil
}

func (p *Secp256k1PrivateKey) Public() crypto.PublicKey {
	return &Secp256k1PublicKey{p.PublicKey}
}

// NewSecp256k1PublicKey accepts both the compressed (33 byte) and the
// uncompressed (65 byte) encodings.
func NewSecp256k1PublicKey(d []byte) (*Secp256k1PublicKey, error) {
	var (
		pub *ecdsa.PublicKey
		err error
	)

	switch len(d) {
	case 33:
		pub, err = ethCrypto.DecompressPubkey(d)
	case 65:
		pub, err = ethCrypto.UnmarshalPubkey(d)
	default:
		return nil, ssierr.InvalidKeyLength
	}
	if err != nil {
		return nil, ssierr.FromKeyRejected(err)
	}

	return &Secp256k1PublicKey{*pub}, nil
}

type Secp256k1PublicKey struct {
	ecdsa.PublicKey
}

func (p *Secp256k1PublicKey) Bytes() ([]byte, error) {
	return ethCrypto.FromECDSAPub(&p.PublicKey), nil
}

func (p *Secp256k1PublicKey) CompressedBytes() []byte {
	return ethCrypto.CompressPubkey(&p.PublicKey)
}

// Verify checks a R || S signature (an optional trailing recovery byte is
// ignored) over the Keccak-256 digest of msg.
func (p *Secp256k1PublicKey) Verify(sig, msg []byte) (bool, error) {
	switch len(sig) {
	case 64:
	case 65:
		sig = sig[:64]
	default:
		return false, ssierr.InvalidSignature
	}

	return ethCrypto.VerifySignature(
		ethCrypto.FromECDSAPub(&p.PublicKey),
		ethCrypto.Keccak256(msg),
		sig,
	), nil
}
