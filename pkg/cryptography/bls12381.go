package cryptography

import (
	"crypto"
	"io"

	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	sig "github.com/drand/kyber/sign/bls"
	"github.com/drand/kyber/util/random"
	"github.com/tcfw/didweb/pkg/ssierr"
)

var (
	_ crypto.PrivateKey = (*Bls12381PrivateKey)(nil)
	_ crypto.PublicKey  = (*Bls12381PublicKey)(nil)

	pairing = bls.NewBLS12381Suite()

	// public keys on G2, signatures on G1
	scheme = sig.NewSchemeOnG1(pairing)
)

func NewBls12381PrivateKey() *Bls12381PrivateKey {
	sk, _ := scheme.NewKeyPair(random.New())
	return &Bls12381PrivateKey{sk}
}

type Bls12381PrivateKey struct {
	sk kyber.Scalar
}

func (b *Bls12381PrivateKey) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) (signature []byte, err error) {
	return scheme.Sign(b.sk, digest)
}

func (b *Bls12381PrivateKey) Public() crypto.PublicKey {
	pk := pairing.G2().Point().Mul(b.sk, nil)
	return &Bls12381PublicKey{pk}
}

func (b *Bls12381PrivateKey) Equal(obls crypto.PrivateKey) bool {
	o, ok := obls.(*Bls12381PrivateKey)
	return ok && b.sk.Equal(o.sk)
}

type Bls12381PublicKey struct {
	kyber.Point
}

// NewBls12381PublicKey decodes a compressed G2 point.
func NewBls12381PublicKey(d []byte) (*Bls12381PublicKey, error) {
	pk := &Bls12381PublicKey{pairing.G2().Point()}
	if err := pk.UnmarshalBinary(d); err != nil {
		return nil, ssierr.FromKeyRejected(err)
	}

	return pk, nil
}

func (b *Bls12381PublicKey) Bytes() ([]byte, error) {
	return b.Point.MarshalBinary()
}

func (b *Bls12381PublicKey) Verify(signature, msg []byte) (bool, error) {
	if err := scheme.Verify(b.Point, msg, signature); err != nil {
		return false, ssierr.FromCrypto(err)
	}

	return true, nil
}
