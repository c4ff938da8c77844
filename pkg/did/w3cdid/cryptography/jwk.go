package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"math/big"

	"github.com/tcfw/didweb/pkg/ssierr"
)

// ValidateJWK verifies JsonWebKey2020 methods. Ed25519 signatures are raw,
// ECDSA signatures use the JWS R || S encoding.
func ValidateJWK(vm VerificationMethod, signature []byte, msg []byte) (bool, error) {
	jwk, err := vm.JWK()
	if err != nil {
		return false, err
	}

	switch pk := jwk.Key.(type) {
	case ed25519.PublicKey:
		return ed25519.Verify(pk, msg, signature), nil
	case *ecdsa.PublicKey:
		return verifyECDSA(pk, signature, msg)
	default:
		return false, ssierr.KeyTypeNotImplemented
	}
}

func verifyECDSA(pk *ecdsa.PublicKey, signature []byte, msg []byte) (bool, error) {
	var h crypto.Hash
	switch pk.Curve {
	case elliptic.P256():
		h = crypto.SHA256
	case elliptic.P384():
		h = crypto.SHA384
	default:
		return false, ssierr.NewCurveNotImplemented(pk.Curve.Params().Name)
	}

	size := (pk.Curve.Params().BitSize + 7) / 8
	if len(signature) != 2*size {
		return false, ssierr.InvalidSignature
	}

	hasher := h.New()
	hasher.Write(msg)

	r := new(big.Int).SetBytes(signature[:size])
	s := new(big.Int).SetBytes(signature[size:])

	return ecdsa.Verify(pk, hasher.Sum(nil), r, s), nil
}
