package cryptography

import (
	"crypto"

	"github.com/tcfw/didweb/pkg/cryptography"
	"github.com/tcfw/didweb/pkg/ssierr"
)

// PublicKey decodes the key material of a verification method.
func PublicKey(vm VerificationMethod) (crypto.PublicKey, error) {
	switch vm.Type {
	case Ed25519VerificationKey2018, Ed25519VerificationKey2020:
		return Ed25519PublicKey(vm)
	case EcdsaSecp256k1VerificationKey2019:
		b, err := cryptography.DecodeMultibase(vm.PublicKeyMultibase)
		if err != nil {
			return nil, err
		}
		return cryptography.NewSecp256k1PublicKey(b)
	case Bls12381G2Key2020:
		b, err := cryptography.DecodeMultibase(vm.PublicKeyMultibase)
		if err != nil {
			return nil, err
		}
		return cryptography.NewBls12381PublicKey(b)
	case JsonWebKey2020:
		jwk, err := vm.JWK()
		if err != nil {
			return nil, err
		}
		return jwk.Key, nil
	default:
		return nil, ssierr.KeyTypeNotImplemented
	}
}
