package cryptography

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/cryptography"
	"github.com/tcfw/didweb/pkg/ssierr"
)

// multicodec prefix of ed25519-pub keys
var ed25519Multicodec = []byte{0xed, 0x01}

func ValidateEd25519(vm VerificationMethod, sig []byte, msg []byte) (bool, error) {
	pk, err := Ed25519PublicKey(vm)
	if err != nil {
		return false, errors.Wrap(err, "decoding public key")
	}

	return ed25519.Verify(pk, msg, sig), nil
}

// Ed25519PublicKey decodes publicKeyMultibase, with or without the multicodec
// prefix. Methods without it fall back to an OKP publicKeyJwk.
func Ed25519PublicKey(vm VerificationMethod) (ed25519.PublicKey, error) {
	if vm.PublicKeyMultibase == "" && len(vm.PublicKeyJwk) > 0 {
		jwk, err := vm.JWK()
		if err != nil {
			return nil, err
		}

		pk, ok := jwk.Key.(ed25519.PublicKey)
		if !ok {
			return nil, ssierr.KeyTypeNotImplemented
		}
		return pk, nil
	}

	pkbytes, err := cryptography.DecodeMultibase(vm.PublicKeyMultibase)
	if err != nil {
		return nil, err
	}

	if len(pkbytes) == ed25519.PublicKeySize+len(ed25519Multicodec) && bytes.HasPrefix(pkbytes, ed25519Multicodec) {
		pkbytes = pkbytes[len(ed25519Multicodec):]
	}

	if len(pkbytes) != ed25519.PublicKeySize {
		return nil, ssierr.InvalidKeyLength
	}

	return ed25519.PublicKey(pkbytes), nil
}
