package cryptography

import (
	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/cryptography"
)

func ValidateEcdsaSecp256k1(vm VerificationMethod, signature []byte, msg []byte) (bool, error) {
	pkbytes, err := cryptography.DecodeMultibase(vm.PublicKeyMultibase)
	if err != nil {
		return false, errors.Wrap(err, "decoding multibase")
	}

	pub, err := cryptography.NewSecp256k1PublicKey(pkbytes)
	if err != nil {
		return false, errors.Wrap(err, "unmarshalling public key")
	}

	return pub.Verify(signature, msg)
}
