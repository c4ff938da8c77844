package cryptography

import (
	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/cryptography"
)

func ValidateBls12381(vm VerificationMethod, signature []byte, msg []byte) (bool, error) {
	pkbytes, err := cryptography.DecodeMultibase(vm.PublicKeyMultibase)
	if err != nil {
		return false, errors.Wrap(err, "decoding multibase")
	}

	pk, err := cryptography.NewBls12381PublicKey(pkbytes)
	if err != nil {
		return false, err
	}

	return pk.Verify(signature, msg)
}
