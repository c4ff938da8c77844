package w3cdid

import (
	"github.com/pkg/errors"
	"github.com/tcfw/didweb/internal/utils/logging"
	"github.com/tcfw/didweb/pkg/did/w3cdid/cryptography"
	"github.com/tcfw/didweb/pkg/ssierr"
)

type SignatureValidator func(vm cryptography.VerificationMethod, sig []byte, msg []byte) (bool, error)

var (
	ErrNoValidSignatures = errors.New("no valid signatures")

	validators = map[cryptography.VerificationMethodType]SignatureValidator{
		cryptography.Ed25519VerificationKey2018:        cryptography.ValidateEd25519,
		cryptography.Ed25519VerificationKey2020:        cryptography.ValidateEd25519,
		cryptography.Bls12381G2Key2020:                 cryptography.ValidateBls12381,
		cryptography.EcdsaSecp256k1VerificationKey2019: cryptography.ValidateEcdsaSecp256k1,
		cryptography.JsonWebKey2020:                    cryptography.ValidateJWK,
	}
)

// Signed checks if the signature was made by any verification method of the
// document with a supported type.
func (d *Document) Signed(signature []byte, msg []byte) error {
	return signedBy(d.VerificationMethod, signature, msg)
}

// SignedBy checks the signature against the single verification method id,
// which may be a fragment relative to the document.
func (d *Document) SignedBy(id string, signature []byte, msg []byte) error {
	vm, ok := d.FindVerificationMethod(id)
	if !ok {
		return errors.Wrapf(ssierr.MissingVerificationMethod, "%s", id)
	}

	return signedBy([]cryptography.VerificationMethod{*vm}, signature, msg)
}

func signedBy(vms []cryptography.VerificationMethod, signature []byte, msg []byte) error {
	if len(vms) == 0 {
		return errors.New("no verification method specified")
	}

	for _, vm := range vms {
		validator, ok := validators[vm.Type]
		if !ok {
			logging.Entry().Debugf("unsupported verification type: %s", vm.Type)
			continue
		}

		ok, err := validator(vm, signature, msg)
		if err != nil {
			logging.Entry().WithField("type", vm.Type).WithError(err).Debug("validating signature")
			continue
		}

		if ok {
			return nil
		}
	}

	return ErrNoValidSignatures
}
