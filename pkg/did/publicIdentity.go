package did

import (
	"crypto"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/internal/utils/logging"
	"github.com/tcfw/didweb/pkg/did/w3cdid"
	"github.com/tcfw/didweb/pkg/did/w3cdid/cryptography"
)

var (
	ErrNoPublicKeys = errors.New("no usable public keys")
)

// PublicIdentity is the subject of a resolved document with its decoded keys.
type PublicIdentity struct {
	ID         string
	PublicKeys []PublicKey
}

type PublicKey struct {
	ID   string
	Type cryptography.VerificationMethodType
	Key  crypto.PublicKey
}

// NewPublicIdentity decodes every verification method of doc with a supported
// key type. Methods that cannot be decoded are skipped.
func NewPublicIdentity(doc *w3cdid.Document) (*PublicIdentity, error) {
	pi := &PublicIdentity{ID: doc.ID}

	for _, vm := range doc.VerificationMethod {
		k, err := cryptography.PublicKey(vm)
		if err != nil {
			logging.Entry().WithField("id", vm.ID).WithError(err).Debug("skipping verification method")
			continue
		}

		pi.PublicKeys = append(pi.PublicKeys, PublicKey{ID: vm.ID, Type: vm.Type, Key: k})
	}

	if len(pi.PublicKeys) == 0 {
		return nil, ErrNoPublicKeys
	}

	return pi, nil
}
