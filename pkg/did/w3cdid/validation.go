package w3cdid

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/ssierr"
)

// IsValid checks the structural requirements of a document: a DID subject,
// and an id, type and controller on every verification method.
func (d *Document) IsValid() error {
	if d.ID == "" {
		return ssierr.MissingDocumentID
	}

	if URL(d.ID).Method() == "" || !strings.HasPrefix(d.ID, "did:") {
		return errors.Wrapf(ssierr.InvalidDID, "document id %q", d.ID)
	}

	if len(d.Context) == 0 {
		return ssierr.MissingContext
	}

	for _, vm := range d.VerificationMethod {
		if vm.ID == "" || vm.Type == "" || vm.Controller == "" {
			return errors.Wrapf(ssierr.MissingVerificationMethod, "incomplete verification method %q", vm.ID)
		}
	}

	for _, rels := range d.relationships() {
		for _, rel := range rels {
			if rel.Method == nil && rel.Reference == "" {
				return errors.Wrap(ssierr.MissingVerificationMethod, "empty verification relationship")
			}
		}
	}

	return nil
}
