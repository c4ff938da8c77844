package w3cdid

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/did/w3cdid/cryptography"
	"github.com/tcfw/didweb/pkg/ssierr"
)

type Document struct {
	Context              Context                           `json:"@context"`
	ID                   string                            `json:"id"`
	AlsoKnownAs          []string                          `json:"alsoKnownAs,omitempty"`
	Controller           StringSet                         `json:"controller,omitempty"`
	VerificationMethod   []cryptography.VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication       []VerificationRelationship        `json:"authentication,omitempty"`
	AssertionMethod      []VerificationRelationship        `json:"assertionMethod,omitempty"`
	KeyAgreement         []VerificationRelationship        `json:"keyAgreement,omitempty"`
	CapabilityInvocation []VerificationRelationship        `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation []VerificationRelationship        `json:"capabilityDelegation,omitempty"`
	Service              []Service                         `json:"service,omitempty"`
}

type Service struct {
	ID              string      `json:"id"`
	Type            StringSet   `json:"type"`
	ServiceEndpoint interface{} `json:"serviceEndpoint"`
}

// ParseDocument decodes a JSON document representation. Any failure is
// reported as an ssierr JSON or UTF-8 error.
func ParseDocument(data []byte) (*Document, error) {
	if err := ssierr.CheckUTF8(data); err != nil {
		return nil, err
	}

	d := &Document{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, ssierr.FromJSON(err)
	}

	if len(d.Context) == 0 {
		return nil, ssierr.FromJSON(errors.New("missing field `@context`"))
	}
	if d.ID == "" {
		return nil, ssierr.FromJSON(errors.New("missing field `id`"))
	}

	return d, nil
}

// FindVerificationMethod looks up a verification method by its full ID or by
// a fragment relative to the document ID. Embedded methods of verification
// relationships are searched too.
func (d *Document) FindVerificationMethod(id string) (*cryptography.VerificationMethod, bool) {
	if len(id) > 0 && id[0] == '#' {
		id = d.ID + id
	}

	for i := range d.VerificationMethod {
		if d.VerificationMethod[i].ID == id {
			return &d.VerificationMethod[i], true
		}
	}

	for _, rels := range d.relationships() {
		for _, rel := range rels {
			if rel.Method != nil && rel.Method.ID == id {
				return rel.Method, true
			}
		}
	}

	return nil, false
}

// AssertionMethods returns the verification methods referenced or embedded
// in assertionMethod.
func (d *Document) AssertionMethods() []cryptography.VerificationMethod {
	return d.resolveRelationship(d.AssertionMethod)
}

// AuthenticationMethods returns the verification methods referenced or
// embedded in authentication.
func (d *Document) AuthenticationMethods() []cryptography.VerificationMethod {
	return d.resolveRelationship(d.Authentication)
}

func (d *Document) resolveRelationship(rels []VerificationRelationship) []cryptography.VerificationMethod {
	vms := make([]cryptography.VerificationMethod, 0, len(rels))
	for _, rel := range rels {
		if rel.Method != nil {
			vms = append(vms, *rel.Method)
			continue
		}

		if vm, ok := d.FindVerificationMethod(rel.Reference); ok {
			vms = append(vms, *vm)
		}
	}

	return vms
}

func (d *Document) relationships() [][]VerificationRelationship {
	return [][]VerificationRelationship{
		d.Authentication,
		d.AssertionMethod,
		d.KeyAgreement,
		d.CapabilityInvocation,
		d.CapabilityDelegation,
	}
}
