package w3cdid

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/did/w3cdid/cryptography"
)

var (
	ErrNullContext      = errors.New("invalid type: null, expected a context URI, object or list")
	ErrNullRelationship = errors.New("invalid type: null, expected a verification method or reference")
)

var jsonNull = []byte("null")

// Context holds the JSON-LD contexts of a document. Entries are either URIs
// or embedded context objects.
type Context []interface{}

func (c *Context) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return ErrNullContext
	}

	if bytes.HasPrefix(bytes.TrimSpace(b), []byte("[")) {
		var l []interface{}
		if err := json.Unmarshal(b, &l); err != nil {
			return err
		}
		*c = l
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Context{v}
	return nil
}

func (c Context) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]interface{}(c))
}

// StringSet is a property holding either a single string or a list of them.
type StringSet []string

// A null StringSet is left empty.
func (s *StringSet) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*s = nil
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(b), []byte("[")) {
		var l []string
		if err := json.Unmarshal(b, &l); err != nil {
			return err
		}
		*s = l
		return nil
	}

	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = StringSet{v}
	return nil
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// VerificationRelationship is an entry of authentication, assertionMethod
// etc. It either references a verification method by ID or embeds it.
type VerificationRelationship struct {
	Reference string
	Method    *cryptography.VerificationMethod
}

func (r *VerificationRelationship) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return ErrNullRelationship
	}

	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		return json.Unmarshal(b, &r.Reference)
	}

	r.Method = &cryptography.VerificationMethod{}
	return json.Unmarshal(b, r.Method)
}

func (r VerificationRelationship) MarshalJSON() ([]byte, error) {
	if r.Method != nil {
		return json.Marshal(r.Method)
	}
	return json.Marshal(r.Reference)
}
