package web

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tcfw/didweb/pkg/ssierr"
)

func TestURL(t *testing.T) {
	tests := map[string]string{
		// https://w3c-ccg.github.io/did-method-web/#example-3-creating-the-did
		"did:web:w3c-ccg.github.io": "https://w3c-ccg.github.io/.well-known/did.json",
		// https://w3c-ccg.github.io/did-method-web/#example-4-creating-the-did-with-optional-path
		"did:web:w3c-ccg.github.io:user:alice": "https://w3c-ccg.github.io/user/alice/did.json",
		// https://w3c-ccg.github.io/did-method-web/#optional-path-considerations
		"did:web:example.com:u:bob": "https://example.com/u/bob/did.json",
		// https://w3c-ccg.github.io/did-method-web/#example-creating-the-did-with-optional-path-and-port
		"did:web:example.com%3A443:u:bob": "https://example.com:443/u/bob/did.json",

		"did:web:localhost":              "http://localhost/.well-known/did.json",
		"did:web:localhost%3A8080":       "http://localhost:8080/.well-known/did.json",
		"did:web:localhost%3A8080:a:b:c": "http://localhost:8080/a/b/c/did.json",
		"did:web:example.com%3A1%3A2":    "https://example.com:1%3A2/.well-known/did.json",
		"did:web:localhost.example.com":  "https://localhost.example.com/.well-known/did.json",
	}

	policy := DefaultHostPolicy()

	for did, expected := range tests {
		t.Run(did, func(t *testing.T) {
			u, err := URL(did, policy)
			assert.NoError(t, err)
			assert.Equal(t, expected, u)
		})
	}
}

func TestURLInvalid(t *testing.T) {
	tests := []string{
		"",
		"did",
		"did:web",
		"did:web:",
		"did:web::u:bob",
		"did:key:z6Mkf",
		"DID:web:example.com",
		"web:example.com",
		"example.com",
		"https://example.com",
	}

	for _, did := range tests {
		t.Run(did, func(t *testing.T) {
			u, err := URL(did, DefaultHostPolicy())
			assert.Empty(t, u)
			assert.Equal(t, ErrInvalidDID, err)
			assert.True(t, errors.Is(err, ssierr.InvalidDID))
		})
	}
}

func TestURLAlwaysEndsInDocument(t *testing.T) {
	for _, did := range []string{"did:web:a", "did:web:a:b", "did:web:a:", "did:web:a%3A1:b:"} {
		u, err := URL(did, NewHostPolicy())
		assert.NoError(t, err)
		assert.Regexp(t, `^https://.+/did\.json$`, u)
	}
}
