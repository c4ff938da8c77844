package web

import (
	"context"
	"crypto/ed25519"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didweb/pkg/did"
	"github.com/tcfw/didweb/pkg/did/w3cdid"
)

const (
	didURL  = "http://localhost/.well-known/did.json"
	didJSON = `{
  "@context": "https://www.w3.org/ns/did/v1",
  "id": "did:web:localhost",
  "verificationMethod": [{
     "id": "did:web:localhost#key1",
     "type": "Ed25519VerificationKey2018",
     "controller": "did:web:localhost",
     "publicKeyJwk": {
       "key_id": "ed25519-2020-10-18",
       "kty": "OKP",
       "crv": "Ed25519",
       "x": "G80iskrv_nE69qbGLSpeOHJgmV4MKIzsy5l5iT6pCww"
     }
  }],
  "assertionMethod": ["did:web:localhost#key1"]
}`
)

// handlerTransport serves requests in process, keeping the full request URL
// visible to the handler.
type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

type errTransport struct{}

func (errTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

// documentServer serves body at exactly url, 404 otherwise.
func documentServer(url string, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.String() != url {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func newTestResolver(t *testing.T, h http.Handler, opts ...Option) *Resolver {
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: handlerTransport{h}})}, opts...)
	r, err := NewResolver(opts...)
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, didJSON))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Empty(t, meta.Error)
	assert.Empty(t, meta.ContentType)
	assert.Equal(t, &did.DocumentMetadata{}, docMeta)

	expected, err := w3cdid.ParseDocument([]byte(didJSON))
	require.NoError(t, err)
	assert.Equal(t, expected, doc)
}

func TestResolvePublicIdentityFromJWK(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, didJSON))

	meta, doc, _ := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	require.False(t, meta.Failed(), meta.Error)

	pi, err := did.NewPublicIdentity(doc)
	require.NoError(t, err)
	require.Len(t, pi.PublicKeys, 1)
	assert.Equal(t, "did:web:localhost#key1", pi.PublicKeys[0].ID)
	assert.IsType(t, ed25519.PublicKey{}, pi.PublicKeys[0].Key)
}

func TestResolveRepresentation(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, didJSON))

	meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Empty(t, meta.Error)
	assert.Equal(t, did.TypeDIDLDJSON, meta.ContentType)
	assert.Equal(t, []byte(didJSON), data)
	assert.Equal(t, &did.DocumentMetadata{}, docMeta)
}

func TestResolveNotFound(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, didJSON))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost:u:bob", did.ResolutionInputMetadata{})
	assert.Equal(t, did.ErrorNotFound, meta.Error)
	assert.Nil(t, doc)
	assert.Equal(t, &did.DocumentMetadata{}, docMeta)

	meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:localhost:u:bob", did.ResolutionInputMetadata{})
	assert.Equal(t, did.ErrorNotFound, meta.Error)
	assert.Empty(t, meta.ContentType)
	assert.Empty(t, data)
	assert.NotNil(t, docMeta)
}

func TestResolveMalformedJSON(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, `{"id": "did:web:localhost",`))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.True(t, strings.HasPrefix(meta.Error, "JSON Error: "), meta.Error)
	assert.Empty(t, meta.ContentType)
	assert.Nil(t, doc)
	assert.Nil(t, docMeta)

	meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Empty(t, meta.Error)
	assert.Equal(t, did.TypeDIDLDJSON, meta.ContentType)
	assert.Equal(t, []byte(`{"id": "did:web:localhost",`), data)
	assert.NotNil(t, docMeta)
}

func TestResolveNullContext(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, `{"@context": null, "id": "did:web:localhost"}`))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.True(t, strings.HasPrefix(meta.Error, "JSON Error: "), meta.Error)
	assert.Nil(t, doc)
	assert.Nil(t, docMeta)
}

func TestResolveEmptyBody(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, ""))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Empty(t, meta.Error)
	assert.Empty(t, meta.ContentType)
	assert.Nil(t, doc)
	assert.NotNil(t, docMeta)
}

func TestResolveInvalidDID(t *testing.T) {
	called := false
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, id := range []string{"did:key:z6Mk", "did:web:", "did:web", "web:example.com"} {
		meta, doc, docMeta := r.Resolve(context.Background(), id, did.ResolutionInputMetadata{})
		assert.Equal(t, did.ErrorInvalidDID, meta.Error)
		assert.Nil(t, doc)
		assert.Nil(t, docMeta)

		meta, data, docMeta := r.ResolveRepresentation(context.Background(), id, did.ResolutionInputMetadata{})
		assert.Equal(t, did.ErrorInvalidDID, meta.Error)
		assert.Empty(t, meta.ContentType)
		assert.Nil(t, data)
		assert.Nil(t, docMeta)
	}

	assert.False(t, called)
}

func TestResolveServerError(t *testing.T) {
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	meta, doc, docMeta := r.Resolve(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Equal(t, "HTTP status 500 Internal Server Error for url (http://localhost/.well-known/did.json)", meta.Error)
	assert.Nil(t, doc)
	assert.Equal(t, &did.DocumentMetadata{}, docMeta)
}

func TestResolveNonOKSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusNonAuthoritativeInfo, http.StatusNoContent} {
		r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
		assert.True(t, strings.HasPrefix(meta.Error, "HTTP status "), meta.Error)
		assert.Empty(t, meta.ContentType)
		assert.Nil(t, data)
		assert.Equal(t, &did.DocumentMetadata{}, docMeta)
	}
}

func TestResolveTransportError(t *testing.T) {
	r, err := NewResolver(WithHTTPClient(&http.Client{Transport: errTransport{}}))
	require.NoError(t, err)

	meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:example.com", did.ResolutionInputMetadata{})
	assert.True(t, strings.HasPrefix(meta.Error, "Error sending HTTP request (https://example.com/.well-known/did.json): "), meta.Error)
	assert.Contains(t, meta.Error, "connection refused")
	assert.Empty(t, meta.ContentType)
	assert.Empty(t, data)
	assert.Nil(t, docMeta)

	meta2, doc, docMeta := r.Resolve(context.Background(), "did:web:example.com", did.ResolutionInputMetadata{})
	assert.Equal(t, meta.Error, meta2.Error)
	assert.Nil(t, doc)
	assert.Nil(t, docMeta)
}

func TestResolveAcceptHeader(t *testing.T) {
	var (
		mu      sync.Mutex
		accepts []string
		agents  []string
	)
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		accepts = append(accepts, r.Header.Get("Accept"))
		agents = append(agents, r.Header.Get("User-Agent"))
		mu.Unlock()
		w.Write([]byte(didJSON))
	}), WithUserAgent("test-agent/1"))

	r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{Accept: did.TypeDIDLDJSON})

	assert.Equal(t, []string{"application/json", "application/did+ld+json"}, accepts)
	assert.Equal(t, []string{"test-agent/1", "test-agent/1"}, agents)
}

func TestResolveSchemeFromPolicy(t *testing.T) {
	var seen []string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.String())
		w.WriteHeader(http.StatusNotFound)
	})

	r := newTestResolver(t, h, WithHostPolicy(NewHostPolicy("example.test")))

	r.ResolveRepresentation(context.Background(), "did:web:example.test%3A8080:u:bob", did.ResolutionInputMetadata{})
	r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	r.ResolveRepresentation(context.Background(), "did:web:unreachable.invalid", did.ResolutionInputMetadata{})

	assert.Equal(t, []string{
		"http://example.test:8080/u/bob/did.json",
		"https://localhost/.well-known/did.json",
		"https://unreachable.invalid/.well-known/did.json",
	}, seen)
}

func TestResolveDocumentTooLarge(t *testing.T) {
	r := newTestResolver(t, documentServer(didURL, didJSON), WithMaxDocumentSize(16))

	meta, data, docMeta := r.ResolveRepresentation(context.Background(), "did:web:localhost", did.ResolutionInputMetadata{})
	assert.Equal(t, "Error reading HTTP response: document exceeds 16 bytes", meta.Error)
	assert.Nil(t, data)
	assert.Nil(t, docMeta)
}

func TestResolveCancelled(t *testing.T) {
	r, err := NewResolver(WithHostPolicy(NewHostPolicy("127.0.0.1")))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	meta, doc, docMeta := r.Resolve(ctx, "did:web:127.0.0.1%3A1", did.ResolutionInputMetadata{})
	assert.Contains(t, meta.Error, "context canceled")
	assert.Nil(t, doc)
	assert.Nil(t, docMeta)
}

// TestResolveOverNetwork runs against a real listener, with the port carried
// through the %3A escape.
func TestResolveOverNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/u/alice/did.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(didJSON))
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")
	id := "did:web:" + strings.Replace(host, ":", "%3A", 1) + ":u:alice"

	r, err := NewResolver(WithHostPolicy(NewHostPolicy("127.0.0.1")))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			meta, doc, docMeta := r.Resolve(context.Background(), id, did.ResolutionInputMetadata{})
			assert.Empty(t, meta.Error)
			if assert.NotNil(t, doc) {
				assert.Equal(t, "did:web:localhost", doc.ID)
			}
			assert.NotNil(t, docMeta)
		}()
	}
	wg.Wait()

	meta, doc, _ := r.Resolve(context.Background(), "did:web:"+strings.Replace(host, ":", "%3A", 1), did.ResolutionInputMetadata{})
	assert.Equal(t, did.ErrorNotFound, meta.Error)
	assert.Nil(t, doc)
}

func TestNewResolverOptions(t *testing.T) {
	_, err := NewResolver(WithHTTPClient(nil))
	assert.Error(t, err)

	_, err = NewResolver(WithMaxDocumentSize(0))
	assert.Error(t, err)

	r, err := NewResolver()
	require.NoError(t, err)
	assert.Equal(t, MethodName, r.Name())

	u, err := r.URL("did:web:example.com")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/.well-known/did.json", u)
}
