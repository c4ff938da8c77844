// Package web implements the did:web method.
//
// https://w3c-ccg.github.io/did-method-web/
package web

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/didweb/internal/utils/logging"
	"github.com/tcfw/didweb/pkg/did"
	"github.com/tcfw/didweb/pkg/did/w3cdid"
)

const (
	MethodName = "web"

	DefaultUserAgent       = "didweb-go/0.1"
	DefaultMaxDocumentSize = 1 << 20
	defaultAccept          = did.TypeJSON
)

var _ did.Method = (*Resolver)(nil)

// Resolver resolves did:web identifiers over HTTPS, or HTTP for hostnames in
// its HostPolicy.
//
// The HTTP client is created once and shared by all calls. A Resolver holds no
// other state and is safe for concurrent use.
type Resolver struct {
	client    *http.Client
	policy    HostPolicy
	userAgent string
	maxSize   int64
	logger    *logrus.Entry
}

func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		policy:    DefaultHostPolicy(),
		userAgent: DefaultUserAgent,
		maxSize:   DefaultMaxDocumentSize,
		logger:    logging.Entry(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	if r.client == nil {
		r.client = NewHTTPClient()
	}

	return r, nil
}

// NewHTTPClient builds the default client: the standard transport with a
// TLS 1.2 minimum and no overall timeout.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{Transport: transport}
}

func (r *Resolver) Name() string {
	return MethodName
}

// URL returns the document location of a did:web identifier.
func (r *Resolver) URL(id string) (string, error) {
	return URL(id, r.policy)
}

// ResolveRepresentation fetches the document bytes without decoding them.
// On success the content type is application/did+ld+json.
func (r *Resolver) ResolveRepresentation(ctx context.Context, id string, input did.ResolutionInputMetadata) (did.ResolutionMetadata, []byte, *did.DocumentMetadata) {
	u, err := URL(id, r.policy)
	if err != nil {
		r.logger.WithField("did", id).Debug("invalid did:web identifier")
		return did.NewResolutionError(did.ErrorInvalidDID), nil, nil
	}

	accept := input.Accept
	if accept == "" {
		accept = defaultAccept
	}

	return r.fetch(ctx, u, accept)
}

// Resolve fetches and decodes the document. A document that does not decode
// fails the whole resolution; the content type is never set.
func (r *Resolver) Resolve(ctx context.Context, id string, input did.ResolutionInputMetadata) (did.ResolutionMetadata, *w3cdid.Document, *did.DocumentMetadata) {
	meta, data, docMeta := r.ResolveRepresentation(ctx, id, input)

	var doc *w3cdid.Document
	if len(data) > 0 {
		var err error
		doc, err = w3cdid.ParseDocument(data)
		if err != nil {
			r.logger.WithField("did", id).WithError(err).Debug("decoding did document")
			return did.NewResolutionError("JSON Error: " + err.Error()), nil, nil
		}
	}

	meta.ContentType = ""

	return meta, doc, docMeta
}
