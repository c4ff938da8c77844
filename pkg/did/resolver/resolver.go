package resolver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/did"
	"github.com/tcfw/didweb/pkg/did/w3cdid"
	"github.com/tcfw/didweb/pkg/did/web"
)

var (
	ErrUnknownMethod = errors.New("unknown did method")
)

var _ did.Resolver = (*Resolver)(nil)
var _ did.RepresentationResolver = (*Resolver)(nil)

// Resolver routes DIDs to the registered method by method name. Query and
// fragment parts of DID URLs are dropped before delegating.
type Resolver struct {
	methods map[string]did.Method
}

type Option func(*Resolver) error

// WithMethod registers m, replacing any method of the same name.
func WithMethod(m did.Method) Option {
	return func(r *Resolver) error {
		r.methods[m.Name()] = m
		return nil
	}
}

// WithWeb registers a did:web resolver built from opts.
func WithWeb(opts ...web.Option) Option {
	return func(r *Resolver) error {
		w, err := web.NewResolver(opts...)
		if err != nil {
			return errors.Wrap(err, "initing did:web")
		}
		r.methods[w.Name()] = w
		return nil
	}
}

// New creates a resolver. Without options it supports did:web with defaults.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{methods: map[string]did.Method{}}

	if len(opts) == 0 {
		opts = []Option{WithWeb()}
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Methods lists the registered method names.
func (r *Resolver) Methods() []string {
	names := make([]string, 0, len(r.methods))
	for n := range r.methods {
		names = append(names, n)
	}
	return names
}

func (r *Resolver) method(id string) (did.Method, string, did.ResolutionMetadata, bool) {
	u := w3cdid.URL(id)
	if !strings.HasPrefix(id, "did:") || u.Method() == "" {
		return nil, "", did.NewResolutionError(did.ErrorInvalidDID), false
	}

	m, ok := r.methods[u.Method()]
	if !ok {
		return nil, "", did.NewResolutionError(did.ErrorMethodNotSupported), false
	}

	return m, u.DID(), did.ResolutionMetadata{}, true
}

func (r *Resolver) Resolve(ctx context.Context, id string, input did.ResolutionInputMetadata) (did.ResolutionMetadata, *w3cdid.Document, *did.DocumentMetadata) {
	m, id, meta, ok := r.method(id)
	if !ok {
		return meta, nil, nil
	}

	return m.Resolve(ctx, id, input)
}

func (r *Resolver) ResolveRepresentation(ctx context.Context, id string, input did.ResolutionInputMetadata) (did.ResolutionMetadata, []byte, *did.DocumentMetadata) {
	m, id, meta, ok := r.method(id)
	if !ok {
		return meta, nil, nil
	}

	return m.ResolveRepresentation(ctx, id, input)
}

// ResolvePI resolves a DID into its public identity. Resolution failures are
// returned as errors carrying the metadata error.
func (r *Resolver) ResolvePI(ctx context.Context, id string) (*did.PublicIdentity, error) {
	meta, doc, _ := r.Resolve(ctx, id, did.ResolutionInputMetadata{})
	if meta.Failed() {
		if meta.Error == did.ErrorMethodNotSupported {
			return nil, ErrUnknownMethod
		}
		return nil, errors.Errorf("resolving %s: %s", id, meta.Error)
	}
	if doc == nil {
		return nil, errors.Errorf("resolving %s: empty document", id)
	}

	return did.NewPublicIdentity(doc)
}
