package did

import (
	"context"

	"github.com/tcfw/didweb/pkg/did/w3cdid"
)

// Resolver resolves a DID into a parsed document.
//
// Failures are reported through ResolutionMetadata.Error, never as a Go
// error, so every call yields a complete resolution result.
type Resolver interface {
	Resolve(ctx context.Context, did string, input ResolutionInputMetadata) (ResolutionMetadata, *w3cdid.Document, *DocumentMetadata)
}

// RepresentationResolver resolves a DID into the undecoded document bytes.
type RepresentationResolver interface {
	ResolveRepresentation(ctx context.Context, did string, input ResolutionInputMetadata) (ResolutionMetadata, []byte, *DocumentMetadata)
}

// Method is a DID method implementation usable for both resolution variants.
type Method interface {
	Resolver
	RepresentationResolver

	// Name is the method name, e.g. "web" for did:web.
	Name() string
}
