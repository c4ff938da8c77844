package did

import (
	"time"
)

// Resolution error codes
const (
	ErrorInvalidDID                 = "invalidDid"
	ErrorNotFound                   = "notFound"
	ErrorRepresentationNotSupported = "representationNotSupported"
	ErrorMethodNotSupported         = "methodNotSupported"
)

// Representation media types
const (
	TypeDIDJSON   = "application/did+json"
	TypeDIDLDJSON = "application/did+ld+json"
	TypeJSON      = "application/json"
)

// ResolutionInputMetadata configures a single resolution.
type ResolutionInputMetadata struct {
	// Accept is the preferred media type of the representation. Empty lets
	// the method pick its default.
	Accept string `json:"accept,omitempty"`
}

// ResolutionMetadata describes the outcome of a resolution, separate from the
// resolved document. An empty Error means success.
type ResolutionMetadata struct {
	Error       string                 `json:"error,omitempty"`
	ContentType string                 `json:"contentType,omitempty"`
	PropertySet map[string]interface{} `json:"propertySet,omitempty"`
}

// NewResolutionError creates metadata carrying only the error code or message.
func NewResolutionError(code string) ResolutionMetadata {
	return ResolutionMetadata{Error: code}
}

// Failed reports whether an error was recorded.
func (m ResolutionMetadata) Failed() bool {
	return m.Error != ""
}

// DocumentMetadata describes a resolved document. The zero value is the
// default, uninformative record.
type DocumentMetadata struct {
	Created     *time.Time             `json:"created,omitempty"`
	Updated     *time.Time             `json:"updated,omitempty"`
	Deactivated bool                   `json:"deactivated,omitempty"`
	PropertySet map[string]interface{} `json:"propertySet,omitempty"`
}
