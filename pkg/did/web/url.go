package web

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didweb/pkg/ssierr"
)

const (
	portSeparator = "%3A"
	defaultPath   = ".well-known"
	documentName  = "did.json"
)

var (
	// ErrInvalidDID rejects identifiers that are not did:web:<domain>[:<path>...]
	ErrInvalidDID = errors.Wrap(ssierr.InvalidDID, "not a did:web identifier")
)

// URL translates a did:web identifier into the location of its document.
// No network access takes place.
func URL(did string, policy HostPolicy) (string, error) {
	parts := strings.Split(did, ":")
	if len(parts) < 3 || parts[0] != "did" || parts[1] != "web" || parts[2] == "" {
		return "", ErrInvalidDID
	}

	domain := parts[2]

	path := defaultPath
	if len(parts) > 3 {
		path = strings.Join(parts[3:], "/")
	}

	return policy.Scheme(domain) + "://" + strings.Replace(domain, portSeparator, ":", 1) + "/" + path + "/" + documentName, nil
}
