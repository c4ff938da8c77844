package w3cdid

import (
	"net/url"
	"strings"
)

// URL is a DID or DID URL, e.g. did:web:example.com:u:bob#key-1
type URL string

func (u URL) Scheme() string {
	return "did"
}

func (u URL) Method() string {
	p := strings.SplitN(u.opaque(), ":", 2)
	return p[0]
}

func (u URL) Id() string {
	p := strings.SplitN(u.opaque(), ":", 2)
	if len(p) < 2 {
		return ""
	}

	return p[1]
}

func (u URL) Query() string {
	uri, _ := url.Parse(string(u))
	return uri.RawQuery
}

func (u URL) Fragment() string {
	uri, _ := url.Parse(string(u))
	return uri.Fragment
}

// DID strips any path, query and fragment, leaving the bare DID.
func (u URL) DID() string {
	s := string(u)
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return s
}

// opaque is the part after the scheme. Percent-encodings such as the %3A
// port separator of did:web stay escaped.
func (u URL) opaque() string {
	uri, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	return uri.Opaque
}
