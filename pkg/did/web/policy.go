package web

import (
	"os"
	"strings"
)

// ForceHTTPEnv names the environment variable holding a comma-delimited list
// of hostnames that resolve over plain http.
const ForceHTTPEnv = "SSI__DID_WEB__FORCE_HTTP_FOR_HOSTNAMES"

// HostPolicy selects the URL scheme for a did:web domain. Hostnames in the
// policy use http, everything else https. It exists for local development
// and is no security control.
//
// A HostPolicy is immutable and safe for concurrent use.
type HostPolicy struct {
	hosts map[string]struct{}
}

// NewHostPolicy keeps hosts verbatim. Entries are compared exactly, so
// surrounding whitespace is part of the hostname.
func NewHostPolicy(hosts ...string) HostPolicy {
	p := HostPolicy{hosts: make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		p.hosts[h] = struct{}{}
	}
	return p
}

// ParseHostPolicy reads a comma-delimited hostname list.
func ParseHostPolicy(list string) HostPolicy {
	return NewHostPolicy(strings.Split(list, ",")...)
}

func DefaultHostPolicy() HostPolicy {
	return NewHostPolicy("localhost")
}

// HostPolicyFromEnv captures ForceHTTPEnv, falling back to the default
// policy when it is not set.
func HostPolicyFromEnv() HostPolicy {
	list, ok := os.LookupEnv(ForceHTTPEnv)
	if !ok {
		return DefaultHostPolicy()
	}
	return ParseHostPolicy(list)
}

// Scheme returns "http" or "https" for a did:web domain. Only the hostname
// before an escaped port separator (%3A) is compared.
func (p HostPolicy) Scheme(domain string) string {
	host := domain
	if i := strings.Index(domain, portSeparator); i >= 0 {
		host = domain[:i]
	}

	if _, ok := p.hosts[host]; ok {
		return "http"
	}
	return "https"
}

// Hosts lists the plain http hostnames.
func (p HostPolicy) Hosts() []string {
	hosts := make([]string, 0, len(p.hosts))
	for h := range p.hosts {
		hosts = append(hosts, h)
	}
	return hosts
}
