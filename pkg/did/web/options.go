package web

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Option func(*Resolver) error

// WithHTTPClient sets the shared client used for every fetch. Timeouts,
// proxies and trust roots are configured on the client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) error {
		if c == nil {
			return errors.New("nil http client")
		}
		r.client = c
		return nil
	}
}

// WithHostPolicy sets which hostnames resolve over plain http.
func WithHostPolicy(p HostPolicy) Option {
	return func(r *Resolver) error {
		r.policy = p
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(r *Resolver) error {
		r.userAgent = ua
		return nil
	}
}

// WithMaxDocumentSize caps the accepted response body size in bytes.
func WithMaxDocumentSize(n int64) Option {
	return func(r *Resolver) error {
		if n <= 0 {
			return errors.Errorf("invalid max document size %d", n)
		}
		r.maxSize = n
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(r *Resolver) error {
		if l == nil {
			return errors.New("nil logger")
		}
		r.logger = l
		return nil
	}
}
