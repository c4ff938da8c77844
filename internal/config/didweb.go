package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tcfw/didweb/pkg/did/web"
)

type DIDWeb struct {
	ForceHTTP       web.HostPolicy
	Timeout         time.Duration
	UserAgent       string
	MaxDocumentSize int64
}

const (
	Cfg_didweb_forceHTTPForHostnames = "didweb.forceHTTPForHostnames"
	Cfg_http_timeout                 = "http.timeout"
	Cfg_http_userAgent               = "http.userAgent"
	Cfg_http_maxDocumentSize         = "http.maxDocumentSize"

	forceHTTPEnv = web.ForceHTTPEnv
)

var (
	didWebDefaults = map[string]interface{}{
		Cfg_didweb_forceHTTPForHostnames: "localhost",
		Cfg_http_timeout:                 time.Duration(0),
		Cfg_http_userAgent:               web.DefaultUserAgent,
		Cfg_http_maxDocumentSize:         web.DefaultMaxDocumentSize,
	}
)

func buildDIDWebConfig(v *viper.Viper) (*DIDWeb, error) {
	c := &DIDWeb{
		Timeout:         v.GetDuration(Cfg_http_timeout),
		UserAgent:       v.GetString(Cfg_http_userAgent),
		MaxDocumentSize: v.GetInt64(Cfg_http_maxDocumentSize),
	}

	switch raw := v.Get(Cfg_didweb_forceHTTPForHostnames).(type) {
	case string:
		c.ForceHTTP = web.ParseHostPolicy(raw)
	default:
		c.ForceHTTP = web.NewHostPolicy(v.GetStringSlice(Cfg_didweb_forceHTTPForHostnames)...)
	}

	if c.Timeout < 0 {
		return nil, errors.Errorf("negative %s", Cfg_http_timeout)
	}
	if c.MaxDocumentSize <= 0 {
		return nil, errors.Errorf("%s must be positive", Cfg_http_maxDocumentSize)
	}

	return c, nil
}

// Options turns the configuration into did:web resolver options. The HTTP
// client is built here once and shared by everything using the options.
func (c *DIDWeb) Options() []web.Option {
	client := web.NewHTTPClient()
	client.Timeout = c.Timeout

	return []web.Option{
		web.WithHTTPClient(client),
		web.WithHostPolicy(c.ForceHTTP),
		web.WithUserAgent(c.UserAgent),
		web.WithMaxDocumentSize(c.MaxDocumentSize),
	}
}
