package restypool

import (
	"crypto/tls"
	"net"
	"net/http"

	"jenkinsclient/pkg/config"
	"jenkinsclient/pkg/transport"

	resty "resty.dev/v3"
)

// Proxy is left nil so no proxy is ever picked up from the environment.
func newHTTPTransport(cfg config.Config) *http.Transport {
	return &http.Transport{
		DialContext:           (&net.Dialer{Timeout: cfg.DialTimeout}).DialContext,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		TLSHandshakeTimeout:   cfg.TlsTimeout,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxIdleConns:          cfg.Size * 2,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		TLSNextProto:          map[string]func(string, *tls.Conn) http.RoundTripper{},
	}
}

// Form params are sent on every method, so GET and DELETE payloads are allowed.
func newRestyClient(cfg config.Config) *resty.Client {
	c := resty.New().
		SetTransport(newHTTPTransport(cfg)).
		SetAllowMethodGetPayload(true).
		SetAllowMethodDeletePayload(true).
		SetLogger(cfg.Log()).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Authorization", transport.BasicAuth(cfg.Username, cfg.APIToken))
	if cfg.RequestTimeout > 0 {
		c.SetTimeout(cfg.RequestTimeout)
	}
	return c
}
