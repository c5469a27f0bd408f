package fiberpool

import (
	"crypto/tls"
	"net"

	"jenkinsclient/pkg/config"
	"jenkinsclient/pkg/transport"

	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
)

// fasthttp never consults proxy environment variables; Dial connects directly.
func newFiberBase(cfg config.Config) *fasthttp.Client {
	return &fasthttp.Client{
		Dial:                func(addr string) (net.Conn, error) { return fasthttp.DialTimeout(addr, cfg.DialTimeout) },
		TLSConfig:           &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		ReadTimeout:         cfg.RequestTimeout,
		WriteTimeout:        cfg.RequestTimeout,
		MaxIdleConnDuration: cfg.IdleConnTimeout,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxConnWaitTimeout:  cfg.ConnWaitTimeout,
	}
}

func newFiberClient(cfg config.Config, base *fasthttp.Client) *fibercli.Client {
	c := fibercli.NewWithClient(base).
		SetUserAgent(cfg.UserAgent).
		AddHeader("Authorization", transport.BasicAuth(cfg.Username, cfg.APIToken))
	if cfg.RequestTimeout > 0 {
		c.SetTimeout(cfg.RequestTimeout)
	}
	return c
}
