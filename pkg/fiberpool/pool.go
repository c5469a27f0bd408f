// Package fiberpool is the asynchronous Jenkins transport, built on the fiber
// client over fasthttp. RequestAsync returns immediately and delivers the
// result on a channel; Request waits for it.
package fiberpool

import (
	"context"
	"sync"
	"time"

	"jenkinsclient/pkg/config"
	"jenkinsclient/pkg/endpoint"
	"jenkinsclient/pkg/rr"
	"jenkinsclient/pkg/transport"

	"github.com/apex/log"
	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
)

var (
	_ transport.Transport      = (*ClientPool)(nil)
	_ transport.AsyncTransport = (*ClientPool)(nil)
)

type ClientPool struct {
	clients   []*fibercli.Client
	bases     []*fasthttp.Client
	spin      rr.RR
	cfg       config.Config
	log       log.Interface
	closeOnce sync.Once
}

func New(cfg config.Config) *ClientPool {
	if cfg.Size <= 0 {
		cfg.Size = config.DefaultConfig().Size
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = config.DefaultUserAgent
	}
	cs := make([]*fibercli.Client, 0, cfg.Size)
	bs := make([]*fasthttp.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		b := newFiberBase(cfg)
		bs = append(bs, b)
		cs = append(cs, newFiberClient(cfg, b))
	}
	return &ClientPool{clients: cs, bases: bs, cfg: cfg, log: cfg.Log()}
}

func (p *ClientPool) RequestAsync(ctx context.Context, method, path string, params []endpoint.Param) <-chan transport.Result {
	return transport.Go(func() (string, error) {
		return p.do(ctx, method, path, params)
	})
}

func (p *ClientPool) Request(ctx context.Context, method, path string, params []endpoint.Param) (string, error) {
	res := <-p.RequestAsync(ctx, method, path, params)
	return res.Body, res.Err
}

func (p *ClientPool) do(ctx context.Context, method, path string, params []endpoint.Param) (string, error) {
	if err := transport.Validate(method, params); err != nil {
		return "", err
	}

	i := p.spin.Next(len(p.clients))
	req := p.clients[i].R().SetContext(ctx)
	if params != nil {
		req.SetHeader("Content-Type", transport.ContentTypeForm).SetRawBody([]byte(transport.EncodeForm(params)))
	}

	start := time.Now()
	res, err := req.Custom(transport.JoinURL(p.cfg.BaseURL, path), method)
	if err != nil {
		transport.Trace(p.log, method, path, start, 0, err)
		return "", transport.Failed(method, path, err)
	}

	resp := newFiberResp(res)
	body, err := transport.Check(method, path, resp)
	transport.Trace(p.log, method, path, start, resp.StatusCode(), err)
	return body, err
}

func (p *ClientPool) Close() {
	p.closeOnce.Do(func() {
		for _, b := range p.bases {
			b.CloseIdleConnections()
		}
	})
}
