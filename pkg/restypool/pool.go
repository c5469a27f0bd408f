// Package restypool is the blocking Jenkins transport: a fixed set of resty
// clients used in round robin. Requests hold the calling goroutine and are
// cancelled through their context.
package restypool

import (
	"context"
	"sync"
	"time"

	"jenkinsclient/pkg/config"
	"jenkinsclient/pkg/endpoint"
	"jenkinsclient/pkg/rr"
	"jenkinsclient/pkg/transport"

	"github.com/apex/log"
	resty "resty.dev/v3"
)

var _ transport.Transport = (*ClientPool)(nil)

type ClientPool struct {
	clients   []*resty.Client
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

	cs := make([]*resty.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		cs = append(cs, newRestyClient(cfg))
	}
	return &ClientPool{clients: cs, cfg: cfg, log: cfg.Log()}
}

func (p *ClientPool) Request(ctx context.Context, method, path string, params []endpoint.Param) (string, error) {
	if err := transport.Validate(method, params); err != nil {
		return "", err
	}

	i := p.spin.Next(len(p.clients))
	req := p.clients[i].R().SetContext(ctx)
	if params != nil {
		req.SetHeader("Content-Type", transport.ContentTypeForm).SetBody(transport.EncodeForm(params))
	}

	start := time.Now()
	res, err := req.Execute(method, transport.JoinURL(p.cfg.BaseURL, path))
	if err != nil {
		transport.Trace(p.log, method, path, start, 0, err)
		return "", transport.Failed(method, path, err)
	}

	body, err := transport.Check(method, path, newRestyResp(res))
	transport.Trace(p.log, method, path, start, res.StatusCode(), err)
	return body, err
}

func (p *ClientPool) Close() {
	p.closeOnce.Do(func() {
		for _, c := range p.clients {
			_ = c.Close()
		}
	})
}
