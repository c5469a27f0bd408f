package fiberpool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"jenkinsclient/pkg/config"
)

func newTLSServer(h http.Handler) *httptest.Server {
	return httptest.NewTLSServer(h)
}

func TestFiberPool_RequestAsync_ReturnsBeforeResponse(t *testing.T) {
	release := make(chan struct{})
	var served atomic.Int64
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		served.Add(1)
		_, _ = w.Write([]byte("Finished: SUCCESS"))
	})
	srv := newTLSServer(h)
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.BaseURL = srv.URL
	p := New(cfg)
	defer p.Close()

	ch := p.RequestAsync(context.Background(), "GET", "job/a/1/consoleText", nil)
	select {
	case r := <-ch:
		t.Fatalf("result before the server answered: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case r := <-ch:
		if r.Err != nil || r.Body != "Finished: SUCCESS" {
			t.Fatalf("result = %+v", r)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out")
	}
	if served.Load() != 1 {
		t.Fatalf("served = %d", served.Load())
	}
}

func TestFiberPool_ClientTimeout(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := newTLSServer(h)
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RequestTimeout = 50 * time.Millisecond

	p := New(cfg)
	defer p.Close()

	if _, err := p.Request(context.Background(), "GET", "slow", nil); err == nil {
		t.Fatalf("expected client timeout error, got nil")
	}
}

func TestFiberPool_Close_Idempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	p := New(cfg)
	p.Close()
	p.Close()
}

func TestFiberPool_DefaultSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Size = 0
	p := New(cfg)
	defer p.Close()

	if len(p.clients) != config.DefaultConfig().Size {
		t.Fatalf("clients = %d", len(p.clients))
	}
}
