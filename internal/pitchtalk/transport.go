package pitchtalk

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"github.com/osse101/PitchBot_Go/internal/domain"
)

// Proxy schemes understood by NewHTTPClient
const (
	SchemeHTTP    = "http"
	SchemeHTTPS   = "https"
	SchemeSOCKS5  = "socks5"
	SchemeSOCKS5H = "socks5h"
)

// NewHTTPClient builds an HTTP client with the given timeout, optionally
// routed through an http(s) or socks5 proxy.
func NewHTTPClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}

		switch u.Scheme {
		case SchemeHTTP, SchemeHTTPS:
			transport.Proxy = http.ProxyURL(u)
		case SchemeSOCKS5, SchemeSOCKS5H:
			dialer, err := proxy.FromURL(u, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("failed to create socks5 dialer: %w", err)
			}
			transport.Proxy = nil
			transport.DialContext = contextDialer(dialer)
		default:
			return nil, fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return d.Dial(network, addr)
	}
}

// Factory builds one API client per identity so each account can use its own proxy
type Factory struct {
	BaseURL      string
	Origin       string
	Timeout      time.Duration
	DefaultProxy string
}

// ForIdentity returns a client for identity, preferring its own proxy over the default one
func (f Factory) ForIdentity(identity domain.Identity) (Client, error) {
	proxyURL := identity.Proxy
	if proxyURL == "" {
		proxyURL = f.DefaultProxy
	}

	httpClient, err := NewHTTPClient(f.Timeout, proxyURL)
	if err != nil {
		return nil, fmt.Errorf("identity %s: %w", identity.Name, err)
	}
	return NewAPIClient(f.BaseURL, f.Origin, httpClient), nil
}
