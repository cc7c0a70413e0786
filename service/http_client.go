package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/flux-image/flux-image/common/config"
	"golang.org/x/net/proxy"
)

var (
	proxyClientLock sync.Mutex
	proxyClients    = make(map[string]*http.Client)
)

func relayTimeout() time.Duration {
	if config.RelayTimeout > 0 {
		return time.Duration(config.RelayTimeout) * time.Second
	}
	return 0
}

// NewProxyHttpClient returns the client used for upstream calls. Without a proxy it is
// http.DefaultClient, or a copy with RELAY_TIMEOUT applied. Proxy clients are cached per URL.
func NewProxyHttpClient(proxyURL string) (*http.Client, error) {
	if proxyURL == "" {
		if timeout := relayTimeout(); timeout > 0 {
			return &http.Client{Timeout: timeout}, nil
		}
		return http.DefaultClient, nil
	}

	proxyClientLock.Lock()
	defer proxyClientLock.Unlock()
	if client, ok := proxyClients[proxyURL]; ok {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}

	var transport *http.Transport
	switch parsedURL.Scheme {
	case "http", "https":
		transport = &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			ForceAttemptHTTP2:   true,
			Proxy:               http.ProxyURL(parsedURL),
		}
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsedURL.User != nil {
			auth = &proxy.Auth{User: parsedURL.User.Username()}
			if password, ok := parsedURL.User.Password(); ok {
				auth.Password = password
			}
		}
		// DNS lookups go through the proxy too, so socks5 behaves like socks5h.
		dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
		if err != nil {
			return nil, err
		}
		transport = &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			ForceAttemptHTTP2:   true,
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s, must be http, https, socks5 or socks5h", parsedURL.Scheme)
	}

	client := &http.Client{Transport: transport, Timeout: relayTimeout()}
	proxyClients[proxyURL] = client
	return client, nil
}
