package aws

import (
	"net/http"
	"time"
)

type ProviderOption func(*Provider)

func WithURL(url string) ProviderOption {
	return func(p *Provider) {
		p.url = url
	}
}

// WithFile reads the ip ranges document from disk instead of the network.
func WithFile(filename string) ProviderOption {
	return func(p *Provider) {
		p.filename = filename
	}
}

func WithTimeout(timeout time.Duration) ProviderOption {
	return func(p *Provider) {
		p.timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) ProviderOption {
	return func(p *Provider) {
		p.client = client
	}
}
