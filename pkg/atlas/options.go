package atlas

import (
	"net/http"
	"time"
)

type clientOption func(*Client)

func WithBasicAuth(user, key string) clientOption {
	return func(c *Client) {
		c.username = user
		c.apiKey = key
	}
}

func WithTimeout(timeout time.Duration) clientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) clientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}
