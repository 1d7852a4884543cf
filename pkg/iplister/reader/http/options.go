package http

import "net/http"

type httpOption func(*HTTP)

func WithClient(client *http.Client) httpOption {
	return func(h *HTTP) {
		h.client = client
	}
}
