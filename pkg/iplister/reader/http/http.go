package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type HTTP struct {
	url    string
	client *http.Client
}

func New(url string, opts ...httpOption) *HTTP {
	h := &HTTP{
		url:    url,
		client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *HTTP) Data(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", h.url, resp.Status)
	}

	return resp.Body, nil
}
