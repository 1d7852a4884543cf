package atlas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	mwerrors "github.com/kanopy-platform/mawaws/pkg/errors"
)

const (
	DefaultAPIURL  = "https://cloud.mongodb.com/api/atlas/v1.0"
	defaultTimeout = time.Minute
)

// Client talks to the Atlas admin API using one set of credentials.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL string, opts ...clientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	var resp groupsResponse
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (c *Client) GetAccessList(ctx context.Context, groupID string) ([]AccessListEntry, error) {
	var resp accessListResponse
	if err := c.do(ctx, http.MethodGet, accessListPath(groupID), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// AppendEntries adds entries to the group's access list without touching existing ones and
// returns the number of entries the access list holds afterwards.
func (c *Client) AppendEntries(ctx context.Context, groupID string, entries []AccessListEntry) (int, error) {
	if entries == nil {
		entries = []AccessListEntry{}
	}

	var resp accessListResponse
	if err := c.do(ctx, http.MethodPost, accessListPath(groupID), entries, &resp); err != nil {
		return 0, err
	}

	return resp.TotalCount, nil
}

func accessListPath(groupID string) string {
	return fmt.Sprintf("/groups/%s/accessList", url.PathEscape(groupID))
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return mwerrors.NewValidationError("encoding request body: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return mwerrors.NewTransportError(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" || c.apiKey != "" {
		req.SetBasicAuth(c.username, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mwerrors.NewTransportError(fmt.Errorf("%s %s: %w", method, endpoint, err))
	}
	defer resp.Body.Close()

	if err := checkResponse(method, endpoint, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return mwerrors.NewTransportError(fmt.Errorf("%s %s: decoding response: %w", method, endpoint, err))
	}

	return nil
}

func checkResponse(method, endpoint string, resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	msg := fmt.Sprintf("%s %s: %s", method, endpoint, resp.Status)

	var apiErr errorResponse
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil && json.Unmarshal(b, &apiErr) == nil {
		if apiErr.ErrorCode != "" {
			msg = fmt.Sprintf("%s: %s", msg, apiErr.ErrorCode)
		}
		if apiErr.Detail != "" {
			msg = fmt.Sprintf("%s: %s", msg, apiErr.Detail)
		}
	}

	err := errors.New(msg)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return mwerrors.NewAuthError(err)
	case http.StatusNotFound:
		return mwerrors.NewNotFoundError(err)
	case http.StatusBadRequest, http.StatusConflict:
		return mwerrors.New(mwerrors.Validation, err)
	default:
		return mwerrors.NewTransportError(err)
	}
}
