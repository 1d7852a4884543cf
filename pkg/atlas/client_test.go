package atlas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mwerrors "github.com/kanopy-platform/mawaws/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const (
	testUser  = "user@example.com"
	testKey   = "4c03c17c-25d8-42fa-a762-bd9c22b5a55a"
	testGroup = "1ab2bf4c3b53b9822afa9364"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	s := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		user, key, ok := req.BasicAuth()
		if !ok || user != testUser || key != testKey {
			res.WriteHeader(http.StatusUnauthorized)
			_, _ = res.Write([]byte(`{"detail":"You are not authorized for this resource.","errorCode":"USER_UNAUTHORIZED","reason":"Unauthorized"}`))
			return
		}
		handler(res, req)
	}))
	t.Cleanup(s.Close)
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New(DefaultAPIURL + "/")
	assert.Equal(t, DefaultAPIURL, c.baseURL)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	c := New(DefaultAPIURL, WithBasicAuth(testUser, testKey), WithTimeout(time.Second))
	assert.Equal(t, testUser, c.username)
	assert.Equal(t, testKey, c.apiKey)
	assert.Equal(t, time.Second, c.httpClient.Timeout)

	hc := &http.Client{}
	c = New(DefaultAPIURL, WithHTTPClient(hc))
	assert.Equal(t, hc, c.httpClient)
}

func TestListGroups(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/groups", req.URL.Path)
		_, _ = res.Write([]byte(`{"results":[{"id":"a1","name":"prod"},{"id":"b2","name":"staging"}],"totalCount":2}`))
	})

	c := New(s.URL, WithBasicAuth(testUser, testKey))
	groups, err := c.ListGroups(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []Group{{ID: "a1", Name: "prod"}, {ID: "b2", Name: "staging"}}, groups)
}

func TestGetAccessList(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/groups/"+testGroup+"/accessList", req.URL.Path)
		_, _ = res.Write([]byte(`{"results":[{"cidrBlock":"1.2.3.0/24","comment":"office","groupId":"` + testGroup + `"}],"totalCount":1}`))
	})

	c := New(s.URL, WithBasicAuth(testUser, testKey))
	entries, err := c.GetAccessList(context.Background(), testGroup)
	assert.NoError(t, err)
	assert.Equal(t, []AccessListEntry{{CIDRBlock: "1.2.3.0/24", Comment: "office"}}, entries)
}

func TestAppendEntries(t *testing.T) {
	t.Parallel()

	sent := []AccessListEntry{
		{CIDRBlock: "5.6.7.0/24", Comment: "AWS EC2 ap-southeast-2"},
		{CIDRBlock: "8.8.8.0/24", Comment: "AWS EC2 ap-southeast-2"},
	}

	s := newTestServer(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var got []AccessListEntry
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, sent, got)

		res.WriteHeader(http.StatusCreated)
		_, _ = res.Write([]byte(`{"results":[],"totalCount":7}`))
	})

	c := New(s.URL, WithBasicAuth(testUser, testKey))
	total, err := c.AppendEntries(context.Background(), testGroup, sent)
	assert.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		testMsg  string
		status   int
		body     string
		user     string
		wantKind mwerrors.Kind
	}{
		{
			testMsg:  "bad credentials",
			user:     "someone@example.com",
			wantKind: mwerrors.Auth,
		},
		{
			testMsg:  "forbidden",
			status:   http.StatusForbidden,
			user:     testUser,
			wantKind: mwerrors.Auth,
		},
		{
			testMsg:  "group not found",
			status:   http.StatusNotFound,
			body:     `{"detail":"No group with ID 1ab2 exists.","errorCode":"GROUP_NOT_FOUND"}`,
			user:     testUser,
			wantKind: mwerrors.NotFound,
		},
		{
			testMsg:  "invalid entry",
			status:   http.StatusBadRequest,
			body:     `{"detail":"IP address 1.2.3 is invalid.","errorCode":"INVALID_IP_ADDRESS_OR_CIDR_NOTATION"}`,
			user:     testUser,
			wantKind: mwerrors.Validation,
		},
		{
			testMsg:  "server error",
			status:   http.StatusBadGateway,
			user:     testUser,
			wantKind: mwerrors.Transport,
		},
		{
			testMsg:  "undecodable body",
			status:   http.StatusOK,
			body:     "<html>",
			user:     testUser,
			wantKind: mwerrors.Transport,
		},
	}

	for _, test := range tests {
		t.Log(test.testMsg)

		status, body := test.status, test.body
		s := newTestServer(t, func(res http.ResponseWriter, req *http.Request) {
			res.WriteHeader(status)
			_, _ = res.Write([]byte(body))
		})

		c := New(s.URL, WithBasicAuth(test.user, testKey))
		_, err := c.GetAccessList(context.Background(), testGroup)
		assert.Error(t, err, test.testMsg)
		assert.Equal(t, test.wantKind, mwerrors.KindOf(err), test.testMsg)
	}
}

func TestErrorDetail(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusNotFound)
		_, _ = res.Write([]byte(`{"detail":"No group with ID nope exists.","errorCode":"GROUP_NOT_FOUND"}`))
	})

	_, err := New(s.URL, WithBasicAuth(testUser, testKey)).GetAccessList(context.Background(), "nope")
	assert.ErrorContains(t, err, "GROUP_NOT_FOUND")
	assert.ErrorContains(t, err, "No group with ID nope exists.")
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	_, err := New(url, WithBasicAuth(testUser, testKey)).ListGroups(context.Background())
	assert.True(t, mwerrors.IsKind(err, mwerrors.Transport))
}
