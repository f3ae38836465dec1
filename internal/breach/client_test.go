package breach

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Goofygiraffe06/breachcheck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var alice = models.CheckRequest{Name: "Alice", Phone: "+15551234567", Password: "hunter2"}

type backend struct {
	*httptest.Server
	mu     sync.Mutex
	reqs   []*http.Request
	bodies [][]byte
}

func (b *backend) received() ([]*http.Request, [][]byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reqs, b.bodies
}

func newBackend(t *testing.T, status int, body string) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.reqs = append(b.reqs, r)
		b.bodies = append(b.bodies, raw)
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(b.Close)
	return b
}

func TestCheck_PostsJSON(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"breach_count": 0, "message": "Check complete. Status returned.", "status": "Safe"}`)
	c := NewClient(srv.URL+"/prod/check", WithLogger(zaptest.NewLogger(t)))

	resp, err := c.Check(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.BreachCount)
	assert.Equal(t, "Safe", resp.Status)

	reqs, bodies := srv.received()
	require.Len(t, reqs, 1)
	r := reqs[0]
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/prod/check", r.URL.Path)
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(bodies[0], &sent))
	assert.Equal(t, map[string]interface{}{
		"name":     "Alice",
		"phone":    "+15551234567",
		"password": "hunter2",
	}, sent)
}

func TestCheck_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCount  int
		wantAPI    *APIError
		wantTransp bool
	}{
		{name: "breached", status: http.StatusOK, body: `{"breach_count": 3}`, wantCount: 3},
		{name: "safe without message", status: http.StatusOK, body: `{"breach_count": 0}`},
		{name: "missing breach_count", status: http.StatusOK, body: `{}`},
		{name: "created is success", status: http.StatusCreated, body: `{"breach_count": 7}`, wantCount: 7},
		{name: "api error with message", status: http.StatusBadRequest, body: `{"message": "Bad password"}`,
			wantAPI: &APIError{StatusCode: http.StatusBadRequest, Message: "Bad password"}},
		{name: "api error without message", status: http.StatusInternalServerError, body: `{}`,
			wantAPI: &APIError{StatusCode: http.StatusInternalServerError}},
		{name: "api error with non-JSON body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantTransp: true},
		{name: "success with non-JSON body", status: http.StatusOK, body: `not json`, wantTransp: true},
		{name: "success with empty body", status: http.StatusOK, body: ``, wantTransp: true},
		{name: "success with null body", status: http.StatusOK, body: `null`, wantTransp: true},
		{name: "non-numeric breach_count is safe", status: http.StatusOK, body: `{"breach_count": "many"}`},
		{name: "numeric string breach_count", status: http.StatusOK, body: `{"breach_count": "3"}`, wantCount: 3},
		{name: "fractional breach_count rounds up", status: http.StatusOK, body: `{"breach_count": 0.5}`, wantCount: 1},
		{name: "negative breach_count is safe", status: http.StatusOK, body: `{"breach_count": -2}`},
		{name: "success with array body", status: http.StatusOK, body: `[]`},
		{name: "success with scalar body", status: http.StatusOK, body: `5`},
		{name: "numeric message", status: http.StatusInternalServerError, body: `{"message": 42}`,
			wantAPI: &APIError{StatusCode: http.StatusInternalServerError, Message: "42"}},
		{name: "object message", status: http.StatusBadRequest, body: `{"message": {"code": 7}}`,
			wantAPI: &APIError{StatusCode: http.StatusBadRequest, Message: `{"code":7}`}},
		{name: "false message", status: http.StatusBadRequest, body: `{"message": false}`,
			wantAPI: &APIError{StatusCode: http.StatusBadRequest}},
		{name: "api error with string body", status: http.StatusBadRequest, body: `"oops"`,
			wantAPI: &APIError{StatusCode: http.StatusBadRequest}},
		{name: "api error with null body", status: http.StatusBadRequest, body: `null`, wantTransp: true},
		{name: "trailing data", status: http.StatusOK, body: `{"breach_count": 1} x`, wantTransp: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newBackend(t, tc.status, tc.body)
			c := NewClient(srv.URL, WithLogger(zaptest.NewLogger(t)))

			resp, err := c.Check(context.Background(), alice)
			switch {
			case tc.wantTransp:
				var te *TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, "decode response", te.Op)
			case tc.wantAPI != nil:
				var ae *APIError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, tc.wantAPI, ae)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantCount, resp.BreachCount)
			}
		})
	}
}

func TestCheck_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, WithLogger(zaptest.NewLogger(t)))
	_, err := c.Check(context.Background(), alice)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "send request", te.Op)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCheck_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "ftp://example.com/check", "http://", "://bad"} {
		t.Run(endpoint, func(t *testing.T) {
			c := NewClient(endpoint, WithLogger(zaptest.NewLogger(t)))
			_, err := c.Check(context.Background(), alice)

			var te *TransportError
			require.ErrorAs(t, err, &te)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
		})
	}
}

func TestCheck_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, WithLogger(zaptest.NewLogger(t)))
	_, err := c.Check(ctx, alice)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheck_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond), WithLogger(zaptest.NewLogger(t)))
	_, err := c.Check(context.Background(), alice)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "send request", te.Op)
}

func TestAPIError_Message(t *testing.T) {
	assert.Equal(t, "Bad password", (&APIError{Message: "Bad password"}).Error())
	assert.Equal(t, "Unknown error", (&APIError{}).Error())
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://example.com/check", NewClient("https://example.com/check").Endpoint())
}
