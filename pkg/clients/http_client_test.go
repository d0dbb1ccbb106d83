package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "token key:secret", r.Header.Get("Authorization"))
		assert.Equal(t, "Active", r.URL.Query().Get("status"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(map[string]string{"Authorization": "token key:secret"})
	status, body, err := client.Get(context.Background(), srv.URL+"/api/resource/Customer", url.Values{"status": {"Active"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func TestHTTPClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		assert.Equal(t, "Payment Entry", body["doctype"])
		w.WriteHeader(http.StatusExpectationFailed)
		_, _ = w.Write([]byte(`{"exc_type":"ValidationError"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(nil)
	status, body, err := client.Send(context.Background(), http.MethodPost, srv.URL, map[string]any{"doctype": "Payment Entry"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusExpectationFailed, status)
	assert.Contains(t, string(body), "ValidationError")
}

func TestHTTPClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewHTTPClient(nil)
	_, _, err := client.Send(context.Background(), http.MethodDelete, addr, nil)

	assert.Error(t, err)
}
