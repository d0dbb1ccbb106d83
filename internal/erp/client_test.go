package erp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type customer struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, clients.NewHTTPClient(AuthHeaders("key", "secret")), WithTimeouts(time.Second, time.Second))
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resource/Customer/John%20Doe", r.URL.EscapedPath())
		assert.Equal(t, "token key:secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"name":"John Doe","customer_name":"John Doe"}}`))
	})

	var c customer
	require.NoError(t, client.Get(context.Background(), "Customer", "John Doe", &c))
	assert.Equal(t, "John Doe", c.CustomerName)
}

func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/resource/Family Group", r.URL.Path)
		assert.Equal(t, `["name"]`, q.Get("fields"))
		assert.Equal(t, `[["status","=","Active"]]`, q.Get("filters"))
		assert.Equal(t, "creation desc", q.Get("order_by"))
		assert.Equal(t, "0", q.Get("limit_page_length"))
		_, _ = w.Write([]byte(`{"data":[{"name":"FG-1"},{"name":"FG-2"}]}`))
	})

	var rows []customer
	err := client.List(context.Background(), "Family Group", ListQuery{
		Fields:  []string{"name"},
		Filters: []Filter{Eq("status", "Active")},
		OrderBy: "creation desc",
	}, &rows)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestClient_InsertSubmitDelete(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/method/frappe.client.insert", "/api/method/frappe.client.submit":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "Payment Entry", body["doc"]["doctype"])
			_, _ = w.Write([]byte(`{"message":{"name":"ACC-PAY-2024-00001","docstatus":0}}`))
		default:
			w.WriteHeader(http.StatusAccepted)
		}
	})

	doc := map[string]any{"doctype": "Payment Entry"}
	var created map[string]any
	require.NoError(t, client.Insert(context.Background(), doc, &created))
	assert.Equal(t, "ACC-PAY-2024-00001", created["name"])
	require.NoError(t, client.Submit(context.Background(), doc, nil))
	require.NoError(t, client.Delete(context.Background(), "Payment Entry", "ACC-PAY-2024-00001"))

	assert.Equal(t, []string{
		"POST /api/method/frappe.client.insert",
		"POST /api/method/frappe.client.submit",
		"DELETE /api/resource/Payment Entry/ACC-PAY-2024-00001",
	}, calls)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		target   error
		rejected bool
	}{
		{name: "not found", status: http.StatusNotFound, target: domain.ErrNotFound},
		{name: "does not exist exception", status: http.StatusExpectationFailed, body: `{"exc_type":"DoesNotExistError"}`, target: domain.ErrNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, target: domain.ErrUpstreamUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, target: domain.ErrUpstreamUnavailable},
		{name: "validation error", status: http.StatusExpectationFailed, body: `{"exc_type":"ValidationError","_server_messages":"[\"{\\\"message\\\": \\\"Allocated amount too high\\\"}\"]"}`, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			err := client.Get(context.Background(), "Payment Entry", "X", &map[string]any{})
			require.Error(t, err)
			if tt.rejected {
				var rej *RejectedError
				require.ErrorAs(t, err, &rej)
				assert.Equal(t, "ValidationError", rej.ExcType)
				assert.Equal(t, "Allocated amount too high", rej.Exception)
				return
			}
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)

	var observed []int
	client := New("http://erp", httpClient,
		WithTimeouts(time.Second, time.Second),
		WithObserver(func(op string, status int, _ time.Duration) { observed = append(observed, status) }),
	)

	httpClient.EXPECT().Get(gomock.Any(), "http://erp/api/method/ping", gomock.Any()).
		Return(0, nil, context.DeadlineExceeded)
	err := client.Call(context.Background(), "ping", nil, nil)
	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)

	httpClient.EXPECT().Send(gomock.Any(), http.MethodDelete, "http://erp/api/resource/Payment%20Entry/X", nil).
		Return(0, nil, errors.New("connection refused"))
	err = client.Delete(context.Background(), "Payment Entry", "X")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	assert.Equal(t, []int{0, 0}, observed)
}

func TestClient_ReadTimeoutApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New("http://erp", httpClient, WithTimeouts(50*time.Millisecond, time.Second))

	httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ any) (int, []byte, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return http.StatusOK, []byte(`{"data":null}`), nil
		})

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "Customer", "A", &out))
	assert.Nil(t, out)
}

func TestClient_SubmitDoc(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/resource/Payment Handover/PH-0001":
			_, _ = w.Write([]byte(`{"data":{"doctype":"Payment Handover","name":"PH-0001","docstatus":0,"modified":"2024-05-20 10:00:00"}}`))
		case "/api/method/frappe.client.submit":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "PH-0001", body["doc"]["name"])
			assert.Equal(t, "2024-05-20 10:00:00", body["doc"]["modified"])
			_, _ = w.Write([]byte(`{"message":{"name":"PH-0001","docstatus":1}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	var out struct {
		Name      string `json:"name"`
		Docstatus int    `json:"docstatus"`
	}
	require.NoError(t, client.SubmitDoc(context.Background(), "Payment Handover", "PH-0001", &out))
	assert.Equal(t, 1, out.Docstatus)

	err := client.SubmitDoc(context.Background(), "Payment Handover", "PH-0404", &out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
