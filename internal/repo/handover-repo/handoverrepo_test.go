package handoverrepo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
	"github.com/GlebRadaev/frontdesk/pkg/clients"
)

func newRepo(t *testing.T, h http.HandlerFunc) *Repository {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := erp.New(srv.URL, clients.NewHTTPClient(nil), erp.WithTimeouts(time.Second, time.Second))
	return New(client)
}

func TestRepository_ListSubmitted(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resource/Payment Handover", r.URL.Path)
		assert.Equal(t, `[["docstatus","=",1]]`, r.URL.Query().Get("filters"))
		_, _ = w.Write([]byte(`{"data":[
			{"name":"PH-0002","payment_entry":"ACC-PAY-2024-00002","received_by":"coach@gym.sr",
			 "transferred_to":"treasurer@gym.sr","transferred_at":"2024-05-11 09:00:00","status":"Transferred","docstatus":1},
			{"name":"PH-0001","payment_entry":"ACC-PAY-2024-00001","status":"Pending","docstatus":1}
		]}`))
	})

	got, err := repo.ListSubmitted(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.HandoverTransferred, got[0].Status)
	assert.Equal(t, time.Date(2024, 5, 11, 9, 0, 0, 0, time.Local), got[0].TransferredAt)
	assert.Equal(t, domain.HandoverPending, got[1].Status)
}

func TestRepository_FindByPayment(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("limit_page_length"))
		if q.Get("filters") == `[["docstatus","=",1],["payment_entry","=","ACC-PAY-2024-00002"]]` {
			_, _ = w.Write([]byte(`{"data":[{"name":"PH-0002","payment_entry":"ACC-PAY-2024-00002","status":"Transferred","docstatus":1}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	rec, err := repo.FindByPayment(context.Background(), "ACC-PAY-2024-00002")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "PH-0002", rec.ID)

	none, err := repo.FindByPayment(context.Background(), "ACC-PAY-2024-00003")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRepository_CreateAndSubmit(t *testing.T) {
	var inserted map[string]any
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/method/frappe.client.insert":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			inserted = body["doc"]
			_, _ = w.Write([]byte(`{"message":{"name":"PH-0003","docstatus":0}}`))
		case "/api/resource/Payment Handover/PH-0003":
			_, _ = w.Write([]byte(`{"data":{"name":"PH-0003","doctype":"Payment Handover","docstatus":0}}`))
		case "/api/method/frappe.client.submit":
			_, _ = w.Write([]byte(`{"message":{"name":"PH-0003","payment_entry":"ACC-PAY-2024-00003",
				"transferred_to":"treasurer@gym.sr","status":"Transferred","docstatus":1}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	name, err := repo.CreateDraft(ctx, &domain.HandoverRecord{
		PaymentID:     "ACC-PAY-2024-00003",
		ReceivedBy:    "coach@gym.sr",
		ReceivedAt:    time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local),
		TransferredTo: "treasurer@gym.sr",
		TransferredAt: time.Date(2024, 5, 11, 9, 0, 0, 0, time.Local),
		Notes:         "end of day",
	})
	require.NoError(t, err)
	assert.Equal(t, "PH-0003", name)
	assert.Equal(t, "Payment Handover", inserted["doctype"])
	assert.Equal(t, "2024-05-10 14:30:00", inserted["received_at"])
	assert.Equal(t, "Transferred", inserted["status"])
	assert.Equal(t, "end of day", inserted["handover_notes"])

	rec, err := repo.SubmitDraft(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, domain.HandoverTransferred, rec.Status)
	assert.Equal(t, "treasurer@gym.sr", rec.TransferredTo)

	assert.NoError(t, repo.DeleteDraft(ctx, "PH-0404"))
}
