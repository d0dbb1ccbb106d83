// Package erp is the gateway to the ERPNext (Frappe) REST API. It owns transport, timeouts,
// envelope decoding and error classification; it has no business logic.
package erp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/clients"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 15 * time.Second

	methodInsert = "frappe.client.insert"
	methodSubmit = "frappe.client.submit"
)

// Observer receives the outcome of every ERP round trip. status is 0 on transport failure.
type Observer func(op string, status int, elapsed time.Duration)

type Client struct {
	http         clients.HTTPClientI
	baseURL      string
	readTimeout  time.Duration
	writeTimeout time.Duration
	observe      Observer
}

type Option func(*Client)

func WithTimeouts(read, write time.Duration) Option {
	return func(c *Client) {
		if read > 0 {
			c.readTimeout = read
		}
		if write > 0 {
			c.writeTimeout = write
		}
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observe = o
		}
	}
}

func New(baseURL string, http clients.HTTPClientI, opts ...Option) *Client {
	c := &Client{
		http:         http,
		baseURL:      baseURL,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
		observe:      func(string, int, time.Duration) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthHeaders returns the token header ERPNext expects for API key authentication.
func AuthHeaders(apiKey, apiSecret string) map[string]string {
	return map[string]string{"Authorization": fmt.Sprintf("token %s:%s", apiKey, apiSecret)}
}

// Filter is one Frappe filter triple: field, operator, value.
type Filter []any

func Eq(field string, value any) Filter {
	return Filter{field, "=", value}
}

func Where(field, op string, value any) Filter {
	return Filter{field, op, value}
}

type ListQuery struct {
	Fields  []string
	Filters []Filter
	OrderBy string
	// Limit of 0 asks for every matching row.
	Limit int
}

func (q ListQuery) values() (url.Values, error) {
	v := url.Values{}
	fields := q.Fields
	if len(fields) == 0 {
		fields = []string{"*"}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	v.Set("fields", string(raw))
	if len(q.Filters) > 0 {
		raw, err := json.Marshal(q.Filters)
		if err != nil {
			return nil, err
		}
		v.Set("filters", string(raw))
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	v.Set("limit_page_length", strconv.Itoa(q.Limit))
	return v, nil
}

// Get reads one document: GET /api/resource/{doctype}/{name}.
func (c *Client) Get(ctx context.Context, doctype, name string, out any) error {
	return c.do(ctx, "get "+doctype, http.MethodGet, resourcePath(doctype, name), nil, nil, "data", out)
}

// List reads documents matching q: GET /api/resource/{doctype}.
func (c *Client) List(ctx context.Context, doctype string, q ListQuery, out any) error {
	params, err := q.values()
	if err != nil {
		return fmt.Errorf("encode list query: %w", err)
	}
	return c.do(ctx, "list "+doctype, http.MethodGet, resourcePath(doctype, ""), params, nil, "data", out)
}

// Call runs a whitelisted server method: GET /api/method/{method}.
func (c *Client) Call(ctx context.Context, method string, params url.Values, out any) error {
	return c.do(ctx, method, http.MethodGet, "/api/method/"+method, params, nil, "message", out)
}

// Insert creates a draft document from doc, which must carry its "doctype".
func (c *Client) Insert(ctx context.Context, doc any, out any) error {
	return c.do(ctx, methodInsert, http.MethodPost, "/api/method/"+methodInsert, nil, map[string]any{"doc": doc}, "message", out)
}

// Submit finalizes a draft document. doc must be the full document as returned by Insert or Get.
func (c *Client) Submit(ctx context.Context, doc any, out any) error {
	return c.do(ctx, methodSubmit, http.MethodPost, "/api/method/"+methodSubmit, nil, map[string]any{"doc": doc}, "message", out)
}

// Delete removes a document: DELETE /api/resource/{doctype}/{name}.
func (c *Client) Delete(ctx context.Context, doctype, name string) error {
	return c.do(ctx, "delete "+doctype, http.MethodDelete, resourcePath(doctype, name), nil, nil, "", nil)
}

func resourcePath(doctype, name string) string {
	p := "/api/resource/" + url.PathEscape(doctype)
	if name != "" {
		p += "/" + url.PathEscape(name)
	}
	return p
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, key string, out any) error {
	timeout := c.readTimeout
	if method != http.MethodGet {
		timeout = c.writeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	var (
		status int
		resp   []byte
		err    error
	)
	if method == http.MethodGet {
		status, resp, err = c.http.Get(ctx, c.baseURL+path, query)
	} else {
		status, resp, err = c.http.Send(ctx, method, c.baseURL+path, body)
	}
	c.observe(op, status, time.Since(start))

	if err != nil {
		return transportError(ctx, op, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return statusError(op, status, resp)
	}
	if out == nil || key == "" {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp, &envelope); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", op, err)
	}
	raw, ok := envelope[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", op, key, err)
	}
	return nil
}

func transportError(ctx context.Context, op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstreamTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstreamTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstreamUnavailable, err)
	}
}

// RejectedError is a non-2xx answer that is neither "not found" nor a gateway outage,
// typically a Frappe validation or permission exception.
type RejectedError struct {
	Op        string
	Status    int
	ExcType   string
	Exception string
}

func (e *RejectedError) Error() string {
	msg := e.ExcType
	if e.Exception != "" {
		msg = e.Exception
	}
	return fmt.Sprintf("%s: erp rejected request with status %d: %s", e.Op, e.Status, msg)
}

type frappeError struct {
	ExcType        string `json:"exc_type"`
	Exception      string `json:"exception"`
	ServerMessages string `json:"_server_messages"`
}

func statusError(op string, status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w: status %d", op, domain.ErrUpstreamUnavailable, status)
	}

	var fe frappeError
	_ = json.Unmarshal(body, &fe)
	if fe.ExcType == "DoesNotExistError" {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	exc := fe.Exception
	if exc == "" {
		exc = serverMessage(fe.ServerMessages)
	}
	return &RejectedError{Op: op, Status: status, ExcType: fe.ExcType, Exception: exc}
}

// serverMessage extracts the first human message from Frappe's doubly encoded _server_messages.
func serverMessage(raw string) string {
	if raw == "" {
		return ""
	}
	var outer []string
	if err := json.Unmarshal([]byte(raw), &outer); err != nil || len(outer) == 0 {
		return ""
	}
	var inner struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(outer[0]), &inner); err != nil {
		return outer[0]
	}
	return inner.Message
}

// SubmitDoc reloads a draft by name and submits the full document, as Frappe requires.
func (c *Client) SubmitDoc(ctx context.Context, doctype, name string, out any) error {
	var doc map[string]any
	if err := c.Get(ctx, doctype, name, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("submit %s %s: %w", doctype, name, domain.ErrNotFound)
	}
	return c.Submit(ctx, doc, out)
}

// Gateway is the subset of the ERP client the repositories depend on.
type Gateway interface {
	Get(ctx context.Context, doctype, name string, out any) error
	List(ctx context.Context, doctype string, q ListQuery, out any) error
	Call(ctx context.Context, method string, params url.Values, out any) error
	Insert(ctx context.Context, doc any, out any) error
	SubmitDoc(ctx context.Context, doctype, name string, out any) error
	Delete(ctx context.Context, doctype, name string) error
}

var _ Gateway = (*Client)(nil)
