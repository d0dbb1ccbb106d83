package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const timeout = time.Second * 15

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients
type HTTPClientI interface {
	Get(ctx context.Context, url string, query url.Values) (statusCode int, respBody []byte, err error)
	Send(ctx context.Context, method, url string, body any) (statusCode int, respBody []byte, err error)
}

type HTTPClient struct {
	client *resty.Client
}

// NewHTTPClient builds a client that sends headers with every request. Retries are disabled:
// each call is a single attempt bounded by the caller's context and the client timeout.
func NewHTTPClient(headers map[string]string) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeaders(headers)

	return &HTTPClient{client: client}
}

func (h *HTTPClient) Get(ctx context.Context, url string, query url.Values) (statusCode int, respBody []byte, err error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(url)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode(), resp.Body(), nil
}

func (h *HTTPClient) Send(ctx context.Context, method, url string, body any) (statusCode int, respBody []byte, err error) {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode(), resp.Body(), nil
}
