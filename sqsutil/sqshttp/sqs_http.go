package sqshttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osmosis-labs/sqs-verifier/domain"
)

// RequestOption mutates an outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithQueryParams sets the given query parameters on the request.
func WithQueryParams(params map[string]string) RequestOption {
	return func(req *http.Request) {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}
}

// WithHeader sets the given header on the request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Get makes a GET request to the given URL and endpoint and unmarshals the
// response body into the given type. A non-2xx response surfaces as
// domain.UnexpectedStatusCodeError with the body verbatim. No retries.
func Get[K any](ctx context.Context, client *http.Client, url, endpoint string, opts ...RequestOption) (*K, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+endpoint, nil)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(req)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.UnexpectedStatusCodeError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// Unmarshal the response body
	var unmarshalledData K
	if err := json.Unmarshal(body, &unmarshalledData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	return &unmarshalledData, nil
}
