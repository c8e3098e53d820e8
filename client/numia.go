package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/osmosis-labs/sqs-verifier/refdata"
	"github.com/osmosis-labs/sqs-verifier/sqsutil/sqshttp"
)

const (
	tokensEndpoint = "/tokens/v2/all"
	poolsEndpoint  = "/stream/pool/v1/all"

	poolsPageSize = 100
)

// DataClient fetches token and pool listings from the Numia data API.
type DataClient struct {
	httpClient *http.Client
	url        string
}

// NewDataClient returns a client for the data API at the given URL.
func NewDataClient(url string) *DataClient {
	return &DataClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		url: url,
	}
}

// FetchTokens returns all token listing rows.
func (c *DataClient) FetchTokens(ctx context.Context) ([]refdata.TokenRow, error) {
	tokens, err := sqshttp.Get[[]refdata.TokenRow](ctx, c.httpClient, c.url, tokensEndpoint)
	if err != nil {
		return nil, err
	}
	return *tokens, nil
}

type poolsPage struct {
	Pools      []refdata.PoolRow `json:"pools"`
	Pagination struct {
		NextOffset int `json:"next_offset"`
	} `json:"pagination"`
}

// FetchPools returns all pool listing rows, walking the paginated endpoint
// until the API reports no further offset.
func (c *DataClient) FetchPools(ctx context.Context) ([]refdata.PoolRow, error) {
	var allPools []refdata.PoolRow

	offset := 0
	for {
		params := map[string]string{
			"offset": strconv.Itoa(offset),
			"limit":  strconv.Itoa(poolsPageSize),
		}

		page, err := sqshttp.Get[poolsPage](ctx, c.httpClient, c.url, poolsEndpoint, sqshttp.WithQueryParams(params))
		if err != nil {
			return nil, err
		}

		allPools = append(allPools, page.Pools...)

		if page.Pagination.NextOffset <= 0 {
			break
		}
		offset = page.Pagination.NextOffset
	}

	return allPools, nil
}
