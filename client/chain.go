package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
	"github.com/osmosis-labs/sqs-verifier/sqsutil/sqshttp"
)

const takerFeeEndpoint = "/osmosis/poolmanager/v1beta1/trading_pair_takerfee"

type takerFeeResponse struct {
	TakerFee osmomath.Dec `json:"taker_fee"`
}

type denomPair struct {
	Denom0 string
	Denom1 string
}

// LCDClient reads taker fees from a chain node's LCD endpoint. Responses are
// cached per denom pair since taker fee overrides change through governance
// and are stable within a verification run.
type LCDClient struct {
	httpClient *http.Client
	url        string

	mu    sync.Mutex
	cache map[denomPair]osmomath.Dec
}

var _ mvc.FeeSource = &LCDClient{}

// NewLCDClient returns a taker fee source backed by the LCD node at the given URL.
func NewLCDClient(url string) *LCDClient {
	return &LCDClient{
		httpClient: &http.Client{
			Timeout: time.Second * 15,
		},
		url:   url,
		cache: map[denomPair]osmomath.Dec{},
	}
}

// GetTradingPairTakerFee implements mvc.FeeSource. The pair is queried in
// lexicographic denom order, matching how the chain keys taker fee overrides.
func (c *LCDClient) GetTradingPairTakerFee(denom0, denom1 string) (osmomath.Dec, error) {
	if denom0 > denom1 {
		denom0, denom1 = denom1, denom0
	}
	pair := denomPair{Denom0: denom0, Denom1: denom1}

	c.mu.Lock()
	cached, ok := c.cache[pair]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	params := map[string]string{
		"denom_0": denom0,
		"denom_1": denom1,
	}

	resp, err := sqshttp.Get[takerFeeResponse](context.Background(), c.httpClient, c.url, takerFeeEndpoint, sqshttp.WithQueryParams(params))
	if err != nil {
		return osmomath.Dec{}, domain.TakerFeeNotFoundForDenomPairError{Denom0: denom0, Denom1: denom1}
	}

	c.mu.Lock()
	c.cache[pair] = resp.TakerFee
	c.mu.Unlock()

	return resp.TakerFee, nil
}
