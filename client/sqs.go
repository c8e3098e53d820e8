package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/sqsutil/sqshttp"
)

const (
	quoteEndpoint             = "/router/quote"
	routesEndpoint            = "/router/routes"
	customDirectQuoteEndpoint = "/router/custom-direct-quote"
	configEndpoint            = "/config"
	tokensMetadataEndpoint    = "/tokens/metadata"

	apiKeyHeader = "x-api-key"
)

// SQSClient queries a running sidecar query server over HTTP.
type SQSClient struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

// NewSQSClient returns a client for the SQS instance at the given URL.
// The API key is optional and attached as a header when non-empty.
func NewSQSClient(url, apiKey string) *SQSClient {
	return &SQSClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		url:    strings.TrimSuffix(url, "/"),
		apiKey: apiKey,
	}
}

func (c *SQSClient) requestOptions(params map[string]string) []sqshttp.RequestOption {
	opts := []sqshttp.RequestOption{sqshttp.WithQueryParams(params)}
	if c.apiKey != "" {
		opts = append(opts, sqshttp.WithHeader(apiKeyHeader, c.apiKey))
	}
	return opts
}

// GetConfig returns the router configuration of the SQS instance.
func (c *SQSClient) GetConfig(ctx context.Context) (*domain.SQSConfig, error) {
	return sqshttp.Get[domain.SQSConfig](ctx, c.httpClient, c.url, configEndpoint, c.requestOptions(nil)...)
}

// GetQuote requests an exact amount in quote over the router's split routes.
// Denoms are chain denoms, not human readable ones.
func (c *SQSClient) GetQuote(ctx context.Context, tokenIn sdk.Coin, tokenOutDenom string, singleRoute bool) (*domain.QuoteExactAmountInResponse, error) {
	params := map[string]string{
		"tokenIn":       tokenIn.String(),
		"tokenOutDenom": tokenOutDenom,
		"humanDenoms":   "false",
	}
	if singleRoute {
		params["singleRoute"] = "true"
	}

	return sqshttp.Get[domain.QuoteExactAmountInResponse](ctx, c.httpClient, c.url, quoteEndpoint, c.requestOptions(params)...)
}

// GetExactAmountOutQuote requests an exact amount out quote where the router
// solves for the required input amount.
func (c *SQSClient) GetExactAmountOutQuote(ctx context.Context, tokenOut sdk.Coin, tokenInDenom string) (*domain.QuoteExactAmountOutResponse, error) {
	params := map[string]string{
		"tokenOut":     tokenOut.String(),
		"tokenInDenom": tokenInDenom,
		"humanDenoms":  "false",
	}

	return sqshttp.Get[domain.QuoteExactAmountOutResponse](ctx, c.httpClient, c.url, quoteEndpoint, c.requestOptions(params)...)
}

// GetCustomDirectQuote requests an exact amount in quote forced through the
// given pools. Pool IDs and the intermediate token out denoms are parallel,
// one entry per hop.
func (c *SQSClient) GetCustomDirectQuote(ctx context.Context, tokenIn sdk.Coin, tokenOutDenoms []string, poolIDs []uint64) (*domain.QuoteExactAmountInResponse, error) {
	poolIDStrs := make([]string, 0, len(poolIDs))
	for _, poolID := range poolIDs {
		poolIDStrs = append(poolIDStrs, strconv.FormatUint(poolID, 10))
	}

	params := map[string]string{
		"tokenIn":       tokenIn.String(),
		"tokenOutDenom": strings.Join(tokenOutDenoms, ","),
		"poolID":        strings.Join(poolIDStrs, ","),
	}

	return sqshttp.Get[domain.QuoteExactAmountInResponse](ctx, c.httpClient, c.url, customDirectQuoteEndpoint, c.requestOptions(params)...)
}

// GetCandidateRoutes returns the candidate routes between the given denom pair
// before any pricing or splitting is applied.
func (c *SQSClient) GetCandidateRoutes(ctx context.Context, tokenInDenom, tokenOutDenom string) (*domain.CandidateRoutes, error) {
	params := map[string]string{
		"tokenIn":       tokenInDenom,
		"tokenOutDenom": tokenOutDenom,
		"humanDenoms":   "false",
	}

	return sqshttp.Get[domain.CandidateRoutes](ctx, c.httpClient, c.url, routesEndpoint, c.requestOptions(params)...)
}

// GetTokensMetadata returns the token metadata known to the SQS instance,
// keyed by chain denom.
func (c *SQSClient) GetTokensMetadata(ctx context.Context) (map[string]domain.Token, error) {
	tokens, err := sqshttp.Get[map[string]domain.Token](ctx, c.httpClient, c.url, tokensMetadataEndpoint, c.requestOptions(nil)...)
	if err != nil {
		return nil, err
	}
	return *tokens, nil
}
