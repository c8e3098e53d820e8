package main

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/client"
	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
	"github.com/osmosis-labs/sqs-verifier/domain/workerpool"
	"github.com/osmosis-labs/sqs-verifier/log"
	"github.com/osmosis-labs/sqs-verifier/refdata"
	"github.com/osmosis-labs/sqs-verifier/sqsutil/randutil"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

// minExpectedRoutes is the smallest candidate route count accepted for a
// denom pair that is quotable at all.
const minExpectedRoutes = 1

// minExpectedTokensMetadata is the smallest token metadata count accepted
// from the router. It should grow as more assets get listed.
const minExpectedTokensMetadata = 250

// poolPresenceTypes are the CosmWasm pool types the router must expose as a
// direct candidate route for their own denom pairs. Their pairs are also
// quoted regardless of denom liquidity ranking.
var poolPresenceTypes = []domain.PoolType{
	domain.PoolTypeCosmWasmTransmuterV1,
	domain.PoolTypeCosmWasmAstroportPCL,
}

// sweepResult is the outcome of a single verification job.
type sweepResult struct {
	Label   string
	Verdict domain.Verdict
}

// sweep issues quote and candidate route requests against the router for
// every ordered top-liquidity denom pair and verifies the responses.
type sweep struct {
	sqsClient *client.SQSClient
	verifier  mvc.QuoteVerifier
	store     *refdata.Store
	sqsConfig *domain.SQSConfig
	config    domain.VerifierConfig
	logger    log.Logger
}

func newSweep(sqsClient *client.SQSClient, verifier mvc.QuoteVerifier, store *refdata.Store, sqsConfig *domain.SQSConfig, config domain.VerifierConfig, logger log.Logger) *sweep {
	return &sweep{
		sqsClient: sqsClient,
		verifier:  verifier,
		store:     store,
		sqsConfig: sqsConfig,
		config:    config,
		logger:    logger,
	}
}

// Run fans the sweep's verification jobs out to the configured number of
// workers and returns the number of failed jobs.
func (s *sweep) Run(ctx context.Context) int {
	denoms := s.store.TopLiquidityDenoms(s.config.NumTopLiquidityDenoms)
	amounts := randutil.AmountsPerOrder(s.config.RandSeed, s.config.MinAmountOrder, s.config.MaxAmountOrder)

	if len(denoms) == 0 || len(amounts) == 0 {
		s.logger.Error("nothing to verify", zap.Int("num_denoms", len(denoms)), zap.Int("num_amounts", len(amounts)))
		return 1
	}

	s.logger.Info("starting verification sweep",
		zap.Int("num_denoms", len(denoms)),
		zap.Int("num_amounts", len(amounts)),
		zap.Int("max_workers", s.config.MaxWorkers),
	)

	dispatcher := workerpool.NewDispatcher[sweepResult](s.config.MaxWorkers)
	go dispatcher.Run()

	go func() {
		defer close(dispatcher.JobQueue)

		dispatcher.JobQueue <- workerpool.Job[sweepResult]{
			Task: func() (sweepResult, error) {
				return s.verifyTokensMetadata(ctx)
			},
		}

		s.enqueuePoolPresenceJobs(ctx, dispatcher, amounts[0])

		for _, denomIn := range denoms {
			for _, denomOut := range denoms {
				if denomIn == denomOut {
					continue
				}

				s.enqueuePairJobs(ctx, dispatcher, denomIn, denomOut, amounts)
			}
		}
	}()

	numFailed := 0
	for result := range dispatcher.ResultQueue {
		if result.Err != nil {
			numFailed++
			s.logger.Error("verification job errored", zap.String("job", result.Result.Label), zap.Error(result.Err))
			continue
		}

		if !result.Result.Verdict.Pass() {
			numFailed++
			s.logger.Error("verification failed", zap.String("job", result.Result.Label), zap.Stringer("verdict", result.Result.Verdict))
		}
	}

	return numFailed
}

func (s *sweep) enqueuePairJobs(ctx context.Context, dispatcher *workerpool.Dispatcher[sweepResult], denomIn, denomOut string, amounts []osmomath.Int) {
	dispatcher.JobQueue <- workerpool.Job[sweepResult]{
		Task: func() (sweepResult, error) {
			return s.verifyCandidateRoutes(ctx, denomIn, denomOut)
		},
	}

	for _, amount := range amounts {
		amount := amount

		dispatcher.JobQueue <- workerpool.Job[sweepResult]{
			Task: func() (sweepResult, error) {
				return s.verifyExactAmountIn(ctx, sdk.NewCoin(denomIn, amount), denomOut)
			},
		}

		dispatcher.JobQueue <- workerpool.Job[sweepResult]{
			Task: func() (sweepResult, error) {
				return s.verifyExactAmountOut(ctx, sdk.NewCoin(denomOut, amount), denomIn)
			},
		}
	}
}

// verifyExactAmountIn requests an exact amount in quote and verifies it.
// A passing quote is additionally replayed through the custom direct quote
// endpoint over the same pool sequence.
func (s *sweep) verifyExactAmountIn(ctx context.Context, tokenIn sdk.Coin, denomOut string) (sweepResult, error) {
	label := fmt.Sprintf("exact_in %s -> %s", tokenIn, denomOut)

	response, err := s.sqsClient.GetQuote(ctx, tokenIn, denomOut, false)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	request := domain.QuoteRequest{
		Method:       domain.TokenSwapMethodExactIn,
		Specified:    tokenIn,
		CounterDenom: denomOut,
	}

	quote := response.Result()
	verdict := s.verifier.Verify(request, quote)
	if !verdict.Pass() || len(quote.Routes) == 0 {
		return sweepResult{Label: label, Verdict: verdict}, nil
	}

	return s.verifyCustomDirectQuote(ctx, tokenIn, quote)
}

// verifyCustomDirectQuote replays a verified quote's pool sequence through
// the custom direct quote endpoint and verifies the pinned-route response.
func (s *sweep) verifyCustomDirectQuote(ctx context.Context, tokenIn sdk.Coin, quote domain.QuoteResult) (sweepResult, error) {
	poolIDs := quote.PoolIDs()
	tokenOutDenoms := quote.TokenOutDenoms()

	label := fmt.Sprintf("custom_direct %s over pools %s", tokenIn, quote.PoolIDsString())

	response, err := s.sqsClient.GetCustomDirectQuote(ctx, tokenIn, tokenOutDenoms, poolIDs)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	request := domain.QuoteRequest{
		Method:       domain.TokenSwapMethodExactIn,
		Specified:    tokenIn,
		CounterDenom: tokenOutDenoms[len(tokenOutDenoms)-1],
		PoolIDs:      poolIDs,
	}

	return sweepResult{Label: label, Verdict: s.verifier.Verify(request, response.Result())}, nil
}

func (s *sweep) verifyExactAmountOut(ctx context.Context, tokenOut sdk.Coin, denomIn string) (sweepResult, error) {
	label := fmt.Sprintf("exact_out %s <- %s", tokenOut, denomIn)

	response, err := s.sqsClient.GetExactAmountOutQuote(ctx, tokenOut, denomIn)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	request := domain.QuoteRequest{
		Method:       domain.TokenSwapMethodExactOut,
		Specified:    tokenOut,
		CounterDenom: denomIn,
	}

	return sweepResult{Label: label, Verdict: s.verifier.Verify(request, response.Result())}, nil
}

// enqueuePoolPresenceJobs enqueues one presence check and one quote per
// pool of the types in poolPresenceTypes. Their denom pairs rarely rank in
// the top-liquidity set, so the pair sweep alone would not cover them.
func (s *sweep) enqueuePoolPresenceJobs(ctx context.Context, dispatcher *workerpool.Dispatcher[sweepResult], amount osmomath.Int) {
	for _, poolType := range poolPresenceTypes {
		for _, pool := range s.store.PoolsOfType(poolType) {
			pool := pool
			if len(pool.Denoms) < 2 {
				continue
			}

			dispatcher.JobQueue <- workerpool.Job[sweepResult]{
				Task: func() (sweepResult, error) {
					return s.verifyPoolPresence(ctx, pool)
				},
			}

			dispatcher.JobQueue <- workerpool.Job[sweepResult]{
				Task: func() (sweepResult, error) {
					return s.verifyExactAmountIn(ctx, sdk.NewCoin(pool.Denoms[0], amount), pool.Denoms[1])
				},
			}
		}
	}
}

// verifyPoolPresence asserts the pool appears as a direct candidate route
// for its own denom pair, on top of the generic candidate route checks.
func (s *sweep) verifyPoolPresence(ctx context.Context, pool domain.Pool) (sweepResult, error) {
	denomIn, denomOut := pool.Denoms[0], pool.Denoms[1]
	label := fmt.Sprintf("pool_presence %d %s -> %s", pool.ID, denomIn, denomOut)

	routes, err := s.sqsClient.GetCandidateRoutes(ctx, denomIn, denomOut)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	verdict := s.verifier.VerifyCandidateRoutes(denomIn, denomOut, *routes, minExpectedRoutes, s.sqsConfig.Router.MaxRoutes)

	if !usecase.HasRouteWithPools(*routes, []uint64{pool.ID}) {
		verdict.Failf(domain.CheckExpectedPoolMissing, "pool %d does not appear as a direct candidate route for %s -> %s", pool.ID, denomIn, denomOut)
	}

	return sweepResult{Label: label, Verdict: verdict}, nil
}

// verifyTokensMetadata asserts the router serves at least the expected
// number of token metadata entries.
func (s *sweep) verifyTokensMetadata(ctx context.Context) (sweepResult, error) {
	const label = "tokens_metadata"

	tokens, err := s.sqsClient.GetTokensMetadata(ctx)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	var verdict domain.Verdict
	if len(tokens) < minExpectedTokensMetadata {
		verdict.Failf(domain.CheckMissingReferenceData, "token metadata count %d is below the expected minimum %d", len(tokens), minExpectedTokensMetadata)
	}

	return sweepResult{Label: label, Verdict: verdict}, nil
}

func (s *sweep) verifyCandidateRoutes(ctx context.Context, denomIn, denomOut string) (sweepResult, error) {
	label := fmt.Sprintf("candidate_routes %s -> %s", denomIn, denomOut)

	routes, err := s.sqsClient.GetCandidateRoutes(ctx, denomIn, denomOut)
	if err != nil {
		return sweepResult{Label: label}, err
	}

	verdict := s.verifier.VerifyCandidateRoutes(denomIn, denomOut, *routes, minExpectedRoutes, s.sqsConfig.Router.MaxRoutes)

	return sweepResult{Label: label, Verdict: verdict}, nil
}
