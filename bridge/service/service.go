// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/correlate"
	"github.com/vortexbridge/bridge-core/bridge/estimate"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/bridge/submit"
	"github.com/vortexbridge/bridge-core/config"
	"github.com/vortexbridge/bridge-core/fees"
)

// AllowanceReader reads the bridging program's current spending allowance for
// one token on the paying chain.
type AllowanceReader interface {
	Allowance(ctx context.Context, token config.Token) (*big.Int, error)
}

// Params identify one bridging intent. Everything else the flow needs is read
// from fresh chain state per call, so a retried intent re-plans instead of
// replaying stale steps.
type Params struct {
	TokenAddress string
	Amount       *big.Int
	Destination  string

	PayDestinationFeeNow bool
	PayPriorityFeeNow    bool
}

// Service drives the full flow of one transfer direction: resolve chain
// state, plan, then estimate or submit.
type Service struct {
	direction bridge.Direction
	sender    string

	tokens    *config.TokenStore
	allowance AllowanceReader
	fees      *fees.Resolver
	planner   *plan.Planner
	estimator *estimate.Estimator
	submitter *submit.Submitter
	source    correlate.EventSource
}

func New(
	direction bridge.Direction,
	sender string,
	tokens *config.TokenStore,
	allowance AllowanceReader,
	feeResolver *fees.Resolver,
	planner *plan.Planner,
	estimator *estimate.Estimator,
	submitter *submit.Submitter,
	source correlate.EventSource,
) *Service {
	return &Service{
		direction: direction,
		sender:    sender,
		tokens:    tokens,
		allowance: allowance,
		fees:      feeResolver,
		planner:   planner,
		estimator: estimator,
		submitter: submitter,
		source:    source,
	}
}

func (s *Service) Direction() bridge.Direction {
	return s.direction
}

// EstimateCost plans the transfer against current chain state and prices the
// resulting steps. Estimation never prompts for signatures.
func (s *Service) EstimateCost(ctx context.Context, params Params) (*estimate.CostEstimate, error) {
	p, _, err := s.buildPlan(ctx, params, true)
	if err != nil {
		return nil, err
	}
	return s.estimator.Estimate(ctx, p)
}

// Bridge runs one submission to a terminal outcome. A returned error means
// planning failed and nothing was submitted.
func (s *Service) Bridge(ctx context.Context, params Params) (submit.Outcome, error) {
	if s.submitter == nil {
		return submit.Outcome{}, fmt.Errorf("submission not configured for direction %s", s.direction)
	}

	p, token, err := s.buildPlan(ctx, params, false)
	if err != nil {
		return submit.Outcome{}, err
	}

	log.Info().
		Str("direction", s.direction.String()).
		Str("token", token.Symbol).
		Str("amount", params.Amount.String()).
		Int("steps", len(p)).
		Msg("Submitting bridging plan")

	correlator := correlate.NewCorrelator(s.source, correlate.Match{
		Token:    token.Address,
		Amount:   params.Amount,
		Sender:   s.sender,
		Receiver: params.Destination,
	})
	return s.submitter.Submit(ctx, p, correlator), nil
}

func (s *Service) buildPlan(ctx context.Context, params Params, forEstimate bool) (plan.Plan, config.Token, error) {
	payingChain := s.direction.PayingChain()

	token, err := s.tokens.ByAddress(payingChain, params.TokenAddress)
	if err != nil {
		return nil, config.Token{}, err
	}

	allowance, err := s.allowance.Allowance(ctx, token)
	if err != nil {
		return nil, token, fmt.Errorf("reading allowance: %w", err)
	}
	policy, err := s.fees.Resolve(ctx, payingChain)
	if err != nil {
		return nil, token, err
	}

	p, err := s.planner.Plan(ctx, plan.Request{
		Token:                token,
		Amount:               params.Amount,
		Destination:          params.Destination,
		Allowance:            allowance,
		Fees:                 policy,
		PayDestinationFeeNow: params.PayDestinationFeeNow,
		PayPriorityFeeNow:    params.PayPriorityFeeNow,
		ForEstimate:          forEstimate,
	})
	if err != nil {
		return nil, token, err
	}
	return p, token, nil
}
