// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package plan

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/vortexbridge/bridge-core/config"
	"github.com/vortexbridge/bridge-core/fees"
)

var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrAllowanceNotResolved   = errors.New("allowance not resolved")
	ErrFeesNotResolved        = errors.New("fee policy not resolved")
	ErrInvalidDestination     = errors.New("invalid destination address")
	ErrPriorityFeeUnsupported = errors.New("priority fee not supported on paying chain")
)

// PermitSignature is an offline-signed spending approval substituting for an
// on-chain approval transaction.
type PermitSignature struct {
	Deadline *big.Int
	V        uint8
	R        [32]byte
	S        [32]byte
}

// StepBuilder constructs chain-specific steps. Implementations exist per
// paying chain and never submit anything themselves.
type StepBuilder interface {
	// ValidateDestination checks the destination-chain address format.
	ValidateDestination(destination string) error
	// Mint converts native currency into the bridgeable representation.
	Mint(ctx context.Context, token config.Token, amount *big.Int) (Step, error)
	// Approve grants the bridging program at least amount.
	Approve(ctx context.Context, token config.Token, amount *big.Int) (Step, error)
	// Permit obtains an offline-signed approval. It prompts the signer and
	// must never be called while merely estimating.
	Permit(ctx context.Context, token config.Token, amount *big.Int) (*PermitSignature, error)
	// BridgeRequest locks/burns the source token and emits the bridging
	// event. A non-nil permit is folded into the call, saving the approval
	// transaction. setupPending marks plans whose mint/approval has not
	// committed yet; estimating the request against live chain state would
	// revert in that case, so implementations must use a fixed gas limit.
	BridgeRequest(ctx context.Context, token config.Token, amount *big.Int, destination string, processingFee *big.Int, permit *PermitSignature, setupPending bool) (Step, error)
	// PayFee pays the bridging fee for a known nonce. Deferred.
	PayFee(ctx context.Context, fee *big.Int) (Step, error)
	// PayPriorityFee pays the optional priority fee. Deferred; supported on
	// the source chain only.
	PayPriorityFee(ctx context.Context, fee *big.Int) (Step, error)
}

// Request carries one planning pass' inputs. Allowance and Fees are snapshots
// read immediately before planning; a retry re-plans from fresh reads instead
// of replaying a stale plan.
type Request struct {
	Token       config.Token
	Amount      *big.Int
	Destination string

	// Allowance is the current spending allowance of the bridging program,
	// nil until resolved.
	Allowance *big.Int
	// Fees is the resolved fee policy of the paying chain, nil while pending.
	Fees *fees.FeePolicy

	PayDestinationFeeNow bool
	PayPriorityFeeNow    bool

	// ForEstimate suppresses signature prompts: an estimation pass plans the
	// same shape but must not ask the user to sign a permit.
	ForEstimate bool
}

// Planner turns a request into an ordered step list. It performs no chain
// calls; every chain-state input arrives resolved in the request.
type Planner struct {
	builder StepBuilder
}

func NewPlanner(builder StepBuilder) *Planner {
	return &Planner{builder: builder}
}

// Plan builds the ordered step list for one submission. Step order is fixed:
// mint, approval, bridge request, then deferred fee payments. Each later
// step's preconditions depend on the earlier steps having committed.
func (p *Planner) Plan(ctx context.Context, req Request) (Plan, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Allowance == nil {
		return nil, ErrAllowanceNotResolved
	}
	if !req.Fees.Resolved() {
		return nil, ErrFeesNotResolved
	}
	if err := p.builder.ValidateDestination(req.Destination); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDestination, err)
	}

	steps := make(Plan, 0, 5)

	if req.Token.IsNative {
		mint, err := p.builder.Mint(ctx, req.Token, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("planning mint step: %w", err)
		}
		steps = append(steps, mint)
	}

	var permit *PermitSignature
	if req.Amount.Cmp(req.Allowance) > 0 {
		if req.Token.SupportsPermit {
			if !req.ForEstimate {
				var err error
				permit, err = p.builder.Permit(ctx, req.Token, req.Amount)
				if err != nil {
					return nil, fmt.Errorf("obtaining permit signature: %w", err)
				}
			}
		} else {
			approve, err := p.builder.Approve(ctx, req.Token, req.Amount)
			if err != nil {
				return nil, fmt.Errorf("planning approval step: %w", err)
			}
			steps = append(steps, approve)
		}
	}

	// The request's transferFrom only passes once the mint/approval above is
	// mined, so those plans cannot estimate it against current state.
	setupPending := req.Token.IsNative || req.Amount.Cmp(req.Allowance) > 0

	request, err := p.builder.BridgeRequest(
		ctx,
		req.Token,
		req.Amount,
		req.Destination,
		req.Fees.DestinationProcessingFee,
		permit,
		setupPending,
	)
	if err != nil {
		return nil, fmt.Errorf("planning bridge request step: %w", err)
	}
	steps = append(steps, request)

	if req.PayDestinationFeeNow {
		payFee, err := p.builder.PayFee(ctx, req.Fees.BridgingFee)
		if err != nil {
			return nil, fmt.Errorf("planning fee payment step: %w", err)
		}
		steps = append(steps, payFee)
	}

	if req.PayPriorityFeeNow {
		if req.Fees.PriorityFee == nil {
			return nil, ErrPriorityFeeUnsupported
		}
		payPriority, err := p.builder.PayPriorityFee(ctx, req.Fees.PriorityFee)
		if err != nil {
			return nil, fmt.Errorf("planning priority fee step: %w", err)
		}
		steps = append(steps, payPriority)
	}

	return steps, nil
}
