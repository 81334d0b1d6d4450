// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"context"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	ethCommon "github.com/ethereum/go-ethereum/common"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/config"
)

const (
	// Deferred fee payments cannot be estimated before the bridging nonce is
	// known, so they carry a fixed gas ceiling.
	PAY_FEE_GAS_CEILING = 20_000_000_000

	// The bridging request transfers tokens the preceding mint/approval has
	// not yet provided, so calculating its gas against current state fails.
	// It always carries a fixed limit sized for the vft-manager's
	// cross-program calls.
	BRIDGE_REQUEST_GAS_LIMIT = 150_000_000_000
)

// GasEstimator estimates the gas one program message burns.
type GasEstimator interface {
	EstimateHandleGas(ctx context.Context, origin types.Hash, destination types.Hash, payload []byte, value *big.Int) (uint64, error)
}

// StepBuilder builds the Vara-side steps of a plan. Every step it produces is
// bundlable: the executor folds them into one atomic batch with a single
// signature.
type StepBuilder struct {
	sender     types.Hash
	vftManager types.Hash
	payment    types.Hash
	estimator  GasEstimator
}

func NewStepBuilder(
	sender types.Hash,
	vftManager types.Hash,
	payment types.Hash,
	estimator GasEstimator,
) *StepBuilder {
	return &StepBuilder{
		sender:     sender,
		vftManager: vftManager,
		payment:    payment,
		estimator:  estimator,
	}
}

// ValidateDestination expects a 20-byte hex destination account on the
// Ethereum side.
func (b *StepBuilder) ValidateDestination(destination string) error {
	if !ethCommon.IsHexAddress(destination) {
		return fmt.Errorf("destination %s is not a valid address", destination)
	}
	return nil
}

// Mint locks native currency into the wrapped bridgeable token, value =
// amount.
func (b *StepBuilder) Mint(ctx context.Context, token config.Token, amount *big.Int) (plan.Step, error) {
	program, err := types.NewHashFromHexString(token.Address)
	if err != nil {
		return plan.Step{}, err
	}

	payload, err := EncodePayload("Tokenizer", "Mint")
	if err != nil {
		return plan.Step{}, err
	}

	gasLimit, err := b.estimator.EstimateHandleGas(ctx, b.sender, program, payload, amount)
	if err != nil {
		return plan.Step{}, err
	}

	return plan.Step{
		Kind:  plan.StepMint,
		Chain: bridge.ChainVara,
		Desc: CallDesc{
			Program: program,
			Payload: payload,
			Value:   amount,
		},
		GasLimit:  gasLimit,
		Value:     amount,
		Bundlable: true,
	}, nil
}

func (b *StepBuilder) Approve(ctx context.Context, token config.Token, amount *big.Int) (plan.Step, error) {
	program, err := types.NewHashFromHexString(token.Address)
	if err != nil {
		return plan.Step{}, err
	}

	payload, err := EncodePayload("Vft", "Approve", b.vftManager, types.NewU256(*amount))
	if err != nil {
		return plan.Step{}, err
	}

	gasLimit, err := b.estimator.EstimateHandleGas(ctx, b.sender, program, payload, nil)
	if err != nil {
		return plan.Step{}, err
	}

	return plan.Step{
		Kind:  plan.StepApprove,
		Chain: bridge.ChainVara,
		Desc: CallDesc{
			Program: program,
			Payload: payload,
		},
		GasLimit:  gasLimit,
		Bundlable: true,
	}, nil
}

// Permit is an Ethereum-side mechanism. Vara tokens never advertise permit
// support, so the planner cannot reach this.
func (b *StepBuilder) Permit(ctx context.Context, token config.Token, amount *big.Int) (*plan.PermitSignature, error) {
	return nil, fmt.Errorf("offline approvals not supported")
}

func (b *StepBuilder) BridgeRequest(
	ctx context.Context,
	token config.Token,
	amount *big.Int,
	destination string,
	processingFee *big.Int,
	permit *plan.PermitSignature,
	setupPending bool,
) (plan.Step, error) {
	tokenProgram, err := types.NewHashFromHexString(token.Address)
	if err != nil {
		return plan.Step{}, err
	}
	receiver := types.NewH160(ethCommon.HexToAddress(destination).Bytes())

	payload, err := EncodePayload("VftManager", "RequestBridging", tokenProgram, types.NewU256(*amount), receiver)
	if err != nil {
		return plan.Step{}, err
	}

	var value *big.Int
	if processingFee != nil && processingFee.Sign() > 0 {
		value = processingFee
	}

	return plan.Step{
		Kind:  plan.StepBridgeRequest,
		Chain: bridge.ChainVara,
		Desc: CallDesc{
			Program: b.vftManager,
			Payload: payload,
			Value:   value,
		},
		GasLimit:  BRIDGE_REQUEST_GAS_LIMIT,
		Value:     value,
		Bundlable: true,
	}, nil
}

func (b *StepBuilder) PayFee(ctx context.Context, fee *big.Int) (plan.Step, error) {
	return plan.Step{
		Kind:  plan.StepPayFee,
		Chain: bridge.ChainVara,
		Desc: CallDesc{
			Program: b.payment,
			Value:   fee,
			PackWithNonce: func(nonce *big.Int) ([]byte, error) {
				return EncodePayload("BridgingPayment", "PayFees", types.NewU256(*nonce))
			},
		},
		GasLimit:  PAY_FEE_GAS_CEILING,
		Value:     fee,
		Bundlable: true,
		Deferred:  true,
	}, nil
}

// PayPriorityFee requests expedited relaying of the bridging message.
func (b *StepBuilder) PayPriorityFee(ctx context.Context, fee *big.Int) (plan.Step, error) {
	return plan.Step{
		Kind:  plan.StepPayPriorityFee,
		Chain: bridge.ChainVara,
		Desc: CallDesc{
			Program: b.payment,
			Value:   fee,
			PackWithNonce: func(nonce *big.Int) ([]byte, error) {
				return EncodePayload("BridgingPayment", "PayPriorityFee", types.NewU256(*nonce))
			},
		},
		GasLimit:  PAY_FEE_GAS_CEILING,
		Value:     fee,
		Bundlable: true,
		Deferred:  true,
	}, nil
}
