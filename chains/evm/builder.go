// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/config"
)

const (
	// Fee payment depends on a nonce only known after the bridge request
	// commits, so it cannot be estimated up front and is planned with an
	// approximate gas ceiling.
	PAY_FEE_GAS_CEILING = 120000

	// Estimating requestBridging before the approval or mint it depends on
	// is mined reverts on transferFrom, so those plans carry a fixed limit.
	BRIDGE_REQUEST_GAS_FALLBACK = 210000
)

// GasEstimator estimates gas for one call through the chain client.
type GasEstimator interface {
	EstimateGas(ctx context.Context, from common.Address, to common.Address, data []byte, value *big.Int) (uint64, error)
}

// TokenContract is the per-token contract surface the builder needs.
type TokenContract interface {
	PermitTokenReader
	PackApprove(spender common.Address, amount *big.Int) ([]byte, error)
	PackDeposit() ([]byte, error)
}

// ManagerContract packs bridging request calldata.
type ManagerContract interface {
	Address() common.Address
	PackRequestBridging(token common.Address, amount *big.Int, receiver [32]byte) ([]byte, error)
	PackRequestBridgingWithPermit(token common.Address, amount *big.Int, receiver [32]byte, deadline *big.Int, v uint8, r [32]byte, s [32]byte) ([]byte, error)
}

// PaymentContract packs fee payment calldata.
type PaymentContract interface {
	Address() common.Address
	PackPayFee(nonce *big.Int) ([]byte, error)
}

// StepBuilder builds the Ethereum-side steps of a plan. Ethereum is the
// per-call ledger: nothing it produces is bundlable.
type StepBuilder struct {
	sender    common.Address
	manager   ManagerContract
	payment   PaymentContract
	erc20     func(common.Address) TokenContract
	estimator GasEstimator
	permits   *PermitSigner
}

func NewStepBuilder(
	sender common.Address,
	manager ManagerContract,
	payment PaymentContract,
	erc20 func(common.Address) TokenContract,
	estimator GasEstimator,
	permits *PermitSigner,
) *StepBuilder {
	return &StepBuilder{
		sender:    sender,
		manager:   manager,
		payment:   payment,
		erc20:     erc20,
		estimator: estimator,
		permits:   permits,
	}
}

// ValidateDestination expects a 32-byte hex destination account on the Vara
// side.
func (b *StepBuilder) ValidateDestination(destination string) error {
	raw, err := hexutil.Decode(destination)
	if err != nil {
		return err
	}
	if len(raw) != 32 {
		return fmt.Errorf("destination must be 32 bytes, got %d", len(raw))
	}
	return nil
}

// Mint wraps native currency into the bridgeable token, value = amount.
func (b *StepBuilder) Mint(ctx context.Context, token config.Token, amount *big.Int) (plan.Step, error) {
	tokenAddress := common.HexToAddress(token.Address)
	data, err := b.erc20(tokenAddress).PackDeposit()
	if err != nil {
		return plan.Step{}, err
	}

	gasLimit, err := b.estimator.EstimateGas(ctx, b.sender, tokenAddress, data, amount)
	if err != nil {
		return plan.Step{}, err
	}

	return plan.Step{
		Kind:  plan.StepMint,
		Chain: bridge.ChainEthereum,
		Desc: CallDesc{
			To:     tokenAddress,
			Method: "deposit",
			Data:   data,
			Value:  amount,
		},
		GasLimit: gasLimit,
		Value:    amount,
	}, nil
}

func (b *StepBuilder) Approve(ctx context.Context, token config.Token, amount *big.Int) (plan.Step, error) {
	tokenAddress := common.HexToAddress(token.Address)
	data, err := b.erc20(tokenAddress).PackApprove(b.manager.Address(), amount)
	if err != nil {
		return plan.Step{}, err
	}

	gasLimit, err := b.estimator.EstimateGas(ctx, b.sender, tokenAddress, data, nil)
	if err != nil {
		return plan.Step{}, err
	}

	return plan.Step{
		Kind:  plan.StepApprove,
		Chain: bridge.ChainEthereum,
		Desc: CallDesc{
			To:          tokenAddress,
			Method:      "approve",
			Data:        data,
			MinApproved: amount,
		},
		GasLimit: gasLimit,
	}, nil
}

func (b *StepBuilder) Permit(ctx context.Context, token config.Token, amount *big.Int) (*plan.PermitSignature, error) {
	tokenAddress := common.HexToAddress(token.Address)
	return b.permits.SignPermit(ctx, tokenAddress, b.erc20(tokenAddress), amount)
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
	raw, err := hexutil.Decode(destination)
	if err != nil {
		return plan.Step{}, err
	}
	var receiver [32]byte
	copy(receiver[:], raw)

	tokenAddress := common.HexToAddress(token.Address)
	var data []byte
	method := "requestBridging"
	if permit != nil {
		method = "requestBridgingWithPermit"
		data, err = b.manager.PackRequestBridgingWithPermit(
			tokenAddress, amount, receiver, permit.Deadline, permit.V, permit.R, permit.S)
	} else {
		data, err = b.manager.PackRequestBridging(tokenAddress, amount, receiver)
	}
	if err != nil {
		return plan.Step{}, err
	}

	var value *big.Int
	if processingFee != nil && processingFee.Sign() > 0 {
		value = processingFee
	}

	gasLimit := uint64(BRIDGE_REQUEST_GAS_FALLBACK)
	if !setupPending {
		gasLimit, err = b.estimator.EstimateGas(ctx, b.sender, b.manager.Address(), data, value)
		if err != nil {
			return plan.Step{}, err
		}
	}

	return plan.Step{
		Kind:  plan.StepBridgeRequest,
		Chain: bridge.ChainEthereum,
		Desc: CallDesc{
			To:     b.manager.Address(),
			Method: method,
			Data:   data,
			Value:  value,
		},
		GasLimit: gasLimit,
		Value:    value,
	}, nil
}

func (b *StepBuilder) PayFee(ctx context.Context, fee *big.Int) (plan.Step, error) {
	return plan.Step{
		Kind:  plan.StepPayFee,
		Chain: bridge.ChainEthereum,
		Desc: CallDesc{
			To:            b.payment.Address(),
			Method:        "payFee",
			Value:         fee,
			PackWithNonce: b.payment.PackPayFee,
		},
		GasLimit: PAY_FEE_GAS_CEILING,
		Value:    fee,
		Deferred: true,
	}, nil
}

// PayPriorityFee is offered on the Vara side only.
func (b *StepBuilder) PayPriorityFee(ctx context.Context, fee *big.Int) (plan.Step, error) {
	return plan.Step{}, plan.ErrPriorityFeeUnsupported
}
