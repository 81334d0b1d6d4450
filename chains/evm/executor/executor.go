// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/bridge/submit"
	"github.com/vortexbridge/bridge-core/chains/evm"
	"github.com/vortexbridge/bridge-core/chains/evm/calls/events"
)

// TxSender submits one signed transaction and waits for its inclusion. The
// wallet backing it owns key material and nonce management.
type TxSender interface {
	SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int, gasLimit uint64) (common.Hash, error)
	WaitAndReturnTxReceipt(hash common.Hash) (*ethTypes.Receipt, error)
}

// Executor submits EVM steps one transaction at a time, waiting for each
// receipt before sending the next. A failed step stops the sequence; already
// mined steps stay committed.
type Executor struct {
	sender TxSender
}

func NewExecutor(sender TxSender) *Executor {
	return &Executor{sender: sender}
}

func (e *Executor) Execute(ctx context.Context, steps []plan.Step) error {
	for i, step := range steps {
		desc, ok := step.Desc.(evm.CallDesc)
		if !ok {
			return &submit.StepError{Index: i, Err: fmt.Errorf("unexpected descriptor type %T", step.Desc)}
		}

		if err := e.executeCall(ctx, step, desc, desc.Data); err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
	}
	return nil
}

// ExecuteDeferred submits the fee payment steps once the bridging nonce is
// known, packing their calldata against it.
func (e *Executor) ExecuteDeferred(ctx context.Context, steps []plan.Step, nonce *big.Int) error {
	for i, step := range steps {
		desc, ok := step.Desc.(evm.CallDesc)
		if !ok {
			return &submit.StepError{Index: i, Err: fmt.Errorf("unexpected descriptor type %T", step.Desc)}
		}
		if desc.PackWithNonce == nil {
			return &submit.StepError{Index: i, Err: fmt.Errorf("deferred step %s has no nonce packer", step.Kind)}
		}

		data, err := desc.PackWithNonce(nonce)
		if err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
		if err := e.executeCall(ctx, step, desc, data); err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
	}
	return nil
}

func (e *Executor) executeCall(ctx context.Context, step plan.Step, desc evm.CallDesc, data []byte) error {
	hash, err := e.sender.SendTransaction(ctx, desc.To, data, desc.Value, step.GasLimit)
	if err != nil {
		return fmt.Errorf("sending %s: %w", step.Kind, err)
	}

	log.Debug().
		Str("txHash", hash.Hex()).
		Str("kind", step.Kind.String()).
		Msgf("Sent transaction")

	receipt, err := e.sender.WaitAndReturnTxReceipt(hash)
	if err != nil {
		return fmt.Errorf("waiting for %s receipt: %w", step.Kind, err)
	}
	if receipt.Status != ethTypes.ReceiptStatusSuccessful {
		return fmt.Errorf("%s transaction %s reverted", step.Kind, hash.Hex())
	}

	if desc.MinApproved != nil {
		if err := verifyApproval(receipt, desc.To, desc.MinApproved); err != nil {
			return err
		}
	}
	return nil
}

// verifyApproval checks the Approval event carried the requested value.
// Non-standard tokens can silently clamp the approved amount.
func verifyApproval(receipt *ethTypes.Receipt, token common.Address, minApproved *big.Int) error {
	topic := events.ApprovalSig.GetTopic()
	for _, lg := range receipt.Logs {
		if lg.Address != token || len(lg.Topics) == 0 || lg.Topics[0] != topic {
			continue
		}

		approved := new(big.Int).SetBytes(lg.Data)
		if approved.Cmp(minApproved) < 0 {
			return fmt.Errorf("approved amount %s below requested %s", approved, minApproved)
		}
		return nil
	}
	return fmt.Errorf("no approval event found in transaction %s", receipt.TxHash.Hex())
}
