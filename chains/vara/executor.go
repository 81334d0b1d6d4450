// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/bridge/submit"
)

// Conn is the node connection surface the executor needs.
type Conn interface {
	Metadata() *types.Metadata
	GenesisHash() types.Hash
	RuntimeVersion() (*types.RuntimeVersion, error)
	AccountInfo(pubKey []byte) (types.AccountInfo, error)
	SubmitAndWatch(ctx context.Context, ext types.Extrinsic) (types.Hash, error)
	Block(hash types.Hash) (*types.SignedBlock, error)
	BlockEvents(hash types.Hash) (*Events, error)
}

// Executor submits Vara steps as one extrinsic. Multiple steps fold into a
// Utility.batch_all, making the whole sequence atomic under a single
// signature: either every call commits or none do.
type Executor struct {
	conn    Conn
	keypair signature.KeyringPair
}

func NewExecutor(conn Conn, keypair signature.KeyringPair) *Executor {
	return &Executor{
		conn:    conn,
		keypair: keypair,
	}
}

func (e *Executor) Execute(ctx context.Context, steps []plan.Step) error {
	calls := make([]types.Call, len(steps))
	for i, step := range steps {
		desc, ok := step.Desc.(CallDesc)
		if !ok {
			return &submit.StepError{Index: i, Err: fmt.Errorf("unexpected descriptor type %T", step.Desc)}
		}

		call, err := e.buildCall(step, desc.Payload)
		if err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
		calls[i] = call
	}

	return e.submit(ctx, calls)
}

// ExecuteDeferred submits the fee payment steps once the bridging nonce is
// known, packing their payloads against it.
func (e *Executor) ExecuteDeferred(ctx context.Context, steps []plan.Step, nonce *big.Int) error {
	calls := make([]types.Call, len(steps))
	for i, step := range steps {
		desc, ok := step.Desc.(CallDesc)
		if !ok {
			return &submit.StepError{Index: i, Err: fmt.Errorf("unexpected descriptor type %T", step.Desc)}
		}
		if desc.PackWithNonce == nil {
			return &submit.StepError{Index: i, Err: fmt.Errorf("deferred step %s has no nonce packer", step.Kind)}
		}

		payload, err := desc.PackWithNonce(nonce)
		if err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
		call, err := e.buildCall(step, payload)
		if err != nil {
			return &submit.StepError{Index: i, Err: err}
		}
		calls[i] = call
	}

	return e.submit(ctx, calls)
}

func (e *Executor) buildCall(step plan.Step, payload []byte) (types.Call, error) {
	desc := step.Desc.(CallDesc)

	value := big.NewInt(0)
	if desc.Value != nil {
		value = desc.Value
	}

	return types.NewCall(
		e.conn.Metadata(),
		"Gear.send_message",
		desc.Program,
		types.Bytes(payload),
		types.U64(step.GasLimit),
		types.NewU128(*value),
		true,
	)
}

func (e *Executor) submit(ctx context.Context, calls []types.Call) error {
	call := calls[0]
	if len(calls) > 1 {
		var err error
		call, err = types.NewCall(e.conn.Metadata(), "Utility.batch_all", calls)
		if err != nil {
			return &submit.StepError{Index: 0, Err: err}
		}
	}

	ext, err := e.sign(call)
	if err != nil {
		return &submit.StepError{Index: 0, Err: err}
	}

	blockHash, err := e.conn.SubmitAndWatch(ctx, ext)
	if err != nil {
		return &submit.StepError{Index: 0, Err: err}
	}

	log.Debug().
		Str("blockHash", blockHash.Hex()).
		Int("calls", len(calls)).
		Msgf("Extrinsic finalized")

	// The whole batch rolls back on failure, so the error is attributed to
	// the first step.
	if err := e.checkDispatch(ext, blockHash); err != nil {
		return &submit.StepError{Index: 0, Err: err}
	}
	return nil
}

func (e *Executor) sign(call types.Call) (types.Extrinsic, error) {
	ext := types.NewExtrinsic(call)

	rv, err := e.conn.RuntimeVersion()
	if err != nil {
		return ext, err
	}
	info, err := e.conn.AccountInfo(e.keypair.PublicKey)
	if err != nil {
		return ext, err
	}

	o := types.SignatureOptions{
		BlockHash:          e.conn.GenesisHash(),
		Era:                types.ExtrinsicEra{IsImmortalEra: true},
		GenesisHash:        e.conn.GenesisHash(),
		Nonce:              types.NewUCompactFromUInt(uint64(info.Nonce)),
		SpecVersion:        rv.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: rv.TransactionVersion,
	}
	err = ext.Sign(e.keypair, o)
	if err != nil {
		return ext, fmt.Errorf("signing extrinsic: %w", err)
	}
	return ext, nil
}

// checkDispatch verifies the finalized extrinsic dispatched successfully.
// Inclusion alone does not imply success.
func (e *Executor) checkDispatch(ext types.Extrinsic, blockHash types.Hash) error {
	extIndex, err := e.findExtrinsic(ext, blockHash)
	if err != nil {
		return err
	}

	events, err := e.conn.BlockEvents(blockHash)
	if err != nil {
		return fmt.Errorf("fetching dispatch events: %w", err)
	}

	for _, failed := range events.System_ExtrinsicFailed {
		if !failed.Phase.IsApplyExtrinsic || failed.Phase.AsApplyExtrinsic != extIndex {
			continue
		}
		return fmt.Errorf("extrinsic failed: %s", dispatchError(failed.DispatchError))
	}
	return nil
}

func (e *Executor) findExtrinsic(ext types.Extrinsic, blockHash types.Hash) (uint32, error) {
	encoded, err := codec.Encode(ext)
	if err != nil {
		return 0, err
	}

	block, err := e.conn.Block(blockHash)
	if err != nil {
		return 0, err
	}
	for i, blockExt := range block.Block.Extrinsics {
		blockEncoded, err := codec.Encode(blockExt)
		if err != nil {
			continue
		}
		if bytes.Equal(encoded, blockEncoded) {
			// nolint:gosec
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("extrinsic not found in block %s", blockHash.Hex())
}

func dispatchError(err types.DispatchError) string {
	switch {
	case err.IsModule:
		return fmt.Sprintf("module error index %d error %v", err.ModuleError.Index, err.ModuleError.Error)
	case err.IsBadOrigin:
		return "bad origin"
	case err.IsCannotLookup:
		return "cannot lookup"
	case err.IsToken:
		return "token error"
	case err.IsArithmetic:
		return "arithmetic error"
	default:
		return "unknown dispatch error"
	}
}
