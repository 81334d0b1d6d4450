// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/vortexbridge/bridge-core/fees"
)

// StateReader reads program state off the node.
type StateReader interface {
	ReadState(ctx context.Context, program types.Hash, payload []byte) ([]byte, error)
}

type paymentState struct {
	Admin       types.Hash
	Fee         types.U128
	PriorityFee types.U128
}

// FeeReader resolves the Vara fee schedule from the bridging payment
// program's state. Vara supports priority fees, so the resolved policy
// always carries one.
type FeeReader struct {
	reader  StateReader
	payment types.Hash
}

func NewFeeReader(reader StateReader, payment types.Hash) *FeeReader {
	return &FeeReader{
		reader:  reader,
		payment: payment,
	}
}

func (r *FeeReader) ReadFeeSchedule(ctx context.Context) (*fees.FeePolicy, error) {
	payload, err := EncodePayload("BridgingPayment", "GetState")
	if err != nil {
		return nil, err
	}

	raw, err := r.reader.ReadState(ctx, r.payment, payload)
	if err != nil {
		return nil, fmt.Errorf("reading fee schedule: %w", err)
	}

	state, err := decodePaymentState(raw)
	if err != nil {
		return nil, err
	}

	return &fees.FeePolicy{
		BridgingFee:              state.Fee.Int,
		DestinationProcessingFee: big.NewInt(0),
		PriorityFee:              state.PriorityFee.Int,
	}, nil
}

// decodePaymentState strips the echoed state route and decodes the payment
// program state.
func decodePaymentState(raw []byte) (*paymentState, error) {
	dec := scale.NewDecoder(bytes.NewReader(raw))

	var service, method string
	if err := dec.Decode(&service); err != nil {
		return nil, fmt.Errorf("decoding state route: %w", err)
	}
	if err := dec.Decode(&method); err != nil {
		return nil, fmt.Errorf("decoding state route: %w", err)
	}

	var state paymentState
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("decoding payment state: %w", err)
	}
	return &state, nil
}
