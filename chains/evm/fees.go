// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vortexbridge/bridge-core/fees"
)

// PaymentReader reads the fee schedule off the bridging payment contract.
type PaymentReader interface {
	Fee() (*big.Int, error)
	ProcessingFee() (*big.Int, error)
}

// FeeReader resolves the Ethereum fee schedule. Priority fees are a Vara-side
// concept, so the resolved policy carries none.
type FeeReader struct {
	payment PaymentReader
}

func NewFeeReader(payment PaymentReader) *FeeReader {
	return &FeeReader{payment: payment}
}

func (r *FeeReader) ReadFeeSchedule(ctx context.Context) (*fees.FeePolicy, error) {
	fee, err := r.payment.Fee()
	if err != nil {
		return nil, fmt.Errorf("reading bridging fee: %w", err)
	}
	processingFee, err := r.payment.ProcessingFee()
	if err != nil {
		return nil, fmt.Errorf("reading processing fee: %w", err)
	}

	return &fees.FeePolicy{
		BridgingFee:              fee,
		DestinationProcessingFee: processingFee,
	}, nil
}
