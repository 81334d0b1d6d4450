// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

type GasClient interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
}

// GasPricer reads the current gas price off the chain client.
type GasPricer struct {
	client GasClient
}

func NewGasPricer(client GasClient) *GasPricer {
	return &GasPricer{client: client}
}

func (g *GasPricer) GasPrice(ctx context.Context) (*big.Int, error) {
	return g.client.SuggestGasPrice(ctx)
}

// GasEstimator estimates gas per call with headroom for state drift between
// estimation and submission.
type GasEstimator struct {
	client GasClient
}

func NewGasEstimator(client GasClient) *GasEstimator {
	return &GasEstimator{client: client}
}

func (g *GasEstimator) EstimateGas(ctx context.Context, from common.Address, to common.Address, data []byte, value *big.Int) (uint64, error) {
	gas, err := g.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Data:  data,
		Value: value,
	})
	if err != nil {
		return 0, err
	}

	return gas + gas/5, nil
}
