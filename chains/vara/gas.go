// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"context"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// GasCalculator is the node RPC surface gas calculation needs.
type GasCalculator interface {
	Call(result interface{}, method string, args ...interface{}) error
}

type gasInfo struct {
	MinLimit      uint64 `json:"min_limit"`
	Reserved      uint64 `json:"reserved"`
	Burned        uint64 `json:"burned"`
	MayBeReturned uint64 `json:"may_be_returned"`
	Waited        bool   `json:"waited"`
}

// RPCGasEstimator asks the node how much gas handling a message burns.
type RPCGasEstimator struct {
	client GasCalculator
}

func NewRPCGasEstimator(client GasCalculator) *RPCGasEstimator {
	return &RPCGasEstimator{client: client}
}

func (e *RPCGasEstimator) EstimateHandleGas(
	ctx context.Context,
	origin types.Hash,
	destination types.Hash,
	payload []byte,
	value *big.Int,
) (uint64, error) {
	if value == nil {
		value = big.NewInt(0)
	}
	// The calculation RPC takes the attached value as a u64; larger amounts
	// must fail here rather than estimate a silently truncated message.
	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds the u64 range of the gas calculation", value.String())
	}

	var info gasInfo
	err := e.client.Call(
		&info,
		"gear_calculateGasForHandle",
		origin.Hex(),
		destination.Hex(),
		codec.HexEncodeToString(payload),
		value.Uint64(),
		true,
	)
	if err != nil {
		return 0, fmt.Errorf("calculating handle gas: %w", err)
	}
	return info.MinLimit, nil
}

// GasPricer reports the value of one gas unit. On Vara the conversion rate is
// a runtime constant rather than a market price.
type GasPricer struct {
	price *big.Int
}

func NewGasPricer(price uint64) *GasPricer {
	return &GasPricer{price: new(big.Int).SetUint64(price)}
}

func (g *GasPricer) GasPrice(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(g.price), nil
}
