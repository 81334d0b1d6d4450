// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vortexbridge/bridge-core/bridge"
)

// CallDesc describes one EVM call. Interpreted only by the EVM executor.
type CallDesc struct {
	To     common.Address
	Method string
	Data   []byte
	Value  *big.Int

	// PackWithNonce packs the calldata of a deferred call once the bridging
	// nonce is known. Set instead of Data on deferred steps.
	PackWithNonce func(nonce *big.Int) ([]byte, error)

	// MinApproved makes the executor verify via the Approval event that at
	// least this value was approved. The event can fire with a lower value
	// for non-standard tokens.
	MinApproved *big.Int
}

func (d CallDesc) TargetChain() bridge.Chain {
	return bridge.ChainEthereum
}
