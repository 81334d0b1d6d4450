// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/vortexbridge/bridge-core/bridge"
)

// CallDesc describes one Gear program message. Interpreted only by the Vara
// executor, which turns each into a Gear.send_message call and bundles
// multiple into one atomic batch.
type CallDesc struct {
	Program types.Hash
	Payload []byte
	Value   *big.Int

	// PackWithNonce packs the payload of a deferred call once the bridging
	// nonce is known. Set instead of Payload on deferred steps.
	PackWithNonce func(nonce *big.Int) ([]byte, error)
}

func (d CallDesc) TargetChain() bridge.Chain {
	return bridge.ChainVara
}
