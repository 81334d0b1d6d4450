// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	BridgingRequestedSig EventSig = "BridgingRequested(uint256,address,uint256,address,bytes32)"
	ApprovalSig          EventSig = "Approval(address,address,uint256)"
)

// BridgingRequested holds the bridging event data emitted by the ERC20
// manager once the request call is included.
type BridgingRequested struct {
	Nonce    *big.Int
	Token    common.Address
	Amount   *big.Int
	Sender   common.Address
	Receiver [32]byte
}
