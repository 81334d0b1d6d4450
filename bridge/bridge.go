// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"fmt"
	"math/big"
)

// Chain identifies one side of the bridge.
type Chain uint8

const (
	ChainVara Chain = iota
	ChainEthereum
)

func (c Chain) String() string {
	switch c {
	case ChainVara:
		return "vara"
	case ChainEthereum:
		return "ethereum"
	default:
		return fmt.Sprintf("chain(%d)", uint8(c))
	}
}

// Direction is the active transfer direction. It is always passed explicitly
// into planning and submission so both stay free of ambient network state.
type Direction uint8

const (
	VaraToEthereum Direction = iota
	EthereumToVara
)

// PayingChain is the chain the user signs on and pays gas/fees on.
func (d Direction) PayingChain() Chain {
	if d == VaraToEthereum {
		return ChainVara
	}
	return ChainEthereum
}

func (d Direction) DestinationChain() Chain {
	if d == VaraToEthereum {
		return ChainEthereum
	}
	return ChainVara
}

func (d Direction) String() string {
	if d == VaraToEthereum {
		return "vara->ethereum"
	}
	return "ethereum->vara"
}

// CallDescriptor is the chain-specific description of a single call. It is
// interpreted only by the executor of the chain that created it.
type CallDescriptor interface {
	TargetChain() Chain
}

// Receipt is the chain-agnostic result of one included call.
type Receipt struct {
	TxHash      string
	BlockNumber *big.Int
}
