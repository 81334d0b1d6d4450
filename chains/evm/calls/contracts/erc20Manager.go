// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/vortexbridge/bridge-core/chains/evm/calls/consts"
)

// ERC20ManagerContract is the bridging program on the Ethereum side. It
// locks the token and emits BridgingRequested with the chain-assigned nonce.
type ERC20ManagerContract struct {
	contracts.Contract
	client  client.Client
	address common.Address
}

func NewERC20ManagerContract(
	client client.Client,
	address common.Address,
) *ERC20ManagerContract {
	return &ERC20ManagerContract{
		Contract: contracts.NewContract(address, consts.ERC20ManagerABI, nil, client, nil),
		client:   client,
		address:  address,
	}
}

func (c *ERC20ManagerContract) Address() common.Address {
	return c.address
}

func (c *ERC20ManagerContract) PackRequestBridging(token common.Address, amount *big.Int, receiver [32]byte) ([]byte, error) {
	return consts.ERC20ManagerABI.Pack("requestBridging", token, amount, receiver)
}

func (c *ERC20ManagerContract) PackRequestBridgingWithPermit(
	token common.Address,
	amount *big.Int,
	receiver [32]byte,
	deadline *big.Int,
	v uint8,
	r [32]byte,
	s [32]byte,
) ([]byte, error) {
	return consts.ERC20ManagerABI.Pack("requestBridgingWithPermit", token, amount, receiver, deadline, v, r, s)
}
