// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/vortexbridge/bridge-core/chains/evm/calls/consts"
)

type ERC20Contract struct {
	contracts.Contract
	client client.Client
}

func NewERC20Contract(
	client client.Client,
	address common.Address,
) *ERC20Contract {
	return &ERC20Contract{
		Contract: contracts.NewContract(address, consts.ERC20ABI, nil, client, nil),
		client:   client,
	}
}

func (c *ERC20Contract) Allowance(owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract("allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *ERC20Contract) BalanceOf(account common.Address) (*big.Int, error) {
	res, err := c.CallContract("balanceOf", account)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

// Nonces returns the current EIP-2612 permit nonce of the owner.
func (c *ERC20Contract) Nonces(owner common.Address) (*big.Int, error) {
	res, err := c.CallContract("nonces", owner)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *ERC20Contract) Name() (string, error) {
	res, err := c.CallContract("name")
	if err != nil {
		return "", err
	}

	name, ok := res[0].(string)
	if !ok {
		return "", fmt.Errorf("cannot convert name to string")
	}
	return name, nil
}

func (c *ERC20Contract) Version() (string, error) {
	res, err := c.CallContract("version")
	if err != nil {
		return "", err
	}

	version, ok := res[0].(string)
	if !ok {
		return "", fmt.Errorf("cannot convert version to string")
	}
	return version, nil
}

func (c *ERC20Contract) PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	return consts.ERC20ABI.Pack("approve", spender, amount)
}

// PackDeposit packs the wrap call converting native currency into the
// wrapped bridgeable token.
func (c *ERC20Contract) PackDeposit() ([]byte, error) {
	return consts.ERC20ABI.Pack("deposit")
}
