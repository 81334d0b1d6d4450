// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/vortexbridge/bridge-core/chains/evm/calls/consts"
)

type BridgingPaymentContract struct {
	contracts.Contract
	client  client.Client
	address common.Address
}

func NewBridgingPaymentContract(
	client client.Client,
	address common.Address,
) *BridgingPaymentContract {
	return &BridgingPaymentContract{
		Contract: contracts.NewContract(address, consts.BridgingPaymentABI, nil, client, nil),
		client:   client,
		address:  address,
	}
}

func (c *BridgingPaymentContract) Address() common.Address {
	return c.address
}

// Fee returns the current bridging fee in wei.
func (c *BridgingPaymentContract) Fee() (*big.Int, error) {
	res, err := c.CallContract("fee")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

// ProcessingFee returns the destination-side processing fee in wei.
func (c *BridgingPaymentContract) ProcessingFee() (*big.Int, error) {
	res, err := c.CallContract("processingFee")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *BridgingPaymentContract) PackPayFee(nonce *big.Int) ([]byte, error) {
	return consts.BridgingPaymentABI.Pack("payFee", nonce)
}
