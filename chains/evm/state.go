// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vortexbridge/bridge-core/config"
)

// TokenStateReader reads one token's on-chain allowance state.
type TokenStateReader interface {
	Allowance(owner common.Address, spender common.Address) (*big.Int, error)
}

// AllowanceReader resolves the ERC20 manager's spending allowance for the
// configured sender.
type AllowanceReader struct {
	owner   common.Address
	spender common.Address
	erc20   func(common.Address) TokenStateReader
}

func NewAllowanceReader(
	owner common.Address,
	spender common.Address,
	erc20 func(common.Address) TokenStateReader,
) *AllowanceReader {
	return &AllowanceReader{
		owner:   owner,
		spender: spender,
		erc20:   erc20,
	}
}

func (r *AllowanceReader) Allowance(ctx context.Context, token config.Token) (*big.Int, error) {
	return r.erc20(common.HexToAddress(token.Address)).Allowance(r.owner, r.spender)
}
