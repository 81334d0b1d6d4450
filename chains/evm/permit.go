// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/vortexbridge/bridge-core/bridge/plan"
)

const (
	PERMIT_DURATION = time.Hour
)

// TypedDataSigner is the wallet provider's EIP-712 signing surface. One call
// produces one signature prompt.
type TypedDataSigner interface {
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)
}

// PermitTokenReader reads the EIP-2612 domain parameters of one token.
type PermitTokenReader interface {
	Name() (string, error)
	Version() (string, error)
	Nonces(owner common.Address) (*big.Int, error)
}

// PermitSigner obtains offline-signed approvals substituting for on-chain
// approval transactions.
type PermitSigner struct {
	chainID *big.Int
	owner   common.Address
	spender common.Address
	signer  TypedDataSigner
}

func NewPermitSigner(
	chainID *big.Int,
	owner common.Address,
	spender common.Address,
	signer TypedDataSigner,
) *PermitSigner {
	return &PermitSigner{
		chainID: chainID,
		owner:   owner,
		spender: spender,
		signer:  signer,
	}
}

// SignPermit builds the EIP-2612 typed data for the token and requests one
// signature. The deadline is anchored to the signing time.
func (p *PermitSigner) SignPermit(
	ctx context.Context,
	token common.Address,
	reader PermitTokenReader,
	value *big.Int,
) (*plan.PermitSignature, error) {
	name, err := reader.Name()
	if err != nil {
		return nil, fmt.Errorf("reading token name: %w", err)
	}
	version, err := reader.Version()
	if err != nil {
		return nil, fmt.Errorf("reading token version: %w", err)
	}
	nonce, err := reader.Nonces(p.owner)
	if err != nil {
		return nil, fmt.Errorf("reading permit nonce: %w", err)
	}

	deadline := new(big.Int).SetInt64(time.Now().Add(PERMIT_DURATION).Unix())

	chainId := math.HexOrDecimal256(*p.chainID)
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Permit": []apitypes.Type{
				{Name: "owner", Type: "address"},
				{Name: "spender", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
			},
		},
		PrimaryType: "Permit",
		Domain: apitypes.TypedDataDomain{
			Name:              name,
			Version:           version,
			ChainId:           &chainId,
			VerifyingContract: token.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"owner":    p.owner.Hex(),
			"spender":  p.spender.Hex(),
			"value":    value,
			"nonce":    nonce,
			"deadline": deadline,
		},
	}

	sig, err := p.signer.SignTypedData(ctx, typedData)
	if err != nil {
		return nil, err
	}
	if len(sig) != 65 {
		return nil, fmt.Errorf("unexpected signature length %d", len(sig))
	}

	permit := &plan.PermitSignature{
		Deadline: deadline,
		V:        sig[64],
	}
	copy(permit.R[:], sig[:32])
	copy(permit.S[:], sig[32:64])
	if permit.V < 27 {
		permit.V += 27
	}

	return permit, nil
}
