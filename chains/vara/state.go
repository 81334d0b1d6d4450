// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/vortexbridge/bridge-core/config"
)

// AllowanceReader resolves the VFT manager's spending allowance from the
// token program's state.
type AllowanceReader struct {
	reader     StateReader
	owner      types.Hash
	vftManager types.Hash
}

func NewAllowanceReader(reader StateReader, owner types.Hash, vftManager types.Hash) *AllowanceReader {
	return &AllowanceReader{
		reader:     reader,
		owner:      owner,
		vftManager: vftManager,
	}
}

func (r *AllowanceReader) Allowance(ctx context.Context, token config.Token) (*big.Int, error) {
	program, err := types.NewHashFromHexString(token.Address)
	if err != nil {
		return nil, err
	}

	payload, err := EncodePayload("Vft", "Allowance", r.owner, r.vftManager)
	if err != nil {
		return nil, err
	}

	raw, err := r.reader.ReadState(ctx, program, payload)
	if err != nil {
		return nil, fmt.Errorf("reading allowance state: %w", err)
	}

	dec := scale.NewDecoder(bytes.NewReader(raw))
	var service, method string
	if err := dec.Decode(&service); err != nil {
		return nil, fmt.Errorf("decoding state route: %w", err)
	}
	if err := dec.Decode(&method); err != nil {
		return nil, fmt.Errorf("decoding state route: %w", err)
	}

	var allowance types.U256
	if err := dec.Decode(&allowance); err != nil {
		return nil, fmt.Errorf("decoding allowance: %w", err)
	}
	return allowance.Int, nil
}
