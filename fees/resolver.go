// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fees

import (
	"context"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"
	"github.com/vortexbridge/bridge-core/bridge"
)

// FeePolicy holds the current fee parameters of one paying chain, in that
// chain's smallest native unit. All fields resolve together; a policy is
// either fully resolved or pending, never partially stale.
type FeePolicy struct {
	BridgingFee              *big.Int
	DestinationProcessingFee *big.Int
	// PriorityFee is nil on chains that do not offer priority relaying.
	PriorityFee *big.Int
}

func (p *FeePolicy) Resolved() bool {
	return p != nil && p.BridgingFee != nil && p.DestinationProcessingFee != nil
}

// ChainFeeReader reads the fee schedule from the paying contract/program of
// one chain.
type ChainFeeReader interface {
	ReadFeeSchedule(ctx context.Context) (*FeePolicy, error)
}

// Resolver resolves fee policies per chain. It performs no caching: fees
// differ per direction and must be re-resolved whenever the active direction
// changes.
type Resolver struct {
	readers map[bridge.Chain]ChainFeeReader
}

func NewResolver(readers map[bridge.Chain]ChainFeeReader) *Resolver {
	return &Resolver{readers: readers}
}

// Resolve reads the current fee policy of the given chain. A failed read
// returns an error and leaves the policy pending; callers must treat pending
// as "cannot plan yet", never as zero fees.
func (r *Resolver) Resolve(ctx context.Context, chain bridge.Chain) (*FeePolicy, error) {
	reader, ok := r.readers[chain]
	if !ok {
		return nil, fmt.Errorf("no fee reader for chain %s", chain)
	}

	policy, err := reader.ReadFeeSchedule(ctx)
	if err != nil {
		log.Warn().Err(err).Msgf("Fee schedule read failed for chain %s", chain)
		return nil, err
	}
	if !policy.Resolved() {
		return nil, fmt.Errorf("fee schedule for chain %s resolved partially", chain)
	}

	return policy, nil
}
