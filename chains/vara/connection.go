// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"context"
	"fmt"
	"sync"
	"time"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/rs/zerolog/log"
)

// Connection wraps one Vara node websocket connection. Metadata and the
// genesis hash are fetched once; the runtime version is re-read per
// submission since upgrades invalidate signatures.
type Connection struct {
	api             *gsrpc.SubstrateAPI
	finalityTimeout time.Duration

	mu          sync.RWMutex
	meta        *types.Metadata
	genesisHash types.Hash
}

func NewConnection(endpoint string, finalityTimeout time.Duration) (*Connection, error) {
	api, err := gsrpc.NewSubstrateAPI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}

	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	genesisHash, err := api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return nil, fmt.Errorf("fetching genesis hash: %w", err)
	}

	return &Connection{
		api:             api,
		finalityTimeout: finalityTimeout,
		meta:            meta,
		genesisHash:     genesisHash,
	}, nil
}

// Client exposes the raw RPC client for gear-specific calls outside the
// standard substrate RPC surface.
func (c *Connection) Client() GasCalculator {
	return c.api.Client
}

func (c *Connection) Metadata() *types.Metadata {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.meta
}

func (c *Connection) GenesisHash() types.Hash {
	return c.genesisHash
}

// RefreshMetadata re-reads the runtime metadata after an upgrade.
func (c *Connection) RefreshMetadata() error {
	meta, err := c.api.RPC.State.GetMetadataLatest()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.meta = meta
	c.mu.Unlock()
	return nil
}

func (c *Connection) RuntimeVersion() (*types.RuntimeVersion, error) {
	return c.api.RPC.State.GetRuntimeVersionLatest()
}

func (c *Connection) AccountInfo(pubKey []byte) (types.AccountInfo, error) {
	var info types.AccountInfo
	key, err := types.CreateStorageKey(c.Metadata(), "System", "Account", pubKey)
	if err != nil {
		return info, err
	}

	ok, err := c.api.RPC.State.GetStorageLatest(key, &info)
	if err != nil {
		return info, err
	}
	if !ok {
		return info, fmt.Errorf("account not found")
	}
	return info, nil
}

func (c *Connection) FinalizedHeader() (*types.Header, error) {
	hash, err := c.api.RPC.Chain.GetFinalizedHead()
	if err != nil {
		return nil, err
	}
	return c.api.RPC.Chain.GetHeader(hash)
}

func (c *Connection) BlockHash(blockNumber uint64) (types.Hash, error) {
	return c.api.RPC.Chain.GetBlockHash(blockNumber)
}

func (c *Connection) Block(hash types.Hash) (*types.SignedBlock, error) {
	return c.api.RPC.Chain.GetBlock(hash)
}

// BlockEvents decodes the system event records of one block.
func (c *Connection) BlockEvents(hash types.Hash) (*Events, error) {
	key, err := types.CreateStorageKey(c.Metadata(), "System", "Events", nil)
	if err != nil {
		return nil, err
	}

	var raw types.EventRecordsRaw
	_, err = c.api.RPC.State.GetStorage(key, &raw, hash)
	if err != nil {
		return nil, err
	}

	events := &Events{}
	err = raw.DecodeEventRecords(c.Metadata(), events)
	if err != nil {
		return nil, fmt.Errorf("decoding events at %s: %w", hash.Hex(), err)
	}
	return events, nil
}

// SubmitAndWatch submits a signed extrinsic and blocks until it is finalized,
// returning the hash of the including block.
func (c *Connection) SubmitAndWatch(ctx context.Context, ext types.Extrinsic) (types.Hash, error) {
	sub, err := c.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return types.Hash{}, fmt.Errorf("submitting extrinsic: %w", err)
	}
	defer sub.Unsubscribe()

	return AwaitFinalization(ctx, c.finalityTimeout, sub.Chan(), sub.Err())
}

// AwaitFinalization drives one extrinsic status stream to a terminal state.
// An extrinsic that has not finalized within timeout is reported as failed
// instead of being watched forever.
func AwaitFinalization(
	ctx context.Context,
	timeout time.Duration,
	statuses <-chan types.ExtrinsicStatus,
	errs <-chan error,
) (types.Hash, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case status := <-statuses:
			switch {
			case status.IsFinalized:
				return status.AsFinalized, nil
			case status.IsDropped, status.IsInvalid, status.IsUsurped:
				return types.Hash{}, fmt.Errorf("extrinsic not included: %s", extrinsicStatus(status))
			default:
				log.Debug().Msgf("Extrinsic status %s", extrinsicStatus(status))
			}
		case err := <-errs:
			return types.Hash{}, err
		case <-timer.C:
			return types.Hash{}, fmt.Errorf("extrinsic not finalized within %s", timeout)
		case <-ctx.Done():
			return types.Hash{}, ctx.Err()
		}
	}
}

func extrinsicStatus(status types.ExtrinsicStatus) string {
	switch {
	case status.IsInBlock:
		return "in block"
	case status.IsFinalized:
		return "finalized"
	case status.IsDropped:
		return "dropped"
	case status.IsInvalid:
		return "invalid"
	case status.IsUsurped:
		return "usurped"
	case status.IsBroadcast:
		return "broadcast"
	case status.IsReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ReadState reads a program's state through the state route in payload.
func (c *Connection) ReadState(ctx context.Context, program types.Hash, payload []byte) ([]byte, error) {
	var res string
	err := c.api.Client.Call(
		&res,
		"gear_readState",
		program.Hex(),
		codec.HexEncodeToString(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("reading state of %s: %w", program.Hex(), err)
	}
	return codec.HexDecodeString(res)
}
