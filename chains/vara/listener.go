// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"context"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge/correlate"
)

type BlockSource interface {
	FinalizedHeader() (*types.Header, error)
	BlockHash(blockNumber uint64) (types.Hash, error)
	BlockEvents(hash types.Hash) (*Events, error)
}

// Listener watches the VFT manager program for bridging request events. The
// program emits them as user messages; the listener walks finalized blocks
// and decodes matching payloads.
type Listener struct {
	source       BlockSource
	vftManager   types.Hash
	pollInterval time.Duration
}

func NewListener(source BlockSource, vftManager types.Hash, pollInterval time.Duration) *Listener {
	return &Listener{
		source:       source,
		vftManager:   vftManager,
		pollInterval: pollInterval,
	}
}

type subscription struct {
	events chan correlate.Event
	errs   chan error
	cancel context.CancelFunc
}

func (s *subscription) Events() <-chan correlate.Event {
	return s.events
}

func (s *subscription) Err() <-chan error {
	return s.errs
}

func (s *subscription) Unsubscribe() {
	s.cancel()
}

// Subscribe starts walking finalized blocks from the current head. The
// cursor is captured before Subscribe returns, so events finalized after the
// subsequent submission cannot be missed.
func (l *Listener) Subscribe(ctx context.Context) (correlate.Subscription, error) {
	head, err := l.source.FinalizedHeader()
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan correlate.Event),
		errs:   make(chan error, 1),
		cancel: cancel,
	}
	go l.poll(subCtx, sub, uint64(head.Number))

	return sub, nil
}

func (l *Listener) poll(ctx context.Context, sub *subscription, lastBlock uint64) {
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			head, err := l.source.FinalizedHeader()
			if err != nil {
				log.Warn().Err(err).Msg("Failed fetching finalized header")
				continue
			}

			for blockNumber := lastBlock + 1; blockNumber <= uint64(head.Number); blockNumber++ {
				if !l.processBlock(ctx, sub, blockNumber) {
					return
				}
				lastBlock = blockNumber
			}
		case <-ctx.Done():
			return
		}
	}
}

func (l *Listener) processBlock(ctx context.Context, sub *subscription, blockNumber uint64) bool {
	hash, err := l.source.BlockHash(blockNumber)
	if err != nil {
		select {
		case sub.errs <- err:
		case <-ctx.Done():
		}
		return false
	}

	events, err := l.source.BlockEvents(hash)
	if err != nil {
		// Event decoding fails on runtime events outside the known set.
		log.Warn().Err(err).Uint64("block", blockNumber).Msg("Skipping undecodable block events")
		return true
	}

	for _, msg := range events.Gear_UserMessageSent {
		if msg.Message.Source != l.vftManager {
			continue
		}

		var br BridgingRequested
		ok, err := DecodePayload(msg.Message.Payload, "VftManager", "BridgingRequested", &br)
		if err != nil {
			log.Err(err).Msg("Failed decoding bridging requested payload")
			continue
		}
		if !ok {
			continue
		}

		select {
		case sub.events <- correlate.Event{
			Nonce:    br.Nonce.Int,
			Token:    br.VaraTokenID.Hex(),
			Amount:   br.Amount.Int,
			Sender:   br.Sender.Hex(),
			Receiver: hexutil.Encode(br.Receiver[:]),
		}:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
