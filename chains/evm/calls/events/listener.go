// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge/correlate"
	"github.com/vortexbridge/bridge-core/chains/evm/calls/consts"
)

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error)
	LatestBlock() (*big.Int, error)
}

// Listener watches the ERC20 manager for bridging request events. Each
// Subscribe call opens an independent polling stream so concurrent
// submissions never share a subscription.
type Listener struct {
	client       ChainClient
	manager      common.Address
	pollInterval time.Duration
}

func NewListener(client ChainClient, manager common.Address, pollInterval time.Duration) *Listener {
	return &Listener{
		client:       client,
		manager:      manager,
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

// Subscribe starts polling from the current head. The cursor is captured
// before Subscribe returns, so events emitted after the subsequent bridge
// request submission cannot be missed.
func (l *Listener) Subscribe(ctx context.Context) (correlate.Subscription, error) {
	startBlock, err := l.client.LatestBlock()
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan correlate.Event),
		errs:   make(chan error, 1),
		cancel: cancel,
	}
	go l.poll(subCtx, sub, startBlock)

	return sub, nil
}

func (l *Listener) poll(ctx context.Context, sub *subscription, lastBlock *big.Int) {
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			head, err := l.client.LatestBlock()
			if err != nil {
				log.Warn().Err(err).Msg("Failed fetching latest block")
				continue
			}
			if head.Cmp(lastBlock) <= 0 {
				continue
			}

			startBlock := new(big.Int).Add(lastBlock, big.NewInt(1))
			logs, err := l.client.FetchEventLogs(ctx, l.manager, string(BridgingRequestedSig), startBlock, head)
			if err != nil {
				select {
				case sub.errs <- err:
				case <-ctx.Done():
				}
				return
			}

			for _, lg := range logs {
				event, err := l.unpackBridgingRequested(lg.Data)
				if err != nil {
					log.Err(err).Msg("Failed unpacking bridging requested event log")
					continue
				}

				select {
				case sub.events <- correlate.Event{
					Nonce:    event.Nonce,
					Token:    event.Token.Hex(),
					Amount:   event.Amount,
					Sender:   event.Sender.Hex(),
					Receiver: hexutil.Encode(event.Receiver[:]),
				}:
				case <-ctx.Done():
					return
				}
			}
			lastBlock = head
		case <-ctx.Done():
			return
		}
	}
}

func (l *Listener) unpackBridgingRequested(data []byte) (*BridgingRequested, error) {
	var br BridgingRequested
	err := consts.ERC20ManagerABI.UnpackIntoInterface(&br, "BridgingRequested", data)
	if err != nil {
		return nil, err
	}

	return &br, nil
}
