// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package correlate

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotSubscribed = errors.New("correlator not subscribed")
	ErrSubscription  = errors.New("bridging event subscription failed")
)

// Event is one bridging request observed on the paying chain. The nonce is
// assigned by the chain at inclusion time and is unknown to the caller
// beforehand, which is why correlation matches on the tuple instead of
// trusting call return values.
type Event struct {
	Nonce    *big.Int
	Token    string
	Amount   *big.Int
	Sender   string
	Receiver string
}

// Match is the in-flight request's identifying tuple.
type Match struct {
	Token    string
	Amount   *big.Int
	Sender   string
	Receiver string
}

// Matches requires equality on the full tuple; an event differing in any
// field, receiver included, must never trigger the dependent fee payment.
func (m Match) Matches(e Event) bool {
	return strings.EqualFold(m.Token, e.Token) &&
		strings.EqualFold(m.Sender, e.Sender) &&
		strings.EqualFold(m.Receiver, e.Receiver) &&
		m.Amount != nil && e.Amount != nil &&
		m.Amount.Cmp(e.Amount) == 0
}

// Subscription is a live bridging-event stream owned by exactly one
// correlator instance.
type Subscription interface {
	Events() <-chan Event
	Err() <-chan error
	Unsubscribe()
}

// EventSource opens bridging-event subscriptions on one paying chain.
type EventSource interface {
	Subscribe(ctx context.Context) (Subscription, error)
}

type State uint8

const (
	Idle State = iota
	Subscribed
	Matched
	Done
	Failed
)

// Correlator resolves the bridging nonce for one in-flight submission.
// Exactly one instance exists per submission; concurrent submissions use
// independent subscriptions to avoid cross-matching.
type Correlator struct {
	source EventSource
	match  Match

	mu    sync.Mutex
	state State
	sub   Subscription
}

func NewCorrelator(source EventSource, match Match) *Correlator {
	return &Correlator{
		source: source,
		match:  match,
		state:  Idle,
	}
}

func (c *Correlator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe opens the event subscription. It must complete before the bridge
// request is submitted so the event cannot be emitted ahead of the listener.
func (c *Correlator) Subscribe(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return fmt.Errorf("correlator already started in state %d", c.state)
	}

	sub, err := c.source.Subscribe(ctx)
	if err != nil {
		c.state = Failed
		return fmt.Errorf("%w: %s", ErrSubscription, err)
	}

	c.sub = sub
	c.state = Subscribed
	return nil
}

// Wait blocks until the first event matching the tuple arrives and returns
// its nonce. There is no built-in timeout; callers abort through ctx and must
// surface a stuck state rather than retry, since an implicit retry could
// double-pay the fee.
func (c *Correlator) Wait(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	if c.state != Subscribed {
		c.mu.Unlock()
		return nil, ErrNotSubscribed
	}
	sub := c.sub
	c.mu.Unlock()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				c.fail()
				return nil, fmt.Errorf("%w: event stream closed", ErrSubscription)
			}
			if !c.match.Matches(event) {
				log.Debug().
					Str("sender", event.Sender).
					Str("receiver", event.Receiver).
					Msg("Ignoring non-matching bridging event")
				continue
			}

			c.mu.Lock()
			c.state = Matched
			c.mu.Unlock()
			return event.Nonce, nil
		case err := <-sub.Err():
			c.fail()
			return nil, fmt.Errorf("%w: %s", ErrSubscription, err)
		case <-ctx.Done():
			c.Close()
			return nil, ctx.Err()
		}
	}
}

// Done marks the dependent fee payment as executed and tears the
// subscription down.
func (c *Correlator) Done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	c.state = Done
}

// Close unsubscribes immediately. Called when the primary submission fails
// before a match so no live subscription outlives the user action.
func (c *Correlator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	if c.state == Subscribed {
		c.state = Failed
	}
}

func (c *Correlator) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	c.state = Failed
}
