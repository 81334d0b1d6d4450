// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// UserMessage is a message a Gear program sent to an off-chain user. Program
// events arrive as user messages addressed to the zero account.
type UserMessage struct {
	ID          types.Hash
	Source      types.Hash
	Destination types.Hash
	Payload     types.Bytes
	Value       types.U128
	Details     OptionReplyDetails
}

type OptionReplyDetails struct {
	HasValue bool
	Value    ReplyDetails
}

func (o *OptionReplyDetails) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if b == 0 {
		return nil
	}

	o.HasValue = true
	return decoder.Decode(&o.Value)
}

type ReplyDetails struct {
	To   types.Hash
	Code ReplyCode
}

// ReplyCode is the runtime reply status enum. The variant payloads are simple
// nested enums, kept as raw bytes.
type ReplyCode struct {
	Variant byte
	Reason  []byte
}

func (rc *ReplyCode) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	rc.Variant = b

	var reasonLen int
	switch b {
	case 0:
		reasonLen = 1
	case 1:
		reasonLen = 2
	default:
		return nil
	}

	rc.Reason = make([]byte, reasonLen)
	for i := range rc.Reason {
		rb, err := decoder.ReadOneByte()
		if err != nil {
			return err
		}
		rc.Reason[i] = rb
	}
	return nil
}

// MessageEntry is the dispatch kind of a queued message.
type MessageEntry struct {
	Variant byte
	ReplyTo types.Hash
}

func (e *MessageEntry) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	e.Variant = b

	// Reply(MessageId)
	if b == 2 {
		return decoder.Decode(&e.ReplyTo)
	}
	return nil
}

type MessageStatusEntry struct {
	ID     types.Hash
	Status byte
}

type EventGearMessageQueued struct {
	Phase       types.Phase
	ID          types.Hash
	Source      types.Hash
	Destination types.Hash
	Entry       MessageEntry
	Topics      []types.Hash
}

type EventGearUserMessageSent struct {
	Phase      types.Phase
	Message    UserMessage
	Expiration types.OptionU32
	Topics     []types.Hash
}

// ReadReason is the two-level reason enum attached to read events.
type ReadReason struct {
	Variant byte
	Detail  byte
}

func (r *ReadReason) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	r.Variant = b

	d, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	r.Detail = d
	return nil
}

type EventGearUserMessageRead struct {
	Phase  types.Phase
	ID     types.Hash
	Reason ReadReason
	Topics []types.Hash
}

type EventGearMessagesDispatched struct {
	Phase        types.Phase
	Total        types.U32
	Statuses     []MessageStatusEntry
	StateChanges []types.Hash
	Topics       []types.Hash
}

type EventGearQueueNotProcessed struct {
	Phase  types.Phase
	Topics []types.Hash
}

// Events extends the standard event records with the Gear pallet events this
// runtime emits in every block that touches the message queue.
type Events struct {
	types.EventRecords
	Gear_MessageQueued      []EventGearMessageQueued      //nolint:stylecheck
	Gear_UserMessageSent    []EventGearUserMessageSent    //nolint:stylecheck
	Gear_UserMessageRead    []EventGearUserMessageRead    //nolint:stylecheck
	Gear_MessagesDispatched []EventGearMessagesDispatched //nolint:stylecheck
	Gear_QueueNotProcessed  []EventGearQueueNotProcessed  //nolint:stylecheck
}

// BridgingRequested is the bridging event payload the VFT manager program
// emits once a request message is processed.
type BridgingRequested struct {
	Nonce       types.U256
	VaraTokenID types.Hash
	Amount      types.U256
	Sender      types.Hash
	Receiver    types.H160
}
