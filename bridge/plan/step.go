// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package plan

import (
	"fmt"
	"math/big"

	"github.com/vortexbridge/bridge-core/bridge"
)

type StepKind uint8

const (
	StepMint StepKind = iota
	StepApprove
	StepPermit
	StepBridgeRequest
	StepPayFee
	StepPayPriorityFee
)

func (k StepKind) String() string {
	switch k {
	case StepMint:
		return "mint"
	case StepApprove:
		return "approve"
	case StepPermit:
		return "permit"
	case StepBridgeRequest:
		return "bridgeRequest"
	case StepPayFee:
		return "payFee"
	case StepPayPriorityFee:
		return "payPriorityFee"
	default:
		return fmt.Sprintf("step(%d)", uint8(k))
	}
}

// Step describes one atomic on-chain call. Steps are created fresh per
// planning pass and never mutated afterwards; list order is significant and
// preserved through estimation and execution.
type Step struct {
	Kind  StepKind
	Chain bridge.Chain
	Desc  bridge.CallDescriptor

	GasLimit uint64
	// Value is the native amount attached to the call, nil when none.
	Value *big.Int

	// Bundlable steps may be coalesced into one atomic multi-call on chains
	// that support it.
	Bundlable bool
	// Deferred steps execute only after the bridging nonce is known and are
	// never part of the primary submission.
	Deferred bool
}

// Plan is an ordered sequence of steps owned by one in-flight submission.
type Plan []Step

// Immediate returns the steps of the primary submission, in plan order.
func (p Plan) Immediate() []Step {
	steps := make([]Step, 0, len(p))
	for _, s := range p {
		if !s.Deferred {
			steps = append(steps, s)
		}
	}
	return steps
}

// Deferred returns the fee-payment steps that wait on the bridging nonce.
func (p Plan) Deferred() []Step {
	steps := make([]Step, 0, 2)
	for _, s := range p {
		if s.Deferred {
			steps = append(steps, s)
		}
	}
	return steps
}

// Index returns the position of the first step of the given kind, or -1.
func (p Plan) Index(kind StepKind) int {
	for i, s := range p {
		if s.Kind == kind {
			return i
		}
	}
	return -1
}
