// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package submit

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vortexbridge/bridge-core/bridge/correlate"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/metrics"
)

// Executor runs steps against one paying chain. The batchable chain
// implementation coalesces all bundlable steps into one atomic multi-call
// signed once; the EVM implementation submits and awaits steps one by one.
// Either way there is exactly one signature prompt per signed submission.
type Executor interface {
	Execute(ctx context.Context, steps []plan.Step) error
	// ExecuteDeferred runs the fee-payment steps once the bridging nonce is
	// known. Always a separate signed submission.
	ExecuteDeferred(ctx context.Context, steps []plan.Step, nonce *big.Int) error
}

// Submitter executes one plan while the correlator listens for the bridging
// event in parallel. The plan is owned by this run and discarded afterwards;
// retries re-plan from fresh chain state.
type Submitter struct {
	executor Executor
	metrics  *metrics.BridgeMetrics
}

func NewSubmitter(executor Executor, metrics *metrics.BridgeMetrics) *Submitter {
	return &Submitter{
		executor: executor,
		metrics:  metrics,
	}
}

// Submit runs the plan to a terminal outcome. The correlator subscription is
// opened before the primary submission so the bridging event cannot be missed,
// and torn down on every exit path.
func (s *Submitter) Submit(ctx context.Context, p plan.Plan, correlator *correlate.Correlator) Outcome {
	start := time.Now()
	s.metrics.SubmissionStarted()

	var immediate, deferred []plan.Step
	var immediateIdx, deferredIdx []int
	for i, step := range p {
		if step.Deferred {
			deferred = append(deferred, step)
			deferredIdx = append(deferredIdx, i)
		} else {
			immediate = append(immediate, step)
			immediateIdx = append(immediateIdx, i)
		}
	}

	if len(deferred) > 0 {
		if err := correlator.Subscribe(ctx); err != nil {
			s.metrics.SubmissionFailed("correlation")
			return correlationFailed(err)
		}
	}

	if err := s.executor.Execute(ctx, immediate); err != nil {
		if len(deferred) > 0 {
			correlator.Close()
		}
		s.metrics.SubmissionFailed("execution")
		return failedAt(planIndex(immediateIdx, err), err)
	}

	if len(deferred) == 0 {
		return succeeded()
	}

	nonce, err := correlator.Wait(ctx)
	if err != nil {
		log.Err(err).Msg("Bridging request correlation failed after primary submission")
		s.metrics.SubmissionFailed("correlation")
		return correlationFailed(err)
	}
	s.metrics.RequestCorrelated(start)

	log.Debug().Str("nonce", nonce.String()).Msg("Bridging request matched, paying fees")
	if err := s.executor.ExecuteDeferred(ctx, deferred, nonce); err != nil {
		correlator.Close()
		s.metrics.SubmissionFailed("feePayment")
		return failedAt(planIndex(deferredIdx, err), err)
	}
	correlator.Done()

	return succeeded()
}

// planIndex maps an executor's slice-relative step error back onto the plan.
func planIndex(indexes []int, err error) int {
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		return -1
	}
	if stepErr.Index < 0 || stepErr.Index >= len(indexes) {
		return -1
	}
	return indexes[stepErr.Index]
}
