// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package submit_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge/correlate"
	mock_correlate "github.com/vortexbridge/bridge-core/bridge/correlate/mock"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/bridge/submit"
	mock_submit "github.com/vortexbridge/bridge-core/bridge/submit/mock"
	"github.com/vortexbridge/bridge-core/metrics"
)

type fakeSubscription struct {
	events chan correlate.Event
	errs   chan error
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		events: make(chan correlate.Event, 8),
		errs:   make(chan error, 1),
	}
}

func (s *fakeSubscription) Events() <-chan correlate.Event { return s.events }
func (s *fakeSubscription) Err() <-chan error              { return s.errs }
func (s *fakeSubscription) Unsubscribe()                   {}

type SubmitterTestSuite struct {
	suite.Suite
	executor  *mock_submit.MockExecutor
	source    *mock_correlate.MockEventSource
	submitter *submit.Submitter
	match     correlate.Match
}

func TestRunSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(SubmitterTestSuite))
}

func (s *SubmitterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.executor = mock_submit.NewMockExecutor(ctrl)
	s.source = mock_correlate.NewMockEventSource(ctrl)

	bridgeMetrics, err := metrics.NewBridgeMetrics(noop.NewMeterProvider().Meter("test"))
	s.Nil(err)
	s.submitter = submit.NewSubmitter(s.executor, bridgeMetrics)

	s.match = correlate.Match{
		Token:    "0x18f9cA30aE9E4E01BC4e2b313f0Faa897c9fB3a3",
		Amount:   big.NewInt(1000),
		Sender:   "0xaD8b09f1F3E9A1F5F1f0D24D2fBb5f29B0b0F25f",
		Receiver: "0x5a8b09f1f3e9a1f5f1f0d24d2fbb5f29b0b0f25f",
	}
}

func (s *SubmitterTestSuite) matchingEvent(nonce int64) correlate.Event {
	return correlate.Event{
		Nonce:    big.NewInt(nonce),
		Token:    s.match.Token,
		Amount:   s.match.Amount,
		Sender:   s.match.Sender,
		Receiver: s.match.Receiver,
	}
}

func (s *SubmitterTestSuite) Test_Submit_NoDeferredSteps() {
	p := plan.Plan{
		{Kind: plan.StepApprove},
		{Kind: plan.StepBridgeRequest},
	}
	s.executor.EXPECT().Execute(gomock.Any(), []plan.Step(p)).Return(nil)
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.Success, outcome.Status)
	s.Equal(-1, outcome.FailedStep)
}

func (s *SubmitterTestSuite) Test_Submit_ImmediateStepFails() {
	p := plan.Plan{
		{Kind: plan.StepApprove},
		{Kind: plan.StepBridgeRequest},
	}
	cause := errors.New("reverted")
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(&submit.StepError{Index: 1, Err: cause})
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.StepFailed, outcome.Status)
	s.Equal(1, outcome.FailedStep)
	s.ErrorIs(outcome.Cause, cause)
}

func (s *SubmitterTestSuite) Test_Submit_SubscriptionFailsBeforeSubmission() {
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	s.source.EXPECT().Subscribe(gomock.Any()).Return(nil, errors.New("rpc down"))
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.CorrelationFailed, outcome.Status)
	s.Equal(-1, outcome.FailedStep)
}

func (s *SubmitterTestSuite) Test_Submit_DeferredFeeFlow() {
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	sub := newFakeSubscription()
	s.source.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)
	s.executor.EXPECT().Execute(gomock.Any(), []plan.Step{p[0]}).DoAndReturn(
		func(ctx context.Context, steps []plan.Step) error {
			sub.events <- s.matchingEvent(42)
			return nil
		})
	s.executor.EXPECT().ExecuteDeferred(gomock.Any(), []plan.Step{p[1]}, big.NewInt(42)).Return(nil)
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.Success, outcome.Status)
	s.Equal(correlate.Done, correlator.State())
}

func (s *SubmitterTestSuite) Test_Submit_DeferredStepFailureMapsToPlanIndex() {
	p := plan.Plan{
		{Kind: plan.StepApprove},
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	sub := newFakeSubscription()
	s.source.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, steps []plan.Step) error {
			sub.events <- s.matchingEvent(42)
			return nil
		})
	s.executor.EXPECT().ExecuteDeferred(gomock.Any(), gomock.Any(), big.NewInt(42)).
		Return(&submit.StepError{Index: 0, Err: errors.New("fee payment reverted")})
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.StepFailed, outcome.Status)
	s.Equal(2, outcome.FailedStep)
}

// Concurrent submissions share one submitter and one metrics instance; each
// run must track its own correlation independently.
func (s *SubmitterTestSuite) Test_Submit_ConcurrentSubmissions() {
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	subs := []*fakeSubscription{newFakeSubscription(), newFakeSubscription()}
	var next int32
	s.source.EXPECT().Subscribe(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (correlate.Subscription, error) {
			return subs[atomic.AddInt32(&next, 1)-1], nil
		}).Times(2)
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, steps []plan.Step) error {
			for _, sub := range subs {
				sub.events <- s.matchingEvent(42)
			}
			return nil
		}).Times(2)
	s.executor.EXPECT().ExecuteDeferred(gomock.Any(), gomock.Any(), big.NewInt(42)).Return(nil).Times(2)

	runs := pool.New().WithErrors()
	for i := 0; i < 2; i++ {
		runs.Go(func() error {
			correlator := correlate.NewCorrelator(s.source, s.match)
			outcome := s.submitter.Submit(context.Background(), p, correlator)
			if outcome.Status != submit.Success {
				return fmt.Errorf("submission ended in status %d", outcome.Status)
			}
			return nil
		})
	}

	s.Nil(runs.Wait())
}

func (s *SubmitterTestSuite) Test_Submit_CorrelationFailsAfterSubmission() {
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	sub := newFakeSubscription()
	s.source.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, steps []plan.Step) error {
			sub.errs <- errors.New("stream interrupted")
			return nil
		})
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.CorrelationFailed, outcome.Status)
	s.ErrorIs(outcome.Cause, correlate.ErrSubscription)
}

func (s *SubmitterTestSuite) Test_Submit_PrimaryFailureClosesSubscription() {
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest},
		{Kind: plan.StepPayFee, Deferred: true},
	}
	sub := newFakeSubscription()
	s.source.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&submit.StepError{Index: 0, Err: errors.New("reverted")})
	correlator := correlate.NewCorrelator(s.source, s.match)

	outcome := s.submitter.Submit(context.Background(), p, correlator)

	s.Equal(submit.StepFailed, outcome.Status)
	s.Equal(0, outcome.FailedStep)
	s.Equal(correlate.Failed, correlator.State())
}
