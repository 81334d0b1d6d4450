// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package plan_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge/plan"
	mock_plan "github.com/vortexbridge/bridge-core/bridge/plan/mock"
	"github.com/vortexbridge/bridge-core/config"
	"github.com/vortexbridge/bridge-core/fees"
)

type PlannerTestSuite struct {
	suite.Suite
	builder *mock_plan.MockStepBuilder
	planner *plan.Planner
}

func TestRunPlannerTestSuite(t *testing.T) {
	suite.Run(t, new(PlannerTestSuite))
}

func (s *PlannerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.builder = mock_plan.NewMockStepBuilder(ctrl)
	s.planner = plan.NewPlanner(s.builder)
}

func (s *PlannerTestSuite) request() plan.Request {
	return plan.Request{
		Token: config.Token{
			Address: "0x18f9cA30aE9E4E01BC4e2b313f0Faa897c9fB3a3",
			Symbol:  "WVARA",
		},
		Amount:      big.NewInt(1000),
		Destination: "0x5a8b09f1f3e9a1f5f1f0d24d2fbb5f29b0b0f25f",
		Allowance:   big.NewInt(5000),
		Fees: &fees.FeePolicy{
			BridgingFee:              big.NewInt(200),
			DestinationProcessingFee: big.NewInt(0),
		},
	}
}

func (s *PlannerTestSuite) Test_Plan_InvalidAmount() {
	req := s.request()
	req.Amount = big.NewInt(0)

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrInvalidAmount)
}

func (s *PlannerTestSuite) Test_Plan_NilAmount() {
	req := s.request()
	req.Amount = nil

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrInvalidAmount)
}

func (s *PlannerTestSuite) Test_Plan_AllowanceNotResolved() {
	req := s.request()
	req.Allowance = nil

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrAllowanceNotResolved)
}

func (s *PlannerTestSuite) Test_Plan_FeesNotResolved() {
	req := s.request()
	req.Fees = &fees.FeePolicy{BridgingFee: big.NewInt(200)}

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrFeesNotResolved)
}

func (s *PlannerTestSuite) Test_Plan_InvalidDestination() {
	req := s.request()
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(errors.New("not an address"))

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrInvalidDestination)
}

func (s *PlannerTestSuite) Test_Plan_SufficientAllowance() {
	req := s.request()
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, false,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 1)
	s.Equal(plan.StepBridgeRequest, p[0].Kind)
}

func (s *PlannerTestSuite) Test_Plan_NativeTokenMintsFirst() {
	req := s.request()
	req.Token.IsNative = true
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().Mint(gomock.Any(), req.Token, req.Amount).Return(plan.Step{Kind: plan.StepMint}, nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, true,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 2)
	s.Equal(plan.StepMint, p[0].Kind)
	s.Equal(plan.StepBridgeRequest, p[1].Kind)
}

func (s *PlannerTestSuite) Test_Plan_InsufficientAllowanceAddsApproval() {
	req := s.request()
	req.Allowance = big.NewInt(10)
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().Approve(gomock.Any(), req.Token, req.Amount).Return(plan.Step{Kind: plan.StepApprove}, nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, true,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 2)
	s.Equal(plan.StepApprove, p[0].Kind)
	s.Equal(plan.StepBridgeRequest, p[1].Kind)
}

func (s *PlannerTestSuite) Test_Plan_PermitFoldedIntoBridgeRequest() {
	req := s.request()
	req.Allowance = big.NewInt(10)
	req.Token.SupportsPermit = true
	permit := &plan.PermitSignature{Deadline: big.NewInt(1900000000), V: 27}
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().Permit(gomock.Any(), req.Token, req.Amount).Return(permit, nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, permit, true,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 1)
	s.Equal(plan.StepBridgeRequest, p[0].Kind)
}

func (s *PlannerTestSuite) Test_Plan_EstimationNeverPromptsForPermit() {
	req := s.request()
	req.Allowance = big.NewInt(10)
	req.Token.SupportsPermit = true
	req.ForEstimate = true
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, true,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 1)
}

func (s *PlannerTestSuite) Test_Plan_PermitFails() {
	req := s.request()
	req.Allowance = big.NewInt(10)
	req.Token.SupportsPermit = true
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().Permit(gomock.Any(), req.Token, req.Amount).Return(nil, errors.New("signing rejected"))

	_, err := s.planner.Plan(context.Background(), req)

	s.NotNil(err)
}

func (s *PlannerTestSuite) Test_Plan_PayDestinationFeeNow() {
	req := s.request()
	req.PayDestinationFeeNow = true
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, false,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)
	s.builder.EXPECT().PayFee(gomock.Any(), req.Fees.BridgingFee).Return(plan.Step{Kind: plan.StepPayFee, Deferred: true}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 2)
	s.Equal(plan.StepPayFee, p[1].Kind)
	s.True(p[1].Deferred)
	s.Len(p.Immediate(), 1)
	s.Len(p.Deferred(), 1)
}

func (s *PlannerTestSuite) Test_Plan_PriorityFeeUnsupported() {
	req := s.request()
	req.PayPriorityFeeNow = true
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, false,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)

	_, err := s.planner.Plan(context.Background(), req)

	s.ErrorIs(err, plan.ErrPriorityFeeUnsupported)
}

func (s *PlannerTestSuite) Test_Plan_PayPriorityFeeNow() {
	req := s.request()
	req.PayPriorityFeeNow = true
	req.Fees.PriorityFee = big.NewInt(50)
	s.builder.EXPECT().ValidateDestination(req.Destination).Return(nil)
	s.builder.EXPECT().BridgeRequest(
		gomock.Any(), req.Token, req.Amount, req.Destination, req.Fees.DestinationProcessingFee, nil, false,
	).Return(plan.Step{Kind: plan.StepBridgeRequest}, nil)
	s.builder.EXPECT().PayPriorityFee(gomock.Any(), req.Fees.PriorityFee).Return(plan.Step{Kind: plan.StepPayPriorityFee, Deferred: true}, nil)

	p, err := s.planner.Plan(context.Background(), req)

	s.Nil(err)
	s.Len(p, 2)
	s.Equal(plan.StepPayPriorityFee, p[1].Kind)
}
