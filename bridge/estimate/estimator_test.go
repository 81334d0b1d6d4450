// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package estimate_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge/estimate"
	mock_estimate "github.com/vortexbridge/bridge-core/bridge/estimate/mock"
	"github.com/vortexbridge/bridge-core/bridge/plan"
)

type EstimatorTestSuite struct {
	suite.Suite
	pricer    *mock_estimate.MockGasPricer
	estimator *estimate.Estimator
}

func TestRunEstimatorTestSuite(t *testing.T) {
	suite.Run(t, new(EstimatorTestSuite))
}

func (s *EstimatorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.pricer = mock_estimate.NewMockGasPricer(ctrl)
	s.estimator = estimate.NewEstimator(s.pricer)
}

func (s *EstimatorTestSuite) Test_Estimate_GasPriceUnavailable() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(nil, errors.New("rpc down"))

	_, err := s.estimator.Estimate(context.Background(), plan.Plan{})

	s.NotNil(err)
}

func (s *EstimatorTestSuite) Test_Estimate_SumsGasAcrossSteps() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(big.NewInt(10), nil)
	p := plan.Plan{
		{Kind: plan.StepApprove, GasLimit: 50000},
		{Kind: plan.StepBridgeRequest, GasLimit: 100000},
	}

	costs, err := s.estimator.Estimate(context.Background(), p)

	s.Nil(err)
	s.Equal(big.NewInt(1500000), costs.RequiredBalance)
	s.Equal(big.NewInt(1500000), costs.TotalFees)
}

func (s *EstimatorTestSuite) Test_Estimate_MintValueIsNotAFee() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	p := plan.Plan{
		{Kind: plan.StepMint, GasLimit: 100, Value: big.NewInt(1000)},
		{Kind: plan.StepBridgeRequest, GasLimit: 200},
	}

	costs, err := s.estimator.Estimate(context.Background(), p)

	s.Nil(err)
	// The minted amount counts toward the balance the user needs, not fees.
	s.Equal(big.NewInt(1300), costs.RequiredBalance)
	s.Equal(big.NewInt(300), costs.TotalFees)
}

func (s *EstimatorTestSuite) Test_Estimate_CostsGrowWithThePlan() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(big.NewInt(7), nil).Times(3)
	base := plan.Plan{
		{Kind: plan.StepApprove, GasLimit: 50000},
		{Kind: plan.StepBridgeRequest, GasLimit: 100000, Value: big.NewInt(400)},
	}
	moreGas := plan.Plan{
		{Kind: plan.StepApprove, GasLimit: 50000},
		{Kind: plan.StepBridgeRequest, GasLimit: 100001, Value: big.NewInt(400)},
	}
	moreValue := plan.Plan{
		{Kind: plan.StepApprove, GasLimit: 50000},
		{Kind: plan.StepBridgeRequest, GasLimit: 100000, Value: big.NewInt(401)},
	}

	baseCosts, err := s.estimator.Estimate(context.Background(), base)
	s.Nil(err)
	gasCosts, err := s.estimator.Estimate(context.Background(), moreGas)
	s.Nil(err)
	valueCosts, err := s.estimator.Estimate(context.Background(), moreValue)
	s.Nil(err)

	s.Equal(1, gasCosts.RequiredBalance.Cmp(baseCosts.RequiredBalance))
	s.Equal(1, valueCosts.RequiredBalance.Cmp(baseCosts.RequiredBalance))
}

func (s *EstimatorTestSuite) Test_Estimate_RepeatedEstimatesAgree() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(big.NewInt(3), nil).Times(2)
	p := plan.Plan{
		{Kind: plan.StepMint, GasLimit: 100, Value: big.NewInt(1000)},
		{Kind: plan.StepBridgeRequest, GasLimit: 200, Value: big.NewInt(500)},
		{Kind: plan.StepPayFee, GasLimit: 100, Value: big.NewInt(250), Deferred: true},
	}

	first, err := s.estimator.Estimate(context.Background(), p)
	s.Nil(err)
	second, err := s.estimator.Estimate(context.Background(), p)
	s.Nil(err)

	s.Equal(first.RequiredBalance, second.RequiredBalance)
	s.Equal(first.TotalFees, second.TotalFees)
}

func (s *EstimatorTestSuite) Test_Estimate_FeeValuesCountTwice() {
	s.pricer.EXPECT().GasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	p := plan.Plan{
		{Kind: plan.StepBridgeRequest, GasLimit: 200, Value: big.NewInt(500)},
		{Kind: plan.StepPayFee, GasLimit: 100, Value: big.NewInt(250), Deferred: true},
	}

	costs, err := s.estimator.Estimate(context.Background(), p)

	s.Nil(err)
	s.Equal(big.NewInt(1050), costs.RequiredBalance)
	s.Equal(big.NewInt(1050), costs.TotalFees)
}
