// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/chains/evm"
	mock_evm "github.com/vortexbridge/bridge-core/chains/evm/mock"
	"github.com/vortexbridge/bridge-core/config"
)

var (
	senderAddress  = common.HexToAddress("0xad8b09f1f3e9a1f5f1f0d24d2fbb5f29b0b0f25f")
	managerAddress = common.HexToAddress("0x18f9ca30ae9e4e01bc4e2b313f0faa897c9fb3a3")
	paymentAddress = common.HexToAddress("0x92ca30ae9e4e01bc4e2b313f0faa897c9fb3a3aa")
	vftDestination = "0x1f35c411b5807abbdc6e1bbb3fd25bbc1a27b0d64465a1ef3a6d809f1f3e9a1f"
)

type BuilderTestSuite struct {
	suite.Suite
	estimator *mock_evm.MockGasEstimator
	manager   *mock_evm.MockManagerContract
	payment   *mock_evm.MockPaymentContract
	erc20     *mock_evm.MockTokenContract
	builder   *evm.StepBuilder

	token config.Token
}

func TestRunBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.estimator = mock_evm.NewMockGasEstimator(ctrl)
	s.manager = mock_evm.NewMockManagerContract(ctrl)
	s.payment = mock_evm.NewMockPaymentContract(ctrl)
	s.erc20 = mock_evm.NewMockTokenContract(ctrl)
	s.builder = evm.NewStepBuilder(
		senderAddress,
		s.manager,
		s.payment,
		func(common.Address) evm.TokenContract { return s.erc20 },
		s.estimator,
		nil,
	)

	s.token = config.Token{
		Address: "0x7af963cf6d228e564e2a0aa0ddbf06210b38615d",
		Chain:   bridge.ChainEthereum,
		Symbol:  "WVARA",
	}
}

func (s *BuilderTestSuite) Test_ValidateDestination_Valid() {
	s.Nil(s.builder.ValidateDestination(vftDestination))
}

func (s *BuilderTestSuite) Test_ValidateDestination_NotHex() {
	s.NotNil(s.builder.ValidateDestination("not-an-account"))
}

func (s *BuilderTestSuite) Test_ValidateDestination_WrongLength() {
	s.NotNil(s.builder.ValidateDestination("0x7af963cf6d228e564e2a0aa0ddbf06210b38615d"))
}

func (s *BuilderTestSuite) Test_Mint_AttachesAmountAsValue() {
	amount := big.NewInt(1000)
	tokenAddress := common.HexToAddress(s.token.Address)
	s.erc20.EXPECT().PackDeposit().Return([]byte{0x01}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), senderAddress, tokenAddress, []byte{0x01}, amount).
		Return(uint64(45000), nil)

	step, err := s.builder.Mint(context.Background(), s.token, amount)

	s.Nil(err)
	s.Equal(plan.StepMint, step.Kind)
	s.Equal(bridge.ChainEthereum, step.Chain)
	s.Equal(uint64(45000), step.GasLimit)
	s.Equal(amount, step.Value)

	desc := step.Desc.(evm.CallDesc)
	s.Equal(tokenAddress, desc.To)
	s.Equal(amount, desc.Value)
}

func (s *BuilderTestSuite) Test_Approve_RequiresVerifiedAmount() {
	amount := big.NewInt(1000)
	tokenAddress := common.HexToAddress(s.token.Address)
	s.manager.EXPECT().Address().Return(managerAddress)
	s.erc20.EXPECT().PackApprove(managerAddress, amount).Return([]byte{0x02}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), senderAddress, tokenAddress, []byte{0x02}, nil).
		Return(uint64(60000), nil)

	step, err := s.builder.Approve(context.Background(), s.token, amount)

	s.Nil(err)
	s.Equal(plan.StepApprove, step.Kind)

	desc := step.Desc.(evm.CallDesc)
	s.Equal(amount, desc.MinApproved)
	s.Nil(desc.Value)
}

func (s *BuilderTestSuite) Test_BridgeRequest_NoFeeNoPermit() {
	amount := big.NewInt(1000)
	s.manager.EXPECT().Address().Return(managerAddress).Times(2)
	s.manager.EXPECT().PackRequestBridging(
		common.HexToAddress(s.token.Address), amount, gomock.Any(),
	).Return([]byte{0x03}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), senderAddress, managerAddress, []byte{0x03}, nil).
		Return(uint64(120000), nil)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, vftDestination, big.NewInt(0), nil, false)

	s.Nil(err)
	s.Equal(plan.StepBridgeRequest, step.Kind)
	s.Nil(step.Value)
}

func (s *BuilderTestSuite) Test_BridgeRequest_ProcessingFeeAttached() {
	amount := big.NewInt(1000)
	fee := big.NewInt(77)
	s.manager.EXPECT().Address().Return(managerAddress).Times(2)
	s.manager.EXPECT().PackRequestBridging(
		common.HexToAddress(s.token.Address), amount, gomock.Any(),
	).Return([]byte{0x03}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), senderAddress, managerAddress, []byte{0x03}, fee).
		Return(uint64(120000), nil)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, vftDestination, fee, nil, false)

	s.Nil(err)
	s.Equal(fee, step.Value)
}

func (s *BuilderTestSuite) Test_BridgeRequest_PermitFolded() {
	amount := big.NewInt(1000)
	permit := &plan.PermitSignature{Deadline: big.NewInt(1900000000), V: 27}
	s.manager.EXPECT().Address().Return(managerAddress).Times(2)
	s.manager.EXPECT().PackRequestBridgingWithPermit(
		common.HexToAddress(s.token.Address), amount, gomock.Any(), permit.Deadline, permit.V, permit.R, permit.S,
	).Return([]byte{0x04}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), senderAddress, managerAddress, []byte{0x04}, nil).
		Return(uint64(140000), nil)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, vftDestination, nil, permit, false)

	s.Nil(err)
	desc := step.Desc.(evm.CallDesc)
	s.Equal("requestBridgingWithPermit", desc.Method)
}

func (s *BuilderTestSuite) Test_BridgeRequest_PendingSetupSkipsEstimation() {
	amount := big.NewInt(1000)
	s.manager.EXPECT().Address().Return(managerAddress)
	s.manager.EXPECT().PackRequestBridging(
		common.HexToAddress(s.token.Address), amount, gomock.Any(),
	).Return([]byte{0x03}, nil)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, vftDestination, nil, nil, true)

	s.Nil(err)
	// transferFrom would revert against the pre-approval allowance, so the
	// step must carry the fixed limit instead of a live estimate.
	s.Equal(uint64(evm.BRIDGE_REQUEST_GAS_FALLBACK), step.GasLimit)
}

func (s *BuilderTestSuite) Test_BridgeRequest_InvalidDestination() {
	_, err := s.builder.BridgeRequest(context.Background(), s.token, big.NewInt(1000), "not-an-account", nil, nil, false)

	s.NotNil(err)
}

func (s *BuilderTestSuite) Test_PayFee_DeferredUntilNonceKnown() {
	fee := big.NewInt(200)
	s.payment.EXPECT().Address().Return(paymentAddress)

	step, err := s.builder.PayFee(context.Background(), fee)

	s.Nil(err)
	s.Equal(plan.StepPayFee, step.Kind)
	s.True(step.Deferred)
	s.Equal(uint64(evm.PAY_FEE_GAS_CEILING), step.GasLimit)
	s.Equal(fee, step.Value)

	desc := step.Desc.(evm.CallDesc)
	s.Nil(desc.Data)
	s.NotNil(desc.PackWithNonce)

	s.payment.EXPECT().PackPayFee(big.NewInt(42)).Return([]byte{0x05}, nil)
	data, err := desc.PackWithNonce(big.NewInt(42))
	s.Nil(err)
	s.Equal([]byte{0x05}, data)
}

func (s *BuilderTestSuite) Test_PayPriorityFee_Unsupported() {
	_, err := s.builder.PayPriorityFee(context.Background(), big.NewInt(100))

	s.ErrorIs(err, plan.ErrPriorityFeeUnsupported)
}

func (s *BuilderTestSuite) Test_Mint_EstimationFails() {
	s.erc20.EXPECT().PackDeposit().Return([]byte{0x01}, nil)
	s.estimator.EXPECT().EstimateGas(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uint64(0), errors.New("execution reverted"))

	_, err := s.builder.Mint(context.Background(), s.token, big.NewInt(1000))

	s.NotNil(err)
}
