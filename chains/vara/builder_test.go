// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/chains/vara"
	mock_vara "github.com/vortexbridge/bridge-core/chains/vara/mock"
	"github.com/vortexbridge/bridge-core/config"
)

const (
	senderAccount     = "0x3b55c411b5807abbdc6e1bbb3fd25bbc1a27b0d64465a1ef3a6d809f1f3e9a3b"
	vftManagerProgram = "0x1f35c411b5807abbdc6e1bbb3fd25bbc1a27b0d64465a1ef3a6d809f1f3e9a1f"
	paymentProgram    = "0x2a45c411b5807abbdc6e1bbb3fd25bbc1a27b0d64465a1ef3a6d809f1f3e9a2a"
	tokenProgram      = "0x4c65c411b5807abbdc6e1bbb3fd25bbc1a27b0d64465a1ef3a6d809f1f3e9a4c"
	ethereumAddress   = "0x5a8b09f1f3e9a1f5f1f0d24d2fbb5f29b0b0f25f"
)

func mustHash(s *suite.Suite, hex string) types.Hash {
	h, err := types.NewHashFromHexString(hex)
	s.Require().Nil(err)
	return h
}

type VaraBuilderTestSuite struct {
	suite.Suite
	estimator *mock_vara.MockGasEstimator
	builder   *vara.StepBuilder

	sender     types.Hash
	vftManager types.Hash
	payment    types.Hash
	token      config.Token
}

func TestRunVaraBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(VaraBuilderTestSuite))
}

func (s *VaraBuilderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.estimator = mock_vara.NewMockGasEstimator(ctrl)

	s.sender = mustHash(&s.Suite, senderAccount)
	s.vftManager = mustHash(&s.Suite, vftManagerProgram)
	s.payment = mustHash(&s.Suite, paymentProgram)
	s.builder = vara.NewStepBuilder(s.sender, s.vftManager, s.payment, s.estimator)

	s.token = config.Token{
		Address: tokenProgram,
		Chain:   bridge.ChainVara,
		Symbol:  "VFT",
	}
}

func (s *VaraBuilderTestSuite) Test_ValidateDestination_Valid() {
	s.Nil(s.builder.ValidateDestination(ethereumAddress))
}

func (s *VaraBuilderTestSuite) Test_ValidateDestination_Invalid() {
	s.NotNil(s.builder.ValidateDestination(vftManagerProgram))
}

func (s *VaraBuilderTestSuite) Test_Mint_AttachesAmountAsValue() {
	amount := big.NewInt(1000)
	program := mustHash(&s.Suite, tokenProgram)
	payload, err := vara.EncodePayload("Tokenizer", "Mint")
	s.Nil(err)
	s.estimator.EXPECT().EstimateHandleGas(gomock.Any(), s.sender, program, payload, amount).
		Return(uint64(5_000_000_000), nil)

	step, err := s.builder.Mint(context.Background(), s.token, amount)

	s.Nil(err)
	s.Equal(plan.StepMint, step.Kind)
	s.Equal(bridge.ChainVara, step.Chain)
	s.True(step.Bundlable)
	s.Equal(amount, step.Value)

	desc := step.Desc.(vara.CallDesc)
	s.Equal(program, desc.Program)
	s.Equal(payload, desc.Payload)
}

func (s *VaraBuilderTestSuite) Test_Approve_TargetsTokenProgram() {
	amount := big.NewInt(1000)
	program := mustHash(&s.Suite, tokenProgram)
	payload, err := vara.EncodePayload("Vft", "Approve", s.vftManager, types.NewU256(*amount))
	s.Nil(err)
	s.estimator.EXPECT().EstimateHandleGas(gomock.Any(), s.sender, program, payload, nil).
		Return(uint64(3_000_000_000), nil)

	step, err := s.builder.Approve(context.Background(), s.token, amount)

	s.Nil(err)
	s.Equal(plan.StepApprove, step.Kind)
	s.True(step.Bundlable)
	s.Nil(step.Value)

	desc := step.Desc.(vara.CallDesc)
	s.Equal(program, desc.Program)
	s.Equal(payload, desc.Payload)
}

func (s *VaraBuilderTestSuite) Test_Permit_NotSupported() {
	_, err := s.builder.Permit(context.Background(), s.token, big.NewInt(1000))

	s.NotNil(err)
}

func (s *VaraBuilderTestSuite) Test_BridgeRequest_TargetsVftManager() {
	amount := big.NewInt(1000)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, ethereumAddress, big.NewInt(0), nil, false)

	s.Nil(err)
	s.Equal(plan.StepBridgeRequest, step.Kind)
	s.True(step.Bundlable)
	s.Nil(step.Value)
	// The request's gas use depends on state earlier plan steps provide, so
	// it is never estimated live.
	s.Equal(uint64(vara.BRIDGE_REQUEST_GAS_LIMIT), step.GasLimit)

	desc := step.Desc.(vara.CallDesc)
	s.Equal(s.vftManager, desc.Program)

	var decoded struct {
		Token    types.Hash
		Amount   types.U256
		Receiver types.H160
	}
	ok, err := vara.DecodePayload(desc.Payload, "VftManager", "RequestBridging", &decoded)
	s.Nil(err)
	s.True(ok)
	s.Equal(mustHash(&s.Suite, tokenProgram), decoded.Token)
	s.Equal(amount, decoded.Amount.Int)
}

func (s *VaraBuilderTestSuite) Test_BridgeRequest_ProcessingFeeAttached() {
	amount := big.NewInt(1000)
	fee := big.NewInt(77)

	step, err := s.builder.BridgeRequest(context.Background(), s.token, amount, ethereumAddress, fee, nil, true)

	s.Nil(err)
	s.Equal(fee, step.Value)
}

func (s *VaraBuilderTestSuite) Test_PayFee_DeferredUntilNonceKnown() {
	fee := big.NewInt(200)

	step, err := s.builder.PayFee(context.Background(), fee)

	s.Nil(err)
	s.Equal(plan.StepPayFee, step.Kind)
	s.True(step.Deferred)
	s.True(step.Bundlable)
	s.Equal(uint64(vara.PAY_FEE_GAS_CEILING), step.GasLimit)

	desc := step.Desc.(vara.CallDesc)
	s.Equal(s.payment, desc.Program)
	s.Nil(desc.Payload)

	payload, err := desc.PackWithNonce(big.NewInt(42))
	s.Nil(err)
	var decoded struct {
		Nonce types.U256
	}
	ok, err := vara.DecodePayload(payload, "BridgingPayment", "PayFees", &decoded)
	s.Nil(err)
	s.True(ok)
	s.Equal(big.NewInt(42), decoded.Nonce.Int)
}

func (s *VaraBuilderTestSuite) Test_PayPriorityFee_Supported() {
	fee := big.NewInt(100)

	step, err := s.builder.PayPriorityFee(context.Background(), fee)

	s.Nil(err)
	s.Equal(plan.StepPayPriorityFee, step.Kind)
	s.True(step.Deferred)

	desc := step.Desc.(vara.CallDesc)
	payload, err := desc.PackWithNonce(big.NewInt(42))
	s.Nil(err)
	var decoded struct {
		Nonce types.U256
	}
	ok, err := vara.DecodePayload(payload, "BridgingPayment", "PayPriorityFee", &decoded)
	s.Nil(err)
	s.True(ok)
}

func (s *VaraBuilderTestSuite) Test_Mint_EstimationFails() {
	s.estimator.EXPECT().EstimateHandleGas(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uint64(0), errors.New("program terminated"))

	_, err := s.builder.Mint(context.Background(), s.token, big.NewInt(1000))

	s.NotNil(err)
}
