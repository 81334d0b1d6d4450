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
	"github.com/vortexbridge/bridge-core/chains/vara"
	mock_vara "github.com/vortexbridge/bridge-core/chains/vara/mock"
	"github.com/vortexbridge/bridge-core/config"
)

type AllowanceReaderTestSuite struct {
	suite.Suite
	reader    *mock_vara.MockStateReader
	allowance *vara.AllowanceReader

	owner      types.Hash
	vftManager types.Hash
	token      config.Token
}

func TestRunAllowanceReaderTestSuite(t *testing.T) {
	suite.Run(t, new(AllowanceReaderTestSuite))
}

func (s *AllowanceReaderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.reader = mock_vara.NewMockStateReader(ctrl)
	s.owner = mustHash(&s.Suite, senderAccount)
	s.vftManager = mustHash(&s.Suite, vftManagerProgram)
	s.allowance = vara.NewAllowanceReader(s.reader, s.owner, s.vftManager)

	s.token = config.Token{
		Address: tokenProgram,
		Chain:   bridge.ChainVara,
		Symbol:  "VFT",
	}
}

func (s *AllowanceReaderTestSuite) Test_Allowance_Successful() {
	query, err := vara.EncodePayload("Vft", "Allowance", s.owner, s.vftManager)
	s.Nil(err)
	response, err := vara.EncodePayload("Vft", "Allowance", types.NewU256(*big.NewInt(5000)))
	s.Nil(err)
	s.reader.EXPECT().ReadState(gomock.Any(), mustHash(&s.Suite, tokenProgram), query).Return(response, nil)

	allowance, err := s.allowance.Allowance(context.Background(), s.token)

	s.Nil(err)
	s.Equal(big.NewInt(5000), allowance)
}

func (s *AllowanceReaderTestSuite) Test_Allowance_InvalidTokenProgram() {
	token := s.token
	token.Address = "not-a-program"

	_, err := s.allowance.Allowance(context.Background(), token)

	s.NotNil(err)
}

func (s *AllowanceReaderTestSuite) Test_Allowance_ReadFails() {
	s.reader.EXPECT().ReadState(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))

	_, err := s.allowance.Allowance(context.Background(), s.token)

	s.NotNil(err)
}

func (s *AllowanceReaderTestSuite) Test_Allowance_MalformedState() {
	s.reader.EXPECT().ReadState(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{0x01}, nil)

	_, err := s.allowance.Allowance(context.Background(), s.token)

	s.NotNil(err)
}
