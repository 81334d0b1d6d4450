// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fees_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/fees"
	mock_fees "github.com/vortexbridge/bridge-core/fees/mock"
)

type ResolverTestSuite struct {
	suite.Suite
	reader   *mock_fees.MockChainFeeReader
	resolver *fees.Resolver
}

func TestRunResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.reader = mock_fees.NewMockChainFeeReader(ctrl)
	s.resolver = fees.NewResolver(map[bridge.Chain]fees.ChainFeeReader{
		bridge.ChainVara: s.reader,
	})
}

func (s *ResolverTestSuite) Test_Resolve_UnknownChain() {
	_, err := s.resolver.Resolve(context.Background(), bridge.ChainEthereum)

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_Resolve_ReadFails() {
	s.reader.EXPECT().ReadFeeSchedule(gomock.Any()).Return(nil, errors.New("rpc down"))

	_, err := s.resolver.Resolve(context.Background(), bridge.ChainVara)

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_Resolve_PartialPolicy() {
	s.reader.EXPECT().ReadFeeSchedule(gomock.Any()).Return(&fees.FeePolicy{
		BridgingFee: big.NewInt(100),
	}, nil)

	_, err := s.resolver.Resolve(context.Background(), bridge.ChainVara)

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_Resolve_Successful() {
	policy := &fees.FeePolicy{
		BridgingFee:              big.NewInt(100),
		DestinationProcessingFee: big.NewInt(50),
		PriorityFee:              big.NewInt(25),
	}
	s.reader.EXPECT().ReadFeeSchedule(gomock.Any()).Return(policy, nil)

	resolved, err := s.resolver.Resolve(context.Background(), bridge.ChainVara)

	s.Nil(err)
	s.Equal(policy, resolved)
	s.True(resolved.Resolved())
}
