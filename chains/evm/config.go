// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/vortexbridge/bridge-core/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Erc20Manager    string
	BridgingPayment string
	Sender          string
	Key             string

	BlockInterval      *big.Int
	BlockRetryInterval time.Duration
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Erc20Manager             string `mapstructure:"erc20Manager"`
	BridgingPayment          string `mapstructure:"bridgingPayment"`
	Sender                   string `mapstructure:"sender"`
	Key                      string `mapstructure:"key"`

	BlockInterval      int64  `mapstructure:"blockInterval" default:"5"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Erc20Manager == "" {
		return fmt.Errorf("required field chain.Erc20Manager empty for chain %v", *c.Id)
	}
	if c.BridgingPayment == "" {
		return fmt.Errorf("required field chain.BridgingPayment empty for chain %v", *c.Id)
	}
	if c.Sender == "" {
		return fmt.Errorf("required field chain.Sender empty for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Erc20Manager:       c.Erc20Manager,
		BridgingPayment:    c.BridgingPayment,
		Sender:             c.Sender,
		Key:                c.Key,

		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
		BlockInterval:      big.NewInt(c.BlockInterval),
	}

	return config, nil
}
