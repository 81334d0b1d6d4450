// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/vortexbridge/bridge-core/config/chain"
)

type VaraConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	VftManager      string
	BridgingPayment string
	Sender          string
	Key             string

	GasPrice           uint64
	FinalityTimeout    time.Duration
	BlockRetryInterval time.Duration
}

type RawVaraConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	VftManager               string `mapstructure:"vftManager"`
	BridgingPayment          string `mapstructure:"bridgingPayment"`
	Sender                   string `mapstructure:"sender"`
	Key                      string `mapstructure:"key"`

	// GasPrice is the value of one gas unit in the smallest native unit.
	GasPrice           uint64 `mapstructure:"gasPrice" default:"100"`
	FinalityTimeout    uint64 `mapstructure:"finalityTimeout" default:"180"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"3"`
}

func (c *RawVaraConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.VftManager == "" {
		return fmt.Errorf("required field chain.VftManager empty for chain %v", *c.Id)
	}
	if c.BridgingPayment == "" {
		return fmt.Errorf("required field chain.BridgingPayment empty for chain %v", *c.Id)
	}
	if c.Sender == "" {
		return fmt.Errorf("required field chain.Sender empty for chain %v", *c.Id)
	}
	return nil
}

// NewVaraConfig decodes and validates an instance of a VaraConfig from
// raw chain config
func NewVaraConfig(chainConfig map[string]interface{}) (*VaraConfig, error) {
	var c RawVaraConfig
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

	config := &VaraConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		VftManager:         c.VftManager,
		BridgingPayment:    c.BridgingPayment,
		Sender:             c.Sender,
		Key:                c.Key,
		GasPrice:           c.GasPrice,

		// nolint:gosec
		FinalityTimeout: time.Duration(c.FinalityTimeout) * time.Second,
		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
	}

	return config, nil
}
