// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/vortexbridge/bridge-core/bridge"
)

const (
	ConfigFlagName = "config"
)

type Config struct {
	ServiceConfig ServiceConfig
	ChainConfigs  []map[string]interface{}
}

type ServiceConfig struct {
	LogLevel                  zerolog.Level
	HealthPort                uint16
	ApiAddr                   string
	IndexerURL                string
	OpenTelemetryCollectorURL string
	Env                       string
	Id                        string
	Tokens                    []Token
}

type RawConfig struct {
	ServiceConfig RawServiceConfig         `mapstructure:"service" json:"service"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type RawServiceConfig struct {
	LogLevel                  string     `mapstructure:"logLevel" json:"logLevel" default:"info"`
	HealthPort                uint16     `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	ApiAddr                   string     `mapstructure:"apiAddr" json:"apiAddr" default:":8080"`
	IndexerURL                string     `mapstructure:"indexerUrl" json:"indexerUrl"`
	OpenTelemetryCollectorURL string     `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	Env                       string     `mapstructure:"env" json:"env"`
	Id                        string     `mapstructure:"id" json:"id"`
	Tokens                    []RawToken `mapstructure:"tokens" json:"tokens"`
}

type RawToken struct {
	Address            string `mapstructure:"address" json:"address"`
	Chain              string `mapstructure:"chain" json:"chain"`
	Symbol             string `mapstructure:"symbol" json:"symbol"`
	Decimals           uint8  `mapstructure:"decimals" json:"decimals" default:"18"`
	IsNative           bool   `mapstructure:"isNative" json:"isNative"`
	SupportsPermit     bool   `mapstructure:"supportsPermit" json:"supportsPermit"`
	DestinationAddress string `mapstructure:"destinationAddress" json:"destinationAddress"`
}

func (c *RawConfig) Validate() error {
	for _, token := range c.ServiceConfig.Tokens {
		if token.Address == "" {
			return fmt.Errorf("token address not configured")
		}
		if _, err := parseChain(token.Chain); err != nil {
			return fmt.Errorf("token %s: %w", token.Address, err)
		}
	}
	for _, chain := range c.ChainConfigs {
		if chain["type"] == "" || chain["type"] == nil {
			return fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
	}
	return nil
}

func parseChain(name string) (bridge.Chain, error) {
	switch strings.ToLower(name) {
	case "vara":
		return bridge.ChainVara, nil
	case "ethereum":
		return bridge.ChainEthereum, nil
	default:
		return 0, fmt.Errorf("chain '%s' not recognized", name)
	}
}

func (c *RawConfig) parse() (*Config, error) {
	logLevel, err := zerolog.ParseLevel(c.ServiceConfig.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("unknown log level: %s", c.ServiceConfig.LogLevel)
	}

	tokens := make([]Token, 0, len(c.ServiceConfig.Tokens))
	for _, raw := range c.ServiceConfig.Tokens {
		chain, err := parseChain(raw.Chain)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, Token{
			Address:            raw.Address,
			Chain:              chain,
			Symbol:             raw.Symbol,
			Decimals:           raw.Decimals,
			IsNative:           raw.IsNative,
			SupportsPermit:     raw.SupportsPermit,
			DestinationAddress: raw.DestinationAddress,
		})
	}

	return &Config{
		ServiceConfig: ServiceConfig{
			LogLevel:                  logLevel,
			HealthPort:                c.ServiceConfig.HealthPort,
			ApiAddr:                   c.ServiceConfig.ApiAddr,
			IndexerURL:                c.ServiceConfig.IndexerURL,
			OpenTelemetryCollectorURL: c.ServiceConfig.OpenTelemetryCollectorURL,
			Env:                       c.ServiceConfig.Env,
			Id:                        c.ServiceConfig.Id,
			Tokens:                    tokens,
		},
		ChainConfigs: c.ChainConfigs,
	}, nil
}

// GetConfigFromFile reads configuration from the file at path, layered on top
// of the base configuration.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(&rawConfig); err != nil {
		return nil, err
	}

	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}
	if err := rawConfig.Validate(); err != nil {
		return nil, err
	}

	config, err := rawConfig.parse()
	if err != nil {
		return nil, err
	}
	return mergeConfig(base, config)
}

// GetConfigFromENV reads configuration overrides from VORTEX_* environment
// variables, layered on top of the base configuration. Chain configurations
// are expected as a JSON blob in VORTEX_CHAINS.
func GetConfigFromENV(base *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VORTEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rawConfig := RawConfig{
		ServiceConfig: RawServiceConfig{
			LogLevel:                  v.GetString("service.logLevel"),
			HealthPort:                uint16(v.GetUint32("service.healthPort")),
			ApiAddr:                   v.GetString("service.apiAddr"),
			IndexerURL:                v.GetString("service.indexerUrl"),
			OpenTelemetryCollectorURL: v.GetString("service.openTelemetryCollectorURL"),
			Env:                       v.GetString("service.env"),
			Id:                        v.GetString("service.id"),
		},
	}

	chains := v.GetString("chains")
	if chains != "" {
		if err := json.Unmarshal([]byte(chains), &rawConfig.ChainConfigs); err != nil {
			return nil, fmt.Errorf("invalid chains configuration: %w", err)
		}
	}

	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}
	if err := rawConfig.Validate(); err != nil {
		return nil, err
	}

	config, err := rawConfig.parse()
	if err != nil {
		return nil, err
	}
	return mergeConfig(base, config)
}

// GetSharedConfigFromNetwork fetches the shared configuration all deployments
// agree on. Local configuration is layered on top of it.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching shared configuration failed with status code %d", resp.StatusCode)
	}

	rawConfig := RawConfig{}
	if err := json.NewDecoder(resp.Body).Decode(&rawConfig); err != nil {
		return nil, err
	}
	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}
	if err := rawConfig.Validate(); err != nil {
		return nil, err
	}

	return rawConfig.parse()
}

func mergeConfig(base *Config, overrides *Config) (*Config, error) {
	if base == nil {
		return overrides, nil
	}

	if err := mergo.Merge(base, overrides, mergo.WithOverride); err != nil {
		return nil, err
	}
	return base, nil
}
