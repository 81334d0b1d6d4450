// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BindFlags binds the persistent configuration flags and wires them into
// viper.
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.json", "Path to configuration file or 'env' to read configuration from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))
}
