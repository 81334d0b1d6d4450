// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/vortexbridge/bridge-core/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the bridge core service",
		Long:  "Serves cost estimation, bridging submission and relay availability for configured chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
