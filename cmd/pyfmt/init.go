package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/pyfmt/internal/pyconfig"
)

// initCmd: pyfmt init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter pyfmt configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := pyconfig.WriteDefault(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}
