package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/pyfmt/internal/pyfmtcli"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

var fixIndentCmd = &cobra.Command{
	Use:   "fix-indent <fixture> <statement-index>",
	Short: "Re-render one top-level statement with indentation fixed to its tree position",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("error: fix-indent needs exactly a fixture path and a statement index")
			os.Exit(1)
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("error: invalid statement index %q: %v\n", args[1], err)
			os.Exit(1)
		}

		_, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg := loadConfig(cfgFile)
		if cfg.DefaultQuote != "" {
			pymatch.DefaultQuoteType = cfg.DefaultQuote
		}

		doc, err := pyfmtcli.LoadDocument(args[0], sourcePathFor(args[0]))
		if err != nil {
			logger.Error("error loading document", zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}

		fixed, err := pyfmtcli.FixIndent(doc, index)
		if err != nil {
			logger.Error("error fixing indentation", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(fixed)
	},
}
