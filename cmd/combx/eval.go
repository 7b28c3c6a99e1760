package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hucsmn/combx"
	"github.com/hucsmn/combx/examples/calc"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate a four-function arithmetic expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")

		var opts []combx.ContextOption
		if traceEnabled {
			opts = append(opts, combx.WithTrace(logger))
		}

		value, err := calc.Eval(expr, opts...)
		if err != nil {
			logger.Error("evaluation failed", zap.String("expr", expr), zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
