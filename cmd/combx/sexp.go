package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hucsmn/combx"
	"github.com/hucsmn/combx/examples/sexp"
)

var sexpCmd = &cobra.Command{
	Use:   "sexp TEXT...",
	Short: "Parse a Lisp-style s-expression into a tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		var opts []combx.ContextOption
		if traceEnabled {
			opts = append(opts, combx.WithTrace(logger))
		}

		node, err := sexp.Parse(text, opts...)
		if err != nil {
			logger.Error("parse failed", zap.String("text", text), zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), node.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sexpCmd)
}
