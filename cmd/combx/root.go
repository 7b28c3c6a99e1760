package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	traceEnabled bool
	logger       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "combx",
	Short: "Demonstration grammars built on the combx parser-combinator core",
	Long: `combx is a backtracking parser-combinator library. This CLI exercises
two of its example grammars end to end:

  combx eval EXPR   evaluate a four-function arithmetic expression
  combx sexp TEXT   parse a Lisp-style s-expression into a tree`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if traceEnabled {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false, "log each grammar's backtracking spans via zap")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "combx:", err)
		os.Exit(1)
	}
}
