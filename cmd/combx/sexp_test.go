package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSexpCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "atom", args: []string{"sexp", "42"}, want: "42\n"},
		{name: "symbol", args: []string{"sexp", "Foo"}, want: "foo\n"},
		{name: "list", args: []string{"sexp", "(+ 1 2)"}, want: "(+ 1 2)\n"},
		{name: "quoted", args: []string{"sexp", "'(a b)"}, want: "'(a b)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			rootCmd.SetArgs(nil)

			require.NoError(t, err)
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestSexpCmd_RejectsUnclosedList(t *testing.T) {
	rootCmd.SetArgs([]string{"sexp", "(+ 1 2"})
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)

	require.Error(t, err)
}
