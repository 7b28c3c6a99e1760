package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "addition", args: []string{"eval", "1 + 2"}, want: "3\n"},
		{name: "precedence", args: []string{"eval", "2 + 3 * 4"}, want: "14\n"},
		{name: "parens", args: []string{"eval", "(2 + 3) * 4"}, want: "20\n"},
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

func TestEvalCmd_RejectsMalformedExpression(t *testing.T) {
	rootCmd.SetArgs([]string{"eval", "1 +"})
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)

	require.Error(t, err)
}
