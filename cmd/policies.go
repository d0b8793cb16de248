package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inference-sim/policy-rank/sim"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the registered priority policies",
	Run: func(cmd *cobra.Command, args []string) {
		listPolicies(cmd.OutOrStdout(), sim.NewBuiltinRegistry())
	},
}

func listPolicies(out io.Writer, reg *sim.Registry) {
	for _, name := range reg.Names() {
		fmt.Fprintln(out, name)
	}
}
