package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tokdfa/internal/compiler/grammar"
	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

var KindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the token kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tSYMBOL\tVALUE")
		for _, kind := range token.Kinds {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", kind, grammar.SymbolName(kind), kind.CarriesValue())
		}
		return tw.Flush()
	},
}
