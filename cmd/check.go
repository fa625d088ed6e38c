package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tokdfa/internal/compiler"
)

// check: source -> parsed statements
var CheckCmd = &cobra.Command{
	Use:   "check <source>",
	Short: "Tokenize and parse a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	progress(cmd, "↪ checking %q ...\n", src)

	prog, err := compiler.CheckFile(src, scanOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), prog.String())
	progress(cmd, "✔︎ %d statements\n", len(prog.Statements))
	return nil
}
