package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tokdfa/internal/compiler"
	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
	"github.com/arnavsurve/tokdfa/internal/compiler/lib"
)

// scan: source -> token table
var ScanCmd = &cobra.Command{
	Use:   "scan <source>",
	Short: "Tokenize a source file and print its token table",
	Args:  cobra.ExactArgs(1),
	RunE:  scanRun,
}

func scanRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	progress(cmd, "↪ scanning %q ...\n", src)

	toks, err := compiler.TokenizeFile(src, scanOptions()...)
	if err != nil {
		var ite *lexer.IllegalTransitionError
		if errors.As(err, &ite) {
			fmt.Fprintln(cmd.ErrOrStderr(), "partial token table:")
			if werr := lib.WriteTokens(cmd.ErrOrStderr(), toks, format); werr != nil {
				return werr
			}
		}
		return err
	}

	if err := lib.WriteTokens(cmd.OutOrStdout(), toks, format); err != nil {
		return err
	}

	progress(cmd, "✔︎ %d tokens\n", len(toks))
	return nil
}
