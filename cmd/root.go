package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
	"github.com/arnavsurve/tokdfa/internal/compiler/lib"
)

var (
	flushEOF bool
	format   string
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "tokdfa",
	Short: "tokdfa — DFA tokenizer for read/write/assignment sources",
	Long: `tokdfa scans source text one character at a time and prints the
resulting token table.

Commands:
  scan   Tokenize a source file and print its token table
  check  Tokenize and parse a source file
  kinds  List the token kinds
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(lib.Formats, format) {
			return fmt.Errorf("unknown output format %q (want one of %v)", format, lib.Formats)
		}
		return nil
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flushEOF, "flush-eof", false, "emit a pending token when the input ends without a blank")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", lib.FormatTable, "token table format (table or json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress messages")

	rootCmd.AddCommand(ScanCmd, CheckCmd, KindsCmd)
}

// scanOptions maps the persistent flags onto scanner options.
func scanOptions() []lexer.Option {
	var opts []lexer.Option
	if flushEOF {
		opts = append(opts, lexer.WithFlushAtEOF())
	}
	return opts
}

// progress writes a status line to stderr so stdout only carries output.
func progress(cmd *cobra.Command, msg string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), msg, args...)
}
