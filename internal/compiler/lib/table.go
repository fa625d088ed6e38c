package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists the accepted values for WriteTokens' format argument.
var Formats = []string{FormatTable, FormatJSON}

// WriteTokens renders a token table to w.
func WriteTokens(w io.Writer, toks []token.Token, format string) error {
	switch format {
	case FormatTable:
		return writeTable(w, toks)
	case FormatJSON:
		return writeJSON(w, toks)
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}

func writeTable(w io.Writer, toks []token.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEXEME\tKIND\tVALUE")
	for _, tok := range toks {
		value := "-"
		if tok.HasValue() {
			value = *tok.Value
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.Lexeme, tok.Kind, value)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, toks []token.Token) error {
	if toks == nil {
		toks = []token.Token{} // [] rather than null
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toks)
}
