package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hikingbuddies/listings/internal/parse"
)

type parseOutput struct {
	Fields map[string]any    `json:"fields"`
	Errors map[string]string `json:"errors"`
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an event description and print the fields as JSON",
		Long: `parse reads a "Key: value" event description from file, or from stdin
when no file is given, and prints the fields it could read. Nothing is saved
and no database is needed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("parse: %w", err)
				}
				defer f.Close()
				in = f
			}
			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("parse: read input: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(toOutput(parse.Block(string(raw))))
		},
	}
	cmd.Flags().Bool("pretty", false, "indent the JSON output")
	return cmd
}

// toOutput renders dates as YYYY-MM-DD; clock times and paces already
// marshal as text.
func toOutput(res parse.Result) parseOutput {
	out := parseOutput{
		Fields: make(map[string]any, len(res.Fields)),
		Errors: make(map[string]string, len(res.Errors)),
	}
	for k, v := range res.Fields {
		if t, ok := v.(time.Time); ok {
			v = t.Format(parse.DateLayout)
		}
		out.Fields[string(k)] = v
	}
	for k, v := range res.Errors {
		out.Errors[string(k)] = v
	}
	return out
}
