package main

import (
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/designer"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file>",
		Short: "Show what regenerating the managed region would change",
		Long: `Show what regenerating the managed region would change.

Parses the file, renders its model back, and prints a unified diff
between the two. An empty diff means the file is already in canonical
statement order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, dialect, err := parseArg(path)
			if err != nil {
				return err
			}

			before, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read designer file: %w", err)
			}
			after := designer.Render(before, doc, dialect)

			edits := myers.ComputeEdits(span.URIFromPath(path), string(before), string(after))
			fmt.Print(gotextdiff.ToUnified(path, path+" (regenerated)", string(before), edits))
			return nil
		},
	}
}
