package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/designer"
	"github.com/dhamidi/winform/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var withProperties bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a designer file and dump the form model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := parseArg(args[0])
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			case "tree":
				enc := format.NewTreeEncoder(os.Stdout)
				enc.Properties = withProperties
				encoder = enc
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line, tree)")
	cmd.Flags().BoolVar(&withProperties, "properties", false, "include properties in tree output")

	return cmd
}

// parseArg resolves the dialect for a path via the config and parses
// the file.
func parseArg(path string) (*designer.Document, designer.Dialect, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, designer.DialectCSharp, err
	}
	dialect, ok := cfg.DialectFor(path)
	if !ok {
		return nil, dialect, fmt.Errorf("cannot determine dialect for %s; map its extension in the config", path)
	}
	doc, err := designer.Parse(path, dialect)
	if err != nil {
		return nil, dialect, err
	}
	return doc, dialect, nil
}
