package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/designer"
)

func newConvertCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Convert a designer file between dialects",
		Long: `Convert a designer file between dialects.

The source form model is regenerated in the destination's dialect,
which is taken from the destination extension (.cs or .vb, or a
configured mapping). Raw property values carry over verbatim.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			doc, _, err := parseArg(src)
			if err != nil {
				return err
			}

			dstDialect, ok := cfg.DialectFor(dst)
			if !ok {
				return fmt.Errorf("cannot determine dialect for %s; map its extension in the config", dst)
			}

			if !force {
				if _, err := os.Stat(dst); err == nil {
					return fmt.Errorf("%s exists; pass --force to overwrite its managed region", dst)
				}
			}

			return designer.Write(dst, doc, dstDialect)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing destination file")

	return cmd
}
