package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/designer"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file> <node>",
		Short: "Remove a control from a designer file",
		Long: `Remove a control from a designer file.

The control's declaration, properties, event wirings and containment
references all disappear from the managed region. Its children stay
declared but lose their container.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeName := args[0], args[1]
			doc, dialect, err := parseArg(path)
			if err != nil {
				return err
			}

			if !doc.RemoveNode(nodeName) {
				return fmt.Errorf("no control named %s in %s", nodeName, path)
			}
			return designer.Write(path, doc, dialect)
		},
	}
}
