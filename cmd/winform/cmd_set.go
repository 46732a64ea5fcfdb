package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/designer"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <node> <property> <value>",
		Short: "Set a raw property value and rewrite the file in place",
		Long: `Set a raw property value and rewrite the file in place.

The value is spliced into the managed region verbatim: quote string
values yourself, e.g.

  winform set Form1.Designer.cs button1 Text '"Save"'
  winform set Form1.Designer.cs . ClientSize 'new System.Drawing.Size(640, 480)'

Use '.' as the node name to address the form itself.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeName, property, value := args[0], args[1], args[2], args[3]
			doc, dialect, err := parseArg(path)
			if err != nil {
				return err
			}

			if nodeName == "." {
				doc.SetFormProperty(property, value)
			} else {
				node := doc.NodeByName(nodeName)
				if node == nil {
					return fmt.Errorf("no control named %s in %s", nodeName, path)
				}
				node.SetProperty(property, value)
			}

			return designer.Write(path, doc, dialect)
		},
	}
}
