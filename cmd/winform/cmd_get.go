package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <node> <property>",
		Short: "Print one raw property value; use '.' as node for the form itself",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, nodeName, property := args[0], args[1], args[2]
			doc, _, err := parseArg(path)
			if err != nil {
				return err
			}

			if nodeName == "." {
				value, ok := doc.FormProperty(property)
				if !ok {
					return fmt.Errorf("form has no property %s", property)
				}
				fmt.Println(value)
				return nil
			}

			node := doc.NodeByName(nodeName)
			if node == nil {
				return fmt.Errorf("no control named %s in %s", nodeName, path)
			}
			value, ok := node.Property(property)
			if !ok {
				return fmt.Errorf("%s has no property %s", node.Name, property)
			}
			fmt.Println(value)
			return nil
		},
	}
}
