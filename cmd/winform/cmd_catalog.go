package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [type]",
		Short: "List the known control types, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				ct, ok := catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown control type: %s", args[0])
				}
				fmt.Printf("%s\t%s\t%s\n", ct.Name, ct.FullName, ct.Kind)
				if ct.DefaultEvent != "" {
					fmt.Printf("default event: %s\n", ct.DefaultEvent)
				}
				if len(ct.CommonProperties) > 0 {
					fmt.Printf("common properties: %s\n", strings.Join(ct.CommonProperties, ", "))
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, ct := range catalog.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ct.Name, ct.Kind, ct.FullName)
			}
			return w.Flush()
		},
	}
}
