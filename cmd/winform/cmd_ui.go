package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/ui"
)

func newUICmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui [dir]",
		Short: "Start the form preview server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rootDir := "."
			if len(args) == 1 {
				rootDir = args[0]
			}

			server, err := ui.NewServer(rootDir)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			if err := server.ScanAll(); err != nil {
				return fmt.Errorf("scan %s: %w", rootDir, err)
			}

			if addr == "" {
				addr = cfg.UI.AddrOrDefault()
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config, else :8080)")

	return cmd
}
