package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/config"
)

const version = "0.1.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "winform",
		Short: "Parse, edit and regenerate GUI-form designer files",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a winform config file")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
