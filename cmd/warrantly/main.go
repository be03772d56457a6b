package main

import (
	"os"

	"github.com/spf13/cobra"

	"warrantly/internal/interfaces/cli/migrate"
	"warrantly/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warrantly",
		Short: "Warrantly - warranty determination and claim lifecycle engine",
		Long:  `Warrantly resolves warranty coverage for ordered products and manages the full lifecycle of warranty claims, from intake through resolution.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
