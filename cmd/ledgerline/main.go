package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/interfaces/cli/migrate"
	"github.com/ledgerline/ledgerline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerline",
		Short: "Ledgerline - tenant billing state engine",
		Long:  `Ledgerline ingests billing provider webhooks and serves per-tenant subscription state, sales metrics, and goal progress.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
