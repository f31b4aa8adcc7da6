package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/apihelper/internal/cli"
	"github.com/example/apihelper/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "apihelper",
		Short:   "apihelper - API controller scaffolding for Laravel projects",
		Version: version.String(),
		Long: `apihelper generates API controllers from templates.

Every controller extends a shared API base controller; the base controller and
its response services are created on first use.`,
		SilenceUsage: true,
	}

	cli.RegisterGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.MakeCmd())
	rootCmd.AddCommand(cli.StubsCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
