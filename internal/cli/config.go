package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/apihelper/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage apihelper configuration",
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default values",
		Long: `Write apihelper.yaml to the project directory with the default values.

The root namespace is taken from composer.json when possible.
An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}

			cfg := config.Defaults(config.DiscoverRootNamespace(dir, config.DefaultAppPath))
			path, err := config.SaveConfig(dir, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", color.New(color.FgGreen).Sprint("✓"), path)
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			configFile, _ := cmd.Flags().GetString(flagConfig)

			cfg, err := config.Load(dir, configFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := cfg.File
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(out, "Config: %s\n\n", source)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, key := range []string{
				config.KeyRootNamespace,
				config.KeyAppPath,
				config.KeyControllerNamespace,
				config.KeyControllersNamespace,
				config.KeyUserModel,
				config.KeyServicesNamespace,
				config.KeyAPINamespace,
				config.KeyAPIName,
				config.KeyStubsPath,
				config.KeyHistory,
			} {
				fmt.Fprintf(w, "%s\t%s\n", key, cfg.Lookup(key))
			}
			if path, err := cfg.HistoryDBPath(); err == nil {
				fmt.Fprintf(w, "%s\t%s\n", config.KeyHistoryDB, path)
			}
			return w.Flush()
		},
	}
}

// projectDir returns the absolute project directory selected by --dir.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString(flagDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(dir)
}
