// Package cli provides CLI commands for the apihelper application.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/apihelper/internal/wire"
)

// Global flag names.
const (
	flagDir           = "dir"
	flagConfig        = "config"
	flagVerbose       = "verbose"
	flagNoInteraction = "no-interaction"
)

// RegisterGlobalFlags adds the flags shared by every command to root.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String(flagDir, "", "Project directory (default: current directory)")
	root.PersistentFlags().String(flagConfig, "", "Configuration file (default: <dir>/apihelper.yaml)")
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable debug logging")
	root.PersistentFlags().BoolP(flagNoInteraction, "n", false, "Do not ask any interactive question")
}

// buildContainer wires the services for the project selected by the global flags.
// Callers must Close the returned container.
func buildContainer(cmd *cobra.Command) (*wire.Container, error) {
	dir, _ := cmd.Flags().GetString(flagDir)
	configFile, _ := cmd.Flags().GetString(flagConfig)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	noInteraction, _ := cmd.Flags().GetBool(flagNoInteraction)

	return wire.Build(wire.Options{
		ProjectDir:    dir,
		ConfigFile:    configFile,
		Verbose:       verbose,
		NoInteraction: noInteraction,
		LogOutput:     cmd.ErrOrStderr(),
	})
}
