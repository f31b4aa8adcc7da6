package cli

import (
	"github.com/spf13/cobra"
)

// StubsCmd returns the stubs command
func StubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubs",
		Short: "Inspect and customize templates",
		Long: `Inspect and customize the templates used for generation.

Templates copied into the project's stubs_path take precedence over the
built-in ones.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List templates and where they are loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.StubAdapter(cmd.OutOrStdout()).List(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "publish",
		Short: "Copy the built-in templates into the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.StubAdapter(cmd.OutOrStdout()).Publish(cmd.Context())
		},
	})

	return cmd
}
