package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/apihelper/internal/ports/primary"
)

// MakeCmd returns the make command
func MakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make",
		Short: "Generate API classes",
		Long:  `Generate API controllers and model classes from templates.`,
	}

	cmd.AddCommand(makeControllerCmd())
	cmd.AddCommand(makeModelCmd())

	return cmd
}

func makeControllerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controller [name]",
		Short: "Create a new API controller",
		Long: `Create a new API controller under the configured controller namespace.

Before the controller is written, the API base files are created if missing:
  StatusServe    - status codes and messages (services namespace)
  ResponseServe  - JSON response helpers (services namespace)
  ApiController  - base controller every API controller extends

Existing files are never overwritten.

Template precedence: --parent > --model > --resource > plain

Examples:
  apihelper make controller PostController
  apihelper make controller User/PostController --resource
  apihelper make controller PostController --model Post
  apihelper make controller CommentController --parent Post --model Comment`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")
			parent, _ := cmd.Flags().GetString("parent")
			resource, _ := cmd.Flags().GetBool("resource")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.ScaffoldAdapter(cmd.OutOrStdout()).MakeController(cmd.Context(), primary.MakeControllerRequest{
				Name:     args[0],
				Model:    model,
				Parent:   parent,
				Resource: resource,
				DryRun:   dryRun,
			})
		},
	}

	cmd.Flags().StringP("model", "m", "", "Generate a resource controller for the given model")
	cmd.Flags().BoolP("resource", "r", false, "Generate a resource controller class")
	cmd.Flags().StringP("parent", "p", "", "Generate a nested resource controller class")
	cmd.Flags().Bool("dry-run", false, "Show what would be generated without writing files")

	return cmd
}

func makeModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model [name]",
		Short: "Create a new model class",
		Long: `Create a new model class under the root namespace.

Examples:
  apihelper make model Post
  apihelper make model Blog/Post`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.ScaffoldAdapter(cmd.OutOrStdout()).MakeModel(cmd.Context(), args[0])
		},
	}
}
