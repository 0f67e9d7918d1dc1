package category

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// RenameCmd returns the category rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a category",
		Long: `Rename a category. Its items and color tag are kept.

Examples:
  todoey category rename --id=<category-id> --name="House"
`,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Category ID (required)")
	cmd.Flags().String("name", "", "New category name (required)")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.CategoryIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		name, err := cli.RequiredString(cmd, "name")
		if err != nil {
			return cli.UsageError(formatter, err)
		}

		category, err := c.Store().RenameCategory(ctx, id, name)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("category", category, func() {
			formatter.Printf("✓ Category renamed to %s\n", styles.RenderCategory(category))
		})
	})
}
