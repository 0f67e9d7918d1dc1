package category

import (
	"bufio"
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
)

// DeleteCmd returns the category delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a category and its items",
		Long: `Delete a category by ID (requires confirmation unless --force or --quiet).

Warning: Every item in the category is deleted with it.

Examples:
  # Delete with confirmation
  todoey category delete --id=<category-id>

  # Skip confirmation
  todoey category delete --id=<category-id> --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Category ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.CategoryIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		force, _ := cmd.Flags().GetBool("force")

		// Get category details for confirmation
		category, err := c.Store().GetCategory(ctx, id)
		if err != nil {
			return formatter.Fail(err)
		}

		if !force && !formatter.Quiet && !formatter.JSON {
			formatter.Printf("⚠ Warning: %d item(s) will be deleted with this category\n", len(category.Items))
			formatter.Printf("Delete category '%s'? (y/N): ", category.Name)
			response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				formatter.Printf("Cancelled\n")
				return nil
			}
		}

		if err := c.Store().DeleteCategory(ctx, id); err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			return nil
		}
		return formatter.Success("category_id", string(id), func() {
			formatter.Printf("✓ Category '%s' deleted (%d item(s) removed)\n", category.Name, len(category.Items))
		})
	})
}
