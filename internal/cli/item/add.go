package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a category",
		Long: `Add a new, not-done item to the end of a category.

Examples:
  todoey item add --category=<category-id> --title="Buy Eggos"

  # Quiet mode for bash capture
  ITEM_ID=$(todoey item add --category=<category-id> --title="Find Mike" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("category", "", "Category ID (required)")
	cmd.Flags().String("title", "", "Item title (required)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		categoryID, err := cli.CategoryIDFlag(cmd, "category")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		// An empty title is a validation failure, not a usage error
		title, _ := cmd.Flags().GetString("title")

		item, err := c.Store().CreateItem(ctx, categoryID, title)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("item", item, func() {
			formatter.Printf("✓ Added %s (ID: %s)\n", styles.RenderItem(item), item.ID)
		})
	})
}
