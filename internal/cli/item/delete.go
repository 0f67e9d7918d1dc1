package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an item",
		Long: `Delete an item by ID.

Examples:
  todoey item delete --id=<item-id>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Item ID (required)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ItemIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}

		if err := c.Store().DeleteItem(ctx, id); err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			return nil
		}
		return formatter.Success("item_id", string(id), func() {
			formatter.Printf("✓ Item %s deleted\n", id)
		})
	})
}
