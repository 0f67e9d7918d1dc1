package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// RenameCmd returns the item rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change an item's title",
		Long: `Change an item's title. Its done flag and position are kept.

Examples:
  todoey item rename --id=<item-id> --title="Buy more Eggos"
`,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	cmd.Flags().String("title", "", "New title (required)")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ItemIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		title, _ := cmd.Flags().GetString("title")

		item, err := c.Store().UpdateItemTitle(ctx, id, title)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("item", item, func() {
			formatter.Printf("✓ Renamed to %s\n", styles.RenderItem(item))
		})
	})
}
