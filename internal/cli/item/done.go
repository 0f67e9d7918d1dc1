package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// DoneCmd returns the item done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Toggle an item's done flag",
		Long: `Mark an item done, or not done again if it already is.

Examples:
  todoey item done --id=<item-id>
`,
		RunE: runDone,
	}

	cmd.Flags().String("id", "", "Item ID (required)")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ItemIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}

		item, err := c.Store().ToggleDone(ctx, id)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("item", item, func() {
			formatter.Printf("%s\n", styles.RenderItem(item))
		})
	})
}
