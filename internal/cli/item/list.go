package item

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
	"github.com/thenoetrevino/todoey/internal/query"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List, search and sort a category's items",
		Long: `List a category's items. Without flags items appear in the order they were added.

--search keeps items whose title contains the text, ignoring case and accents
("creme" matches "Crème Brûlée"). Matches are ordered oldest first.
--sort orders by title, created or done. --desc reverses it, and on its own
lists the newest items first.

Examples:
  todoey item list --category=<category-id>
  todoey item list --category=<category-id> --search=egg
  todoey item list --category=<category-id> --sort=title --desc
`,
		RunE: runList,
	}

	cmd.Flags().String("category", "", "Category ID (required)")
	cmd.Flags().String("search", "", "Only show items whose title contains this text")
	cmd.Flags().String("sort", "", "Sort by: title, created, done")
	cmd.Flags().Bool("desc", false, "Sort in descending order (newest first without --sort)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		categoryID, err := cli.CategoryIDFlag(cmd, "category")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		search, _ := cmd.Flags().GetString("search")
		sortFlag, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")

		var opts []query.Option
		var sortKey query.SortKey
		switch {
		case sortFlag != "":
			sortKey, err = query.ParseSortKey(sortFlag)
			if err != nil {
				return cli.UsageError(formatter, err)
			}
		case desc:
			sortKey = query.SortByCreatedAt
		}
		if sortKey != "" {
			opts = append(opts, query.WithSort(sortKey, !desc))
		}

		category, err := c.Store().GetCategory(ctx, categoryID)
		if err != nil {
			return formatter.Fail(err)
		}
		items, err := c.Store().ListItems(ctx, categoryID)
		if err != nil {
			return formatter.Fail(err)
		}

		switch {
		case search != "":
			items = query.Search(items, search, opts...)
		case sortKey != "":
			items, err = query.SortBy(items, sortKey, !desc)
			if err != nil {
				return formatter.Fail(err)
			}
		}

		if formatter.Quiet {
			cli.IDs(formatter, items)
			return nil
		}

		return formatter.Success("items", items, func() {
			formatter.Printf("%s\n", styles.RenderCategory(category))
			if len(items) == 0 {
				if search != "" {
					formatter.Printf("  No items match %q\n", search)
				} else {
					formatter.Printf("  No items yet\n")
				}
				return
			}
			for _, item := range items {
				formatter.Printf("  %s %s\n", styles.RenderItem(item),
					styles.SubtleStyle.Render(item.CreatedAt.Local().Format(time.DateTime)+"  "+string(item.ID)))
			}
		})
	})
}
