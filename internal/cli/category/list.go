package category

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long: `List all categories in creation order, with item counts.

Examples:
  # Human-readable list
  todoey category list

  # JSON output (includes every item)
  todoey category list --json

  # Quiet mode (one ID per line)
  todoey category list --quiet
`,
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		categories, err := c.Store().ListCategories(ctx)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			cli.IDs(formatter, categories)
			return nil
		}

		return formatter.Success("categories", categories, func() {
			if len(categories) == 0 {
				formatter.Printf("No categories yet\n")
				return
			}
			for i, category := range categories {
				done := 0
				for _, item := range category.Items {
					if item.Done {
						done++
					}
				}
				formatter.Printf("  %d. %s %s\n", i+1,
					styles.RenderCategory(category),
					styles.SubtleStyle.Render(progress(done, len(category.Items))+" (ID: "+string(category.ID)+")"))
			}
		})
	})
}

func progress(done, total int) string {
	if total == 0 {
		return "[empty]"
	}
	return fmt.Sprintf("[%d/%d done]", done, total)
}
