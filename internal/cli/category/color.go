package category

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
)

// ColorCmd returns the category color subcommand
func ColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Change a category's color tag",
		Long: `Change a category's color tag.

Examples:
  todoey category color --id=<category-id> --color="#2ECC71"

  # Reassign the color a new category would get
  todoey category color --id=<category-id> --reset
`,
		RunE: runColor,
	}

	cmd.Flags().String("id", "", "Category ID (required)")
	cmd.Flags().String("color", "", "Color tag in #RRGGBB format")
	cmd.Flags().Bool("reset", false, "Reassign the color a new category would get")

	return cmd
}

func runColor(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.CategoryIDFlag(cmd, "id")
		if err != nil {
			return cli.UsageError(formatter, err)
		}

		reset, _ := cmd.Flags().GetBool("reset")
		color := ""
		if !reset {
			color, err = cli.RequiredString(cmd, "color")
			if err != nil {
				return cli.UsageError(formatter, err)
			}
			if err := cli.ValidateColorHex(color); err != nil {
				return formatter.FailWith(cli.ExitValidation, "INVALID_COLOR", err, "")
			}
		}

		category, err := c.Store().SetCategoryColor(ctx, id, color)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("category", category, func() {
			formatter.Printf("✓ %s now uses %s\n", styles.RenderCategory(category), category.ColorTag)
		})
	})
}
