package category

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
	"github.com/thenoetrevino/todoey/internal/datastore"
)

// CreateCmd returns the category create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new category",
		Long: `Create a new, empty category.

Examples:
  # Create with the configured default color
  todoey category create --name="Home"

  # Pick the color tag yourself
  todoey category create --name="Work" --color="#E74C3C"

  # Quiet mode for bash capture
  CATEGORY_ID=$(todoey category create --name="Home" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Category name (required)")
	cmd.Flags().String("color", "", "Color tag in #RRGGBB format")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		name, err := cli.RequiredString(cmd, "name")
		if err != nil {
			return cli.UsageError(formatter, err)
		}
		color, _ := cmd.Flags().GetString("color")
		if color != "" {
			if err := cli.ValidateColorHex(color); err != nil {
				return formatter.FailWith(cli.ExitValidation, "INVALID_COLOR", err, "")
			}
		}

		category, err := c.Store().CreateCategory(ctx, datastore.CreateCategoryRequest{
			Name:     name,
			ColorTag: color,
		})
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success("category", category, func() {
			formatter.Printf("✓ Category %s created (ID: %s)\n",
				styles.RenderCategory(category), category.ID)
		})
	})
}
