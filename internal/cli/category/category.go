package category

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
)

// CategoryCmd returns the category parent command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}
	cli.AddOutputFlags(cmd)

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(ColorCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
