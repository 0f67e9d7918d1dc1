package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/types"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// RequiredString returns a string flag, or an error naming the flag if it is blank
func RequiredString(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return value, nil
}

// CategoryIDFlag reads a category id flag
func CategoryIDFlag(cmd *cobra.Command, name string) (types.CategoryID, error) {
	value, err := RequiredString(cmd, name)
	if err != nil {
		return "", err
	}
	return types.CategoryID(strings.TrimSpace(value)), nil
}

// ItemIDFlag reads an item id flag
func ItemIDFlag(cmd *cobra.Command, name string) (types.ItemID, error) {
	value, err := RequiredString(cmd, name)
	if err != nil {
		return "", err
	}
	return types.ItemID(strings.TrimSpace(value)), nil
}

// UsageError reports a flag problem and returns an ExitUsage error
func UsageError(f *OutputFormatter, err error) error {
	return f.FailWith(ExitUsage, "USAGE_ERROR", err, "Run with --help to see the required flags")
}
