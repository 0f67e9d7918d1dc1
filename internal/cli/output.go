package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd and all of its subcommands
func AddOutputFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("quiet", false, "Minimal output (IDs only)")
}

// NewFormatter builds a formatter from cmd's output flags and streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Printf writes human-readable output
func (f *OutputFormatter) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(f.out(), format, args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

// Success outputs a successful operation result. In quiet mode only the id
// is printed; human renders the human-readable form.
func (f *OutputFormatter) Success(key string, data any, human func()) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			f.Printf("%s\n", idGetter.GetID())
		}
		return nil
	}

	if f.JSON {
		payload := map[string]any{"success": true}
		if data != nil {
			payload[key] = data
		}
		return json.NewEncoder(f.out()).Encode(payload)
	}

	if human != nil {
		human()
		return nil
	}
	f.Printf("%+v\n", data)
	return nil
}

// IDs prints one id per line; used by list commands in quiet mode
func IDs[T interface{ GetID() string }](f *OutputFormatter, items []T) {
	for _, item := range items {
		f.Printf("%s\n", item.GetID())
	}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err and returns an *ExitError carrying its exit code
func (f *OutputFormatter) Fail(err error) error {
	code, name := classify(err)
	return f.FailWith(code, name, err, "")
}

// FailWith reports err under an explicit exit code and error code
func (f *OutputFormatter) FailWith(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: exitCode, Err: err}
}
