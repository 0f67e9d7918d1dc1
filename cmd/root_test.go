package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/logging"
)

// writeConfig writes a config using the file backend under a temp data dir
func writeConfig(t *testing.T) (configPath, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "data")
	configPath = filepath.Join(dir, "config.yaml")
	content := "storage:\n  backend: file\n  codec: yaml\n  path: " + dataDir + "\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	t.Cleanup(func() { _ = logging.Close() })
	return configPath, dataDir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_EndToEnd(t *testing.T) {
	configPath, dataDir := writeConfig(t)

	out, stderr, err := execute(t, "--config", configPath, "category", "create", "--name", "Home", "--quiet")
	require.NoError(t, err, stderr)
	categoryID := strings.TrimSpace(out)
	require.NotEmpty(t, categoryID)

	for _, title := range []string{"Find Mike", "Buy Eggos", "Destroy Demogorgon"} {
		_, stderr, err = execute(t, "--config", configPath, "item", "add", "--category", categoryID, "--title", title)
		require.NoError(t, err, stderr)
	}

	out, stderr, err = execute(t, "--config", configPath, "item", "list", "--category", categoryID, "--sort", "title", "--json")
	require.NoError(t, err, stderr)

	var result struct {
		Success bool `json:"success"`
		Items   []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "Buy Eggos", result.Items[0].Title)
	assert.Equal(t, "Destroy Demogorgon", result.Items[1].Title)
	assert.Equal(t, "Find Mike", result.Items[2].Title)

	// The file backend and the log file live under the configured data dir
	assert.DirExists(t, filepath.Join(dataDir, "records"))
	assert.FileExists(t, filepath.Join(dataDir, "logs", "todoey.log"))
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: floppy\n"), 0o644))

	_, stderr, err := execute(t, "--config", path, "category", "list")
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	assert.Contains(t, stderr, "floppy")
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	configPath, _ := writeConfig(t)

	_, _, err := execute(t, "--config", configPath, "category", "list", "--bogus")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestConfigInit(t *testing.T) {
	configPath, _ := writeConfig(t)
	target := filepath.Join(t.TempDir(), "written.yaml")

	// The existing file is refused without --force
	_, _, err := execute(t, "--config", configPath, "config", "init")
	require.Error(t, err)

	out, _, err := execute(t, "--config", configPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, configPath, strings.TrimSpace(out))

	require.NoError(t, os.Rename(configPath, target))
	_, _, err = execute(t, "--config", target, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: file")
	assert.Contains(t, string(data), "default_color:")
}
