package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todoey/internal/app"
	"github.com/thenoetrevino/todoey/internal/config"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/testutil"
	"github.com/thenoetrevino/todoey/internal/types"
)

// SetupCLITest creates an App over in-memory storage.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles with the cli package.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	cfg.Storage.Path = t.TempDir()

	appInstance, err := app.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })
	return appInstance
}

// CreateTestCategory wraps testutil.CreateTestCategory for CLI tests
func CreateTestCategory(t *testing.T, a *app.App, name string) *models.Category {
	t.Helper()
	return testutil.CreateTestCategory(t, a.Store, name)
}

// CreateTestItem wraps testutil.CreateTestItem for CLI tests
func CreateTestItem(t *testing.T, a *app.App, categoryID types.CategoryID, title string) *models.Item {
	t.Helper()
	return testutil.CreateTestItem(t, a.Store, categoryID, title)
}

// CreateHomeCategory wraps testutil.CreateHomeCategory for CLI tests
func CreateHomeCategory(t *testing.T, a *app.App) (*models.Category, []*models.Item) {
	t.Helper()
	return testutil.CreateHomeCategory(t, a.Store)
}
