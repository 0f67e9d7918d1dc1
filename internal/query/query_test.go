package query

import (
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var base = time.Date(2019, 5, 2, 9, 0, 0, 0, time.UTC)

// newItem builds an item created offset minutes after base
func newItem(id, title string, offset int, done bool) *models.Item {
	return &models.Item{
		ID:         types.ItemID(id),
		Title:      title,
		Done:       done,
		CreatedAt:  base.Add(time.Duration(offset) * time.Minute),
		CategoryID: "home",
	}
}

func titles(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func ids(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item.ID)
	}
	return out
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

// homeItems is the "Home" scenario in insertion order
func homeItems() []*models.Item {
	return []*models.Item{
		newItem("1", "Find Mike", 0, false),
		newItem("2", "Buy Eggos", 1, false),
		newItem("3", "Destroy Demogorgon", 2, true),
	}
}

// ============================================================================
// SEARCH
// ============================================================================

func TestSearch_EmptySubstringReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Later", 5, false),
		newItem("2", "Earlier", 1, false),
	}

	got := Search(items, "")
	assertOrder(t, ids(got), []string{"1", "2"})

	// The result is a copy, not the caller's slice
	got[0] = nil
	if items[0] == nil {
		t.Error("Search must not alias its input slice")
	}
}

func TestSearch_CombiningMarkOnlyBehavesLikeEmpty(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Later", 5, false),
		newItem("2", "Earlier", 1, false),
	}

	got := Search(items, "\u0301")
	assertOrder(t, ids(got), []string{"1", "2"})
}

func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Search(homeItems(), "EGG")
	assertOrder(t, titles(got), []string{"Buy Eggos"})
}

func TestSearch_DiacriticInsensitive(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Crème brûlée", 0, false),
		newItem("2", "Creme caramel", 1, false),
		newItem("3", "Pancakes", 2, false),
	}

	assertOrder(t, titles(Search(items, "CREME")), []string{"Crème brûlée", "Creme caramel"})
	assertOrder(t, titles(Search(items, "brulee")), []string{"Crème brûlée"})
	assertOrder(t, titles(Search(items, "crème")), []string{"Crème brûlée", "Creme caramel"})
}

func TestSearch_NoMatches(t *testing.T) {
	t.Parallel()

	got := Search(homeItems(), "waffle")
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", titles(got))
	}
}

func TestSearch_SortsMatchesByCreatedAt(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Buy milk", 30, false),
		newItem("2", "Buy bread", 10, false),
		newItem("3", "Walk dog", 0, false),
		newItem("4", "Buy eggs", 20, false),
	}

	got := Search(items, "buy")
	assertOrder(t, ids(got), []string{"2", "4", "1"})
}

func TestSearch_WithSortOverride(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Buy milk", 30, false),
		newItem("2", "Buy bread", 10, false),
		newItem("3", "Buy apples", 20, false),
	}

	got := Search(items, "buy", WithSort(SortByTitle, false))
	assertOrder(t, titles(got), []string{"Buy milk", "Buy bread", "Buy apples"})
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "Buy milk", 30, false),
		newItem("2", "Buy bread", 10, false),
	}
	_ = Search(items, "buy")
	assertOrder(t, ids(items), []string{"1", "2"})
}

// ============================================================================
// SORT
// ============================================================================

func TestSortBy_TitleScenario(t *testing.T) {
	t.Parallel()

	got, err := SortBy(homeItems(), SortByTitle, true)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, titles(got), []string{"Buy Eggos", "Destroy Demogorgon", "Find Mike"})

	desc, err := SortBy(homeItems(), SortByTitle, false)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, titles(desc), []string{"Find Mike", "Destroy Demogorgon", "Buy Eggos"})
}

func TestSortBy_CreatedAt(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("a", "a", 3, false),
		newItem("b", "b", 1, false),
		newItem("c", "c", 2, false),
	}

	asc, err := SortBy(items, SortByCreatedAt, true)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, ids(asc), []string{"b", "c", "a"})

	desc, err := SortBy(items, SortByCreatedAt, false)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, ids(desc), []string{"a", "c", "b"})
}

func TestSortBy_DoneIsStableBothWays(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "one", 0, true),
		newItem("2", "two", 1, false),
		newItem("3", "three", 2, true),
		newItem("4", "four", 3, false),
	}

	asc, err := SortBy(items, SortByDone, true)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, ids(asc), []string{"2", "4", "1", "3"})

	desc, err := SortBy(items, SortByDone, false)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, ids(desc), []string{"1", "3", "2", "4"})

	// Input untouched
	assertOrder(t, ids(items), []string{"1", "2", "3", "4"})
}

func TestSortBy_EqualTitlesKeepInputOrder(t *testing.T) {
	t.Parallel()

	items := []*models.Item{
		newItem("1", "apple", 0, false),
		newItem("2", "Apple", 1, false),
		newItem("3", "APPLE", 2, false),
	}

	got, err := SortBy(items, SortByTitle, true)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	assertOrder(t, ids(got), []string{"1", "2", "3"})
}

func TestSortBy_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := SortBy(homeItems(), SortKey("priority"), true)
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want SortKey
		ok   bool
	}{
		{"title", SortByTitle, true},
		{"Name", SortByTitle, true},
		{"createdAt", SortByCreatedAt, true},
		{"created", SortByCreatedAt, true},
		{"done", SortByDone, true},
		{" DONE ", SortByDone, true},
		{"priority", "", false},
	}

	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseSortKey(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, models.ErrValidation) {
			t.Errorf("ParseSortKey(%q) should fail with a validation error, got %v", tt.in, err)
		}
	}
}
