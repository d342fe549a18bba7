// Package menu defines the item model, the registry of menu definitions,
// and the adapter seams (loaders, actions, fields, info providers) through
// which menus read and mutate the host. The navigation core depends only on
// these narrow interfaces, never on host internals.
package menu

import (
	"strings"
	"unicode"

	"github.com/softvoice/menuvox/internal/host"
)

// Item represents a selectable menu entry. The payload it stands for is
// owned by the host; the framework only reads labels and hands the ID back
// through callbacks.
type Item struct {
	ID    string
	Label string
	// SearchLabel, when set, narrows what typeahead matches against.
	// Display labels often carry state suffixes that should not be
	// searchable.
	SearchLabel string
}

// SearchText returns the string typeahead matches against.
func (i Item) SearchText() string {
	if i.SearchLabel != "" {
		return i.SearchLabel
	}
	return i.Label
}

// Context carries host accessors needed by loaders, actions, and fields.
type Context struct {
	Store *host.Store
}

// Loader populates a level's entries on demand. The parent item is the
// entry that was drilled into; for root menus it is the zero Item.
type Loader func(Context, Item) ([]Item, error)

// Action runs when a leaf entry is activated. The returned string is
// spoken as feedback.
type Action func(Context, Item) (string, error)

// Field is the single seam through which edit-mode commits reach the host.
// Everything else in the framework is read-only against it.
type Field interface {
	Label() string
	Value() string
	Commit(value string) error
}

// FieldProvider resolves the editable field behind an item, if any.
type FieldProvider func(Context, Item) (Field, bool)

// InfoProvider resolves read-only info-card text for an item, if any.
type InfoProvider func(Context, Item) (string, bool)

// GridColumn is one column of a grid menu. Columns may have unequal
// lengths.
type GridColumn struct {
	ID    string
	Title string
	Cells []Item
}

// GridModel is the full content of a grid menu.
type GridModel struct {
	Columns []GridColumn
}

// Counts returns the per-column cell counts for grid cursor arithmetic.
func (g *GridModel) Counts() []int {
	counts := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		counts[i] = len(col.Cells)
	}
	return counts
}

// GridLoader populates a grid menu on demand.
type GridLoader func(Context) (*GridModel, error)

// GridAction runs when a grid cell is activated.
type GridAction func(ctx Context, columnID string, cell Item) (string, error)

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: "plugins", Label: "plugins"},
		{ID: "settings", Label: "settings"},
		{ID: "priorities", Label: "priorities"},
	}
}

// PrettyLabel renders a registry id as a human title: separators become
// spaces and the first word is capitalised.
func PrettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if i == 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		if i > 0 {
			runes[0] = unicode.ToLower(runes[0])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
