package metadata

import (
	"encoding/json"
	"strings"
)

// ResolvedOptions is a category projected onto a menu: display names in the
// server's declared order, the parallel ids, and where the default sits.
type ResolvedOptions struct {
	IDs          []string
	DisplayNames []string
	DefaultIndex int
	HasDefault   bool
}

// Preselected returns the index to highlight initially. An unmatched default
// falls back to the first entry.
func (o ResolvedOptions) Preselected() int {
	if o.HasDefault {
		return o.DefaultIndex
	}
	return 0
}

// Len returns the number of options.
func (o ResolvedOptions) Len() int { return len(o.IDs) }

// Resolve maps the category stored under key onto ResolvedOptions. Entry
// order is preserved exactly; the default id is matched after trimming
// surrounding whitespace on both sides. A default matching no entry leaves
// HasDefault false rather than failing.
func Resolve(doc *Document, key string) (ResolvedOptions, error) {
	cat, err := doc.Category(key)
	if err != nil {
		return ResolvedOptions{}, err
	}
	return ResolveCategory(cat), nil
}

// ResolveCategory is Resolve for an already-decoded category.
func ResolveCategory(cat *SchemaCategory) ResolvedOptions {
	opts := ResolvedOptions{
		IDs:          make([]string, len(cat.Entries)),
		DisplayNames: make([]string, len(cat.Entries)),
	}

	want := strings.TrimSpace(cat.DefaultID)
	for i, e := range cat.Entries {
		opts.IDs[i] = e.ID
		opts.DisplayNames[i] = e.Name
		if opts.DisplayNames[i] == "" {
			opts.DisplayNames[i] = e.ID
		}
		if want != "" && !opts.HasDefault && strings.TrimSpace(e.ID) == want {
			opts.DefaultIndex = i
			opts.HasDefault = true
		}
	}
	return opts
}

// textCategory is the shape of free-text categories such as groupId.
type textCategory struct {
	Kind    string `json:"type"`
	Default string `json:"default"`
}

// TextDefault returns the server-declared default of a text category. ok is
// false when the category is absent, malformed, or has an empty default.
func TextDefault(doc *Document, key string) (string, bool) {
	raw, ok := doc.Raw(key)
	if !ok {
		return "", false
	}
	var tc textCategory
	if err := json.Unmarshal(raw, &tc); err != nil {
		return "", false
	}
	if strings.TrimSpace(tc.Default) == "" {
		return "", false
	}
	return tc.Default, true
}
