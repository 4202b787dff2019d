package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Category keys of the metadata document.
const (
	KeyLanguage     = "language"
	KeyBootVersion  = "bootVersion"
	KeyPackaging    = "packaging"
	KeyJavaVersion  = "javaVersion"
	KeyDependencies = "dependencies"

	// Text categories; optional, they only carry a default.
	KeyGroupID     = "groupId"
	KeyArtifactID  = "artifactId"
	KeyName        = "name"
	KeyDescription = "description"
	KeyVersion     = "version"
	KeyPackageName = "packageName"
)

// Entry is one selectable value of a category.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SchemaCategory is the normalized shape shared by every flat single-select
// category (language, bootVersion, packaging, javaVersion).
type SchemaCategory struct {
	Kind      string  `json:"type"`
	DefaultID string  `json:"default"`
	Entries   []Entry `json:"values"`
}

// Document is a fetched metadata document. Categories are decoded lazily so a
// malformed category only affects the step that consults it.
type Document struct {
	categories map[string]json.RawMessage
}

// Parse decodes and shape-checks a raw metadata body. It fails when the body
// is not a JSON object or lacks one of the required top-level categories.
func Parse(data []byte) (*Document, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var categories map[string]json.RawMessage
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decoding metadata document: %w", err)
	}
	return &Document{categories: categories}, nil
}

// Raw returns the undecoded JSON of a category.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	if d == nil {
		return nil, false
	}
	raw, ok := d.categories[key]
	return raw, ok
}

// Keys returns the document's category keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.categories))
	for k := range d.categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Category decodes key into a SchemaCategory.
func (d *Document) Category(key string) (*SchemaCategory, error) {
	raw, ok := d.Raw(key)
	if !ok {
		return nil, &SchemaError{Category: key, Err: errMissingCategory}
	}

	var cat SchemaCategory
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, &SchemaError{Category: key, Err: err}
	}
	if len(cat.Entries) == 0 {
		return nil, &SchemaError{Category: key, Err: errNoEntries}
	}
	return &cat, nil
}
