package metadata

import (
	"encoding/json"
	"errors"
)

// Dependency is one selectable dependency. Group records the server group it
// was listed under; it is informational only and never a choice itself.
type Dependency struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	VersionRange string `json:"versionRange,omitempty" yaml:"versionRange,omitempty"`
	Group        string `json:"group" yaml:"group"`
}

// DisplayName returns Name, falling back to ID.
func (d Dependency) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

type dependencyGroup struct {
	Name   string       `json:"name"`
	Values []Dependency `json:"values"`
}

type dependencyCategory struct {
	Kind   string            `json:"type"`
	Values []dependencyGroup `json:"values"`
}

// ResolveDependencies flattens the two-level dependency structure into one
// list: groups in declared order, members in their declared order within each
// group. It fails only when the dependencies category is absent or
// malformed; a group without values contributes nothing.
func ResolveDependencies(doc *Document) ([]Dependency, error) {
	raw, ok := doc.Raw(KeyDependencies)
	if !ok {
		return nil, &SchemaError{Category: KeyDependencies, Err: errMissingCategory}
	}

	var cat dependencyCategory
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, &SchemaError{Category: KeyDependencies, Err: err}
	}
	if cat.Values == nil && !hasKey(raw, "values") {
		return nil, &SchemaError{Category: KeyDependencies, Err: errors.New(`missing "values" array`)}
	}

	var deps []Dependency
	for _, g := range cat.Values {
		for _, d := range g.Values {
			d.Group = g.Name
			deps = append(deps, d)
		}
	}
	return deps, nil
}

// Compatible returns the dependencies usable with bootVersion, preserving
// order. An empty bootVersion keeps everything.
func Compatible(deps []Dependency, bootVersion string) []Dependency {
	if bootVersion == "" {
		return deps
	}
	out := make([]Dependency, 0, len(deps))
	for _, d := range deps {
		if InRange(d.VersionRange, bootVersion) {
			out = append(out, d)
		}
	}
	return out
}

func hasKey(raw json.RawMessage, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}
