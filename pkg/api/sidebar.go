// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// NavigationTree maps sidebar ids to ordered entry sequences. Sidebars keep
// the order they were declared in.
type NavigationTree struct {
	Sidebars []*Sidebar
}

// Sidebar is a named, ordered navigation tree shown alongside documentation pages
type Sidebar struct {
	ID    string
	Items []*NavEntry
}

// EntryType is the variant of a NavEntry
type EntryType string

const (
	// EntryTypeDoc is a leaf referencing a document by id
	EntryTypeDoc EntryType = "doc"
	// EntryTypeCategory is a labeled node containing further entries
	EntryTypeCategory EntryType = "category"
)

// NavEntry is a node in a sidebar. A doc entry is declared as a bare document
// id or as `{type: doc, id}`. A category is declared as
// `{type: category, label, items}`.
type NavEntry struct {
	// Type is the entry variant. When omitted in a mapping it is decided
	// from the fields the entry sets.
	Type EntryType `yaml:"type,omitempty"`
	// ID is the referenced document id of a doc entry.
	ID string `yaml:"id,omitempty"`
	// Label is the category label or the doc entry display label.
	Label string `yaml:"label,omitempty"`
	// Collapsed sets the initial state of a category.
	Collapsed *bool `yaml:"collapsed,omitempty"`
	// Items are the child entries of a category.
	Items []*NavEntry `yaml:"items,omitempty"`

	parent *NavEntry
}

// Doc creates a document reference entry
func Doc(id string) *NavEntry {
	return &NavEntry{Type: EntryTypeDoc, ID: id}
}

// Category creates a category entry and links its items to it
func Category(label string, items ...*NavEntry) *NavEntry {
	c := &NavEntry{Type: EntryTypeCategory, Label: label, Items: items}
	c.SetParentsDownwards()
	return c
}

// Sidebar returns the sidebar declared with id
func (t *NavigationTree) Sidebar(id string) (*Sidebar, bool) {
	if t == nil {
		return nil, false
	}
	for _, s := range t.Sidebars {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// IDs returns the sidebar ids in declaration order
func (t *NavigationTree) IDs() []string {
	ids := make([]string, 0, len(t.Sidebars))
	for _, s := range t.Sidebars {
		ids = append(ids, s.ID)
	}
	return ids
}

// UnmarshalYAML decodes a mapping of sidebar ids, keeping declaration order.
// Anything but a mapping at the top level is malformed, and so is a sidebar
// id declared twice.
func (t *NavigationTree) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return malformed("", "top-level sidebar declaration must be a mapping of sidebar ids, found %s", kindName(value))
	}
	var errs *multierror.Error
	declared := map[string]int{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			errs = multierror.Append(errs, malformed(at("sidebar id", key), "must be a non-empty string"))
			continue
		}
		if line, ok := declared[key.Value]; ok {
			errs = multierror.Append(errs, malformed(key.Value, "is declared twice (lines %d and %d)", line, key.Line))
			continue
		}
		declared[key.Value] = key.Line
		if val.Kind != yaml.SequenceNode {
			errs = multierror.Append(errs, malformed(at(key.Value, val), "must be a sequence of entries, found %s", kindName(val)))
			continue
		}
		s := &Sidebar{ID: key.Value}
		if err := val.Decode(&s.Items); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		t.Sidebars = append(t.Sidebars, s)
	}
	return errs.ErrorOrNil()
}

// MarshalYAML writes the sidebars as a mapping in declaration order
func (t NavigationTree) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range t.Sidebars {
		items := &yaml.Node{}
		if err := items.Encode(s.Items); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.ID}, items)
	}
	return n, nil
}

// UnmarshalYAML accepts a bare document id or an entry mapping
func (e *NavEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		e.Type = EntryTypeDoc
		if value.Tag == "!!null" {
			return nil
		}
		return value.Decode(&e.ID)
	case yaml.MappingNode:
		type plain NavEntry
		return value.Decode((*plain)(e))
	}
	return malformed(at("sidebar entry", value), "must be a document id or a mapping, found %s", kindName(value))
}

// MarshalYAML writes plain document references as bare ids
func (e NavEntry) MarshalYAML() (interface{}, error) {
	if e.Type == EntryTypeDoc && e.Label == "" && e.Collapsed == nil && len(e.Items) == 0 {
		return e.ID, nil
	}
	type plain NavEntry
	return plain(e), nil
}
