// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"strings"
)

// EntryVisitor is invoked for every entry of a sidebar in declaration order.
// The parent of top-level entries is nil.
type EntryVisitor func(entry *NavEntry, parent *NavEntry, path string) error

// Parent returns the category (if any) containing this entry
func (e *NavEntry) Parent() *NavEntry {
	return e.parent
}

// SetParent sets the category containing this entry
func (e *NavEntry) SetParent(parent *NavEntry) {
	e.parent = parent
}

// Parents returns the path of categories from the sidebar root to the parent
// of this entry
func (e *NavEntry) Parents() []*NavEntry {
	var parent *NavEntry
	if parent = e.parent; parent == nil {
		return nil
	}
	return append(parent.Parents(), parent)
}

// SetParentsDownwards walks recursively the hierarchy under this entry to set the
// parent property.
func (e *NavEntry) SetParentsDownwards() {
	for _, child := range e.Items {
		if child == nil {
			continue
		}
		child.parent = e
		child.SetParentsDownwards()
	}
}

// Walk visits the sidebar entries depth-first in declaration order.
// Nil entries are visited too, so that visitors can report them.
func (s *Sidebar) Walk(visit EntryVisitor) error {
	return walk(s.Items, nil, s.ID, visit)
}

func walk(entries []*NavEntry, parent *NavEntry, path string, visit EntryVisitor) error {
	for i, entry := range entries {
		p := fmt.Sprintf("%s[%d]", path, i)
		if err := visit(entry, parent, p); err != nil {
			return err
		}
		if entry == nil {
			continue
		}
		if err := walk(entry.Items, entry, p+".items", visit); err != nil {
			return err
		}
	}
	return nil
}

// DocIDs returns the ids of all documents referenced by the sidebar,
// depth-first in declaration order
func (s *Sidebar) DocIDs() []string {
	var ids []string
	_ = s.Walk(func(entry *NavEntry, _ *NavEntry, _ string) error {
		if entry != nil && entry.Type == EntryTypeDoc {
			ids = append(ids, entry.ID)
		}
		return nil
	})
	return ids
}

// Outline renders the sidebar as an indented list, one entry per line
func (s *Sidebar) Outline() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.ID)
	_ = s.Walk(func(entry *NavEntry, _ *NavEntry, _ string) error {
		if entry == nil {
			return nil
		}
		b.WriteString(strings.Repeat("  ", len(entry.Parents())+1))
		b.WriteString(entry.title())
		b.WriteString("\n")
		return nil
	})
	return b.String()
}

func (e *NavEntry) title() string {
	if e.Type == EntryTypeCategory {
		return e.Label + "/"
	}
	return e.ID
}

func (e *NavEntry) String() string {
	s, err := Serialize(e)
	if err != nil {
		return ""
	}
	return s
}
