// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"

	"github.com/workspace/sitecfg/pkg/api"
)

// EntryTransformation is the way callers can contribute to the sidebar
// processing. It is invoked for every non-nil entry, parents before children.
type EntryTransformation func(entry *api.NavEntry, parent *api.NavEntry) error

func processTree(tree *api.NavigationTree, functions ...EntryTransformation) error {
	for i := range functions {
		for _, s := range tree.Sidebars {
			for _, entry := range s.Items {
				if err := processTransformation(functions[i], entry, nil); err != nil {
					return fmt.Errorf("sidebar %s -> %w", s.ID, err)
				}
			}
		}
	}
	return nil
}

func processTransformation(f EntryTransformation, entry *api.NavEntry, parent *api.NavEntry) error {
	if entry == nil {
		return nil
	}
	if err := f(entry, parent); err != nil {
		return err
	}
	for _, child := range entry.Items {
		if err := processTransformation(f, child, entry); err != nil {
			if entry.Type == api.EntryTypeCategory {
				return fmt.Errorf("category %s -> %w", entry.Label, err)
			}
			return err
		}
	}
	return nil
}

// decideEntryType types entry mappings that omit `type`. Entries that match
// no variant or both are left untyped and reported by validation.
func decideEntryType(entry *api.NavEntry, _ *api.NavEntry) error {
	if entry.Type != "" {
		return nil
	}
	isDoc := entry.ID != ""
	isCategory := len(entry.Items) > 0 || (entry.ID == "" && entry.Label != "")
	switch {
	case isDoc && !isCategory:
		entry.Type = api.EntryTypeDoc
	case isCategory && !isDoc:
		entry.Type = api.EntryTypeCategory
	}
	return nil
}

func setParent(entry *api.NavEntry, parent *api.NavEntry) error {
	entry.SetParent(parent)
	return nil
}
