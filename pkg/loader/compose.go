// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"github.com/workspace/sitecfg/pkg/api"
)

// Bundle is a site and navigation tree pair that passed the composition
// check. It is handed to the external build tool as is.
type Bundle struct {
	Site     *api.SiteConfig
	Sidebars *api.NavigationTree
}

// Compose runs the composition check over an already validated site and
// navigation tree
func Compose(site *api.SiteConfig, tree *api.NavigationTree) (*Bundle, error) {
	if err := api.ValidateReferences(site, tree); err != nil {
		return nil, err
	}
	return &Bundle{Site: site, Sidebars: tree}, nil
}

// Load loads the site and the sidebars and composes them. When no sidebar
// source is given the sidebars are taken from the site's docs options, or
// from the embedded declaration if the site is embedded too.
func (l *Loader) Load(site Source, sidebars ...Source) (*Bundle, error) {
	s, err := l.LoadSite(site)
	if err != nil {
		return nil, err
	}
	if len(sidebars) == 0 {
		sidebars = l.referencedSidebars(s, site)
	}
	tree, err := l.LoadSidebars(sidebars...)
	if err != nil {
		return nil, err
	}
	return Compose(s, tree)
}

func (l *Loader) referencedSidebars(site *api.SiteConfig, src Source) []Source {
	if _, ok := src.(fileSource); !ok {
		return []Source{EmbeddedSidebars()}
	}
	var srcs []Source
	for _, p := range SidebarPaths(site, src.Name()) {
		srcs = append(srcs, File(p))
	}
	if len(srcs) == 0 {
		return []Source{EmbeddedSidebars()}
	}
	return srcs
}
