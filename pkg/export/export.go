// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"context"
	"fmt"

	"github.com/workspace/sitecfg/pkg/api"
	"github.com/workspace/sitecfg/pkg/loader"
	"github.com/workspace/sitecfg/pkg/writers"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Format is the serialization of the exported declarations
type Format string

const (
	// FormatJSON writes JSON keeping the declaration order of every mapping
	FormatJSON Format = "json"
	// FormatYAML writes YAML
	FormatYAML Format = "yaml"
)

const (
	// SiteFile is the base name of the exported site configuration
	SiteFile = "docusaurus.config"
	// SidebarsFile is the base name of the exported navigation tree
	SidebarsFile = "sidebars"
)

// ParseFormat validates a format name. An empty name selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q, use %q or %q", s, FormatJSON, FormatYAML)
}

// Exporter hands a composed bundle to the external build tool by writing
// the site configuration and the navigation tree in the shape it reads
type Exporter struct {
	Writer writers.Writer
	Format Format
	// Path is the directory, relative to the writer root, the files are written to
	Path string
}

// Export writes the site configuration and the navigation tree. The docs
// sidebar path of the exported site points at the exported navigation tree.
func (e *Exporter) Export(ctx context.Context, bundle *loader.Bundle) error {
	format := e.Format
	if format == "" {
		format = FormatJSON
	}
	sidebarsName := fmt.Sprintf("%s.%s", SidebarsFile, format)
	files := []struct {
		name  string
		value interface{}
	}{
		{fmt.Sprintf("%s.%s", SiteFile, format), withSidebarPath(bundle.Site, "./"+sidebarsName)},
		{sidebarsName, bundle.Sidebars},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := Marshal(format, f.value)
		if err != nil {
			return fmt.Errorf("can't serialize %s: %w", f.name, err)
		}
		if err = e.Writer.Write(f.name, e.Path, content); err != nil {
			return fmt.Errorf("can't write %s: %w", f.name, err)
		}
		klog.V(1).Infof("exported %s (%d bytes)", f.name, len(content))
	}
	return nil
}

// Marshal serializes v in format
func Marshal(format Format, v interface{}) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(v)
	case FormatYAML:
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// withSidebarPath returns a copy of site whose docs options reference
// sidebarPath. The site itself is not modified.
func withSidebarPath(site *api.SiteConfig, sidebarPath string) *api.SiteConfig {
	out := *site
	out.Presets = make([]*api.Preset, 0, len(site.Presets))
	for _, p := range site.Presets {
		if p == nil || p.Options.Docs == nil || p.Options.Docs.SidebarPath == "" {
			out.Presets = append(out.Presets, p)
			continue
		}
		preset := *p
		docs := *p.Options.Docs
		docs.SidebarPath = sidebarPath
		preset.Options.Docs = &docs
		out.Presets = append(out.Presets, &preset)
	}
	return &out
}
