// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"gopkg.in/yaml.v3"
)

// SiteConfig models the site configuration consumed by the static site
// generator. It is constructed once per invocation and treated as read-only
// afterwards.
type SiteConfig struct {
	// Title is the site title.
	//
	// Mandatory
	Title string `yaml:"title"`
	// Tagline is the site subtitle shown on the landing page.
	//
	// Mandatory
	Tagline string `yaml:"tagline"`
	// Favicon is the path to the site icon, relative to the static directory.
	//
	// Optional
	Favicon string `yaml:"favicon,omitempty"`
	// URL is the origin the site is served from, e.g. `https://workspace.github.io`.
	// It must not carry a path; the path belongs to BaseURL.
	//
	// Optional
	URL string `yaml:"url,omitempty"`
	// BaseURL is the path under URL the site is served from. It starts and ends
	// with a slash, e.g. `/bybit-mcp/`.
	//
	// Mandatory
	BaseURL string `yaml:"baseUrl"`
	// OrganizationName is the user or organization owning the repository the
	// site is published from.
	//
	// Mandatory
	OrganizationName string `yaml:"organizationName"`
	// ProjectName is the name of the repository the site is published from.
	//
	// Mandatory
	ProjectName string `yaml:"projectName"`
	// DeploymentBranch is the branch the generated site is pushed to.
	//
	// Optional
	DeploymentBranch string `yaml:"deploymentBranch,omitempty"`
	// OnBrokenLinks selects how the external tool reacts to broken links.
	// Defaults to `throw`.
	//
	// Optional
	OnBrokenLinks Severity `yaml:"onBrokenLinks,omitempty"`
	// I18n holds the internationalization defaults.
	//
	// Mandatory
	I18n I18n `yaml:"i18n"`
	// Presets is the ordered list of preset bundles applied by the tool.
	//
	// Optional
	Presets []*Preset `yaml:"presets,omitempty"`
	// ThemeConfig configures the navigation bar, the footer and syntax highlighting.
	//
	// Mandatory
	ThemeConfig ThemeConfig `yaml:"themeConfig"`
}

// Severity is the reaction of the external tool to a detected problem
type Severity string

const (
	// SeverityIgnore silently ignores the problem
	SeverityIgnore Severity = "ignore"
	// SeverityLog logs the problem
	SeverityLog Severity = "log"
	// SeverityWarn logs the problem as warning
	SeverityWarn Severity = "warn"
	// SeverityThrow fails the build
	SeverityThrow Severity = "throw"
)

// I18n holds the locale defaults of the site
type I18n struct {
	// DefaultLocale is a BCP 47 tag and must be one of Locales
	DefaultLocale string `yaml:"defaultLocale"`
	// Locales is the set of supported BCP 47 locale tags
	Locales []string `yaml:"locales"`
}

// Preset is a named bundle of tool options. In the declaration it is written
// either as the pair `[name, options]` or as a mapping with `name` and `options`.
type Preset struct {
	Name    string        `yaml:"name"`
	Options PresetOptions `yaml:"options"`
}

// PresetOptions are the options of a preset. The known option shapes are
// typed, everything else is kept verbatim in Extra.
type PresetOptions struct {
	// Docs configures documentation routing.
	Docs *DocsOptions `yaml:"docs,omitempty"`
	// Blog is either disabled (`false`) or a set of blog options.
	Blog *ToggleOptions `yaml:"blog,omitempty"`
	// Theme configures the theme styling.
	Theme *ThemeOptions `yaml:"theme,omitempty"`
	// Extra holds tool-specific options passed through untouched.
	Extra map[string]interface{} `yaml:",inline"`
}

// DocsOptions configures documentation routing
type DocsOptions struct {
	// RouteBasePath is the URL route the documentation is served under.
	RouteBasePath string `yaml:"routeBasePath,omitempty"`
	// SidebarPath references the navigation tree declaration, relative to
	// the site declaration.
	SidebarPath string `yaml:"sidebarPath,omitempty"`
	// EditURL is the base of the "edit this page" links.
	EditURL string                 `yaml:"editUrl,omitempty"`
	Extra   map[string]interface{} `yaml:",inline"`
}

// ThemeOptions configures the theme styling
type ThemeOptions struct {
	// CustomCSS references a stylesheet merged into the theme.
	CustomCSS string                 `yaml:"customCss,omitempty"`
	Extra     map[string]interface{} `yaml:",inline"`
}

// ToggleOptions models an option record that can be switched off with `false`
type ToggleOptions struct {
	Disabled bool
	Options  map[string]interface{}
}

// ThemeConfig configures the theme
type ThemeConfig struct {
	Navbar Navbar `yaml:"navbar"`
	Footer Footer `yaml:"footer"`
	Prism  Prism  `yaml:"prism"`
	// Extra holds tool-specific theme options passed through untouched.
	Extra map[string]interface{} `yaml:",inline"`
}

// Navbar is the top navigation bar
type Navbar struct {
	Title string        `yaml:"title"`
	Items []*NavbarItem `yaml:"items,omitempty"`
	// Extra holds tool-specific navbar options such as the logo.
	Extra map[string]interface{} `yaml:",inline"`
}

// NavbarItemKind is the variant of a navbar item
type NavbarItemKind int

const (
	// NavbarItemUnknown is an item matching no variant
	NavbarItemUnknown NavbarItemKind = iota
	// NavbarItemSidebar is a reference to a sidebar of the navigation tree
	NavbarItemSidebar
	// NavbarItemLink is a link to an internal route or an external URL
	NavbarItemLink
	// NavbarItemAmbiguous is an item matching more than one variant
	NavbarItemAmbiguous
)

// NavbarItemTypeDocSidebar is the type of navbar items referencing a sidebar
const NavbarItemTypeDocSidebar = "docSidebar"

// NavbarItem is a navbar entry. It is either a sidebar reference
// (`type: docSidebar` with `sidebarId`) or a link (`href` or `to`).
type NavbarItem struct {
	Type      string   `yaml:"type,omitempty"`
	SidebarID string   `yaml:"sidebarId,omitempty"`
	Href      string   `yaml:"href,omitempty"`
	To        string   `yaml:"to,omitempty"`
	Label     string   `yaml:"label,omitempty"`
	Position  Position `yaml:"position,omitempty"`
	// Extra holds tool-specific item options passed through untouched.
	Extra map[string]interface{} `yaml:",inline"`
}

// Position is the side of the navbar an item is placed on
type Position string

const (
	// PositionLeft places the item on the left side of the navbar
	PositionLeft Position = "left"
	// PositionRight places the item on the right side of the navbar
	PositionRight Position = "right"
)

// Footer is the page footer
type Footer struct {
	Style FooterStyle        `yaml:"style,omitempty"`
	Links []*FooterLinkGroup `yaml:"links,omitempty"`
	// Copyright is a text/template evaluated once at load time.
	// `{{ .Year }}` expands to the current year.
	Copyright string `yaml:"copyright,omitempty"`
	Extra     map[string]interface{} `yaml:",inline"`
}

// FooterStyle is the footer color scheme
type FooterStyle string

const (
	// FooterStyleDark is the dark footer
	FooterStyleDark FooterStyle = "dark"
	// FooterStyleLight is the light footer
	FooterStyleLight FooterStyle = "light"
)

// FooterLinkGroup is a titled column of footer links
type FooterLinkGroup struct {
	Title string        `yaml:"title"`
	Items []*FooterLink `yaml:"items"`
}

// FooterLink is a footer link. Exactly one of To (internal route) and
// Href (external URL) is set.
type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// Prism selects the syntax highlighting themes
type Prism struct {
	// Theme is the prism theme id used in light mode.
	Theme string `yaml:"theme,omitempty"`
	// DarkTheme is the prism theme id used in dark mode.
	DarkTheme string `yaml:"darkTheme,omitempty"`
	// AdditionalLanguages is the set of languages highlighted on top of the defaults.
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty"`
	// Extra holds tool-specific options, e.g. magicComments.
	Extra map[string]interface{} `yaml:",inline"`
}

// UnmarshalYAML accepts the `[name, options]` pair, the `{name, options}`
// mapping and a bare preset name
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&p.Name)
	case yaml.SequenceNode:
		if len(value.Content) == 0 || len(value.Content) > 2 {
			return malformed(at("presets", value), "must be a [name, options] pair, found %d elements", len(value.Content))
		}
		if err := value.Content[0].Decode(&p.Name); err != nil {
			return err
		}
		if len(value.Content) == 2 {
			return value.Content[1].Decode(&p.Options)
		}
		return nil
	case yaml.MappingNode:
		type plain Preset
		return value.Decode((*plain)(p))
	}
	return malformed(at("presets", value), "must be a [name, options] pair, found %s", kindName(value))
}

// MarshalYAML writes the preset in the `[name, options]` pair form the
// external tool expects
func (p Preset) MarshalYAML() (interface{}, error) {
	return []interface{}{p.Name, p.Options}, nil
}

// UnmarshalYAML accepts a boolean or a mapping of options
func (t *ToggleOptions) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return malformed(at("presets.options", value), "must be false or a mapping of options, found %q", value.Value)
		}
		t.Disabled = !enabled
		return nil
	case yaml.MappingNode:
		return value.Decode(&t.Options)
	}
	return malformed(at("presets.options", value), "must be false or a mapping of options, found %s", kindName(value))
}

// MarshalYAML writes `false` for disabled options
func (t ToggleOptions) MarshalYAML() (interface{}, error) {
	if t.Disabled {
		return false, nil
	}
	if t.Options == nil {
		return map[string]interface{}{}, nil
	}
	return t.Options, nil
}

// Kind decides the variant of the navbar item from the fields it sets
func (i *NavbarItem) Kind() NavbarItemKind {
	kind := NavbarItemUnknown
	set := 0
	if i.Type == NavbarItemTypeDocSidebar || i.SidebarID != "" {
		kind = NavbarItemSidebar
		set++
	}
	if i.Href != "" || i.To != "" {
		kind = NavbarItemLink
		set++
	}
	if set > 1 {
		return NavbarItemAmbiguous
	}
	return kind
}
