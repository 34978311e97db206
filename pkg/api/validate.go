// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"
)

// PrismThemes are the syntax highlighting theme ids the external tool ships
var PrismThemes = []string{
	"dracula", "duotoneDark", "duotoneLight", "github", "gruvboxMaterialDark",
	"gruvboxMaterialLight", "jettwaveDark", "jettwaveLight", "nightOwl", "nightOwlLight",
	"oceanicNext", "okaidia", "oneDark", "oneLight", "palenight", "shadesOfPurple",
	"synthwave84", "ultramin", "vsDark", "vsLight",
}

// ValidateSite performs validation of a site declaration. All violations
// are collected and returned together, each wrapping ErrConfigMalformed.
func ValidateSite(site *SiteConfig) error {
	if site == nil {
		return malformed("", "site declaration is missing")
	}
	var errs *multierror.Error
	errs = validateIdentity(site, errs)
	errs = validateI18n(&site.I18n, errs)
	errs = validatePresets(site.Presets, errs)
	errs = validateNavbar(&site.ThemeConfig.Navbar, errs)
	errs = validateFooter(&site.ThemeConfig.Footer, errs)
	errs = validatePrism(&site.ThemeConfig.Prism, errs)
	return errs.ErrorOrNil()
}

func validateIdentity(site *SiteConfig, errs *multierror.Error) *multierror.Error {
	required := []struct {
		field string
		value string
	}{
		{"title", site.Title},
		{"tagline", site.Tagline},
		{"baseUrl", site.BaseURL},
		{"organizationName", site.OrganizationName},
		{"projectName", site.ProjectName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = multierror.Append(errs, malformed(r.field, "is required"))
		}
	}
	if site.BaseURL != "" && (!strings.HasPrefix(site.BaseURL, "/") || !strings.HasSuffix(site.BaseURL, "/")) {
		errs = multierror.Append(errs, malformed("baseUrl", "must start and end with a slash, found %q", site.BaseURL))
	}
	if site.URL != "" {
		u, err := url.Parse(site.URL)
		switch {
		case err != nil:
			errs = multierror.Append(errs, malformed("url", "is not a valid URL: %v", err))
		case (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
			errs = multierror.Append(errs, malformed("url", "must be an absolute http(s) URL, found %q", site.URL))
		case u.Path != "" && u.Path != "/":
			errs = multierror.Append(errs, malformed("url", "must not have a path, move %q to baseUrl", u.Path))
		}
	}
	switch site.OnBrokenLinks {
	case "", SeverityIgnore, SeverityLog, SeverityWarn, SeverityThrow:
	default:
		errs = multierror.Append(errs, malformed("onBrokenLinks", "must be one of %v, found %q",
			[]Severity{SeverityIgnore, SeverityLog, SeverityWarn, SeverityThrow}, site.OnBrokenLinks))
	}
	return errs
}

func validateI18n(i18n *I18n, errs *multierror.Error) *multierror.Error {
	if i18n.DefaultLocale == "" {
		errs = multierror.Append(errs, malformed("i18n.defaultLocale", "is required"))
	}
	if len(i18n.Locales) == 0 {
		return multierror.Append(errs, malformed("i18n.locales", "must contain at least the default locale"))
	}
	seen := map[string]bool{}
	for i, l := range i18n.Locales {
		if _, err := language.Parse(l); err != nil {
			errs = multierror.Append(errs, malformed(fmt.Sprintf("i18n.locales[%d]", i), "%q is not a BCP 47 tag: %v", l, err))
		}
		if seen[l] {
			errs = multierror.Append(errs, malformed(fmt.Sprintf("i18n.locales[%d]", i), "%q is listed twice", l))
		}
		seen[l] = true
	}
	if i18n.DefaultLocale != "" && !seen[i18n.DefaultLocale] {
		errs = multierror.Append(errs, malformed("i18n.locales", "must contain the default locale %q", i18n.DefaultLocale))
	}
	return errs
}

func validatePresets(presets []*Preset, errs *multierror.Error) *multierror.Error {
	for i, p := range presets {
		field := fmt.Sprintf("presets[%d]", i)
		if p == nil {
			errs = multierror.Append(errs, malformed(field, "is empty"))
			continue
		}
		if strings.TrimSpace(p.Name) == "" {
			errs = multierror.Append(errs, malformed(field, "has no name"))
		}
		if docs := p.Options.Docs; docs != nil {
			if docs.RouteBasePath != "" && !strings.HasPrefix(docs.RouteBasePath, "/") {
				errs = multierror.Append(errs, malformed(field+".docs.routeBasePath", "must start with a slash, found %q", docs.RouteBasePath))
			}
			if docs.EditURL != "" {
				if u, err := url.Parse(docs.EditURL); err != nil || !u.IsAbs() {
					errs = multierror.Append(errs, malformed(field+".docs.editUrl", "must be an absolute URL, found %q", docs.EditURL))
				}
			}
		}
	}
	return errs
}

func validateNavbar(navbar *Navbar, errs *multierror.Error) *multierror.Error {
	for i, item := range navbar.Items {
		field := fmt.Sprintf("themeConfig.navbar.items[%d]", i)
		if item == nil {
			errs = multierror.Append(errs, malformed(field, "is empty"))
			continue
		}
		switch item.Kind() {
		case NavbarItemUnknown:
			errs = multierror.Append(errs, malformed(field, "is neither a sidebar reference nor a link"))
		case NavbarItemAmbiguous:
			errs = multierror.Append(errs, malformed(field, "is both a sidebar reference and a link"))
		case NavbarItemSidebar:
			if item.Type != NavbarItemTypeDocSidebar {
				errs = multierror.Append(errs, malformed(field+".type", "must be %q for sidebar references, found %q", NavbarItemTypeDocSidebar, item.Type))
			}
			if item.SidebarID == "" {
				errs = multierror.Append(errs, malformed(field+".sidebarId", "is required"))
			}
		case NavbarItemLink:
			if item.Href != "" && item.To != "" {
				errs = multierror.Append(errs, malformed(field, "sets both href and to"))
			}
			if item.Label == "" {
				errs = multierror.Append(errs, malformed(field+".label", "is required for links"))
			}
		}
		switch item.Position {
		case "", PositionLeft, PositionRight:
		default:
			errs = multierror.Append(errs, malformed(field+".position", "must be %q or %q, found %q", PositionLeft, PositionRight, item.Position))
		}
	}
	return errs
}

func validateFooter(footer *Footer, errs *multierror.Error) *multierror.Error {
	switch footer.Style {
	case "", FooterStyleDark, FooterStyleLight:
	default:
		errs = multierror.Append(errs, malformed("themeConfig.footer.style", "must be %q or %q, found %q", FooterStyleDark, FooterStyleLight, footer.Style))
	}
	for i, group := range footer.Links {
		field := fmt.Sprintf("themeConfig.footer.links[%d]", i)
		if group == nil {
			errs = multierror.Append(errs, malformed(field, "is empty"))
			continue
		}
		if strings.TrimSpace(group.Title) == "" {
			errs = multierror.Append(errs, malformed(field+".title", "is required"))
		}
		for j, link := range group.Items {
			itemField := fmt.Sprintf("%s.items[%d]", field, j)
			if link == nil {
				errs = multierror.Append(errs, malformed(itemField, "is empty"))
				continue
			}
			if link.Label == "" {
				errs = multierror.Append(errs, malformed(itemField+".label", "is required"))
			}
			if (link.To == "") == (link.Href == "") {
				errs = multierror.Append(errs, malformed(itemField, "must set exactly one of to and href"))
			}
		}
	}
	return errs
}

func validatePrism(prism *Prism, errs *multierror.Error) *multierror.Error {
	for _, t := range []struct {
		field string
		id    string
	}{{"themeConfig.prism.theme", prism.Theme}, {"themeConfig.prism.darkTheme", prism.DarkTheme}} {
		if t.id != "" && !knownPrismTheme(t.id) {
			errs = multierror.Append(errs, malformed(t.field, "%q is not a known prism theme", t.id))
		}
	}
	seen := map[string]bool{}
	for i, lang := range prism.AdditionalLanguages {
		field := fmt.Sprintf("themeConfig.prism.additionalLanguages[%d]", i)
		if strings.TrimSpace(lang) == "" {
			errs = multierror.Append(errs, malformed(field, "is empty"))
			continue
		}
		if seen[lang] {
			errs = multierror.Append(errs, malformed(field, "%q is listed twice", lang))
		}
		seen[lang] = true
	}
	return errs
}

func knownPrismTheme(id string) bool {
	for _, t := range PrismThemes {
		if t == id {
			return true
		}
	}
	return false
}

// ValidateSidebars performs validation of a navigation tree declaration.
// All violations are collected and returned together, each wrapping
// ErrConfigMalformed.
func ValidateSidebars(tree *NavigationTree) error {
	if tree == nil {
		return malformed("", "sidebar declaration is missing")
	}
	var errs *multierror.Error
	declared := map[string]bool{}
	for i, s := range tree.Sidebars {
		if s.ID == "" {
			errs = multierror.Append(errs, malformed(fmt.Sprintf("sidebars[%d]", i), "has no id"))
		}
		if declared[s.ID] {
			errs = multierror.Append(errs, malformed(s.ID, "is declared twice"))
		}
		declared[s.ID] = true
		_ = s.Walk(func(entry *NavEntry, _ *NavEntry, path string) error {
			errs = validateEntry(entry, path, errs)
			return nil
		})
	}
	return errs.ErrorOrNil()
}

func validateEntry(entry *NavEntry, path string, errs *multierror.Error) *multierror.Error {
	if entry == nil {
		return multierror.Append(errs, malformed(path, "is empty"))
	}
	switch entry.Type {
	case EntryTypeDoc:
		if strings.TrimSpace(entry.ID) == "" {
			errs = multierror.Append(errs, malformed(path, "references a document with an empty id"))
		}
		if len(entry.Items) > 0 {
			errs = multierror.Append(errs, malformed(path, "is a document reference and cannot have items"))
		}
	case EntryTypeCategory:
		if strings.TrimSpace(entry.Label) == "" {
			errs = multierror.Append(errs, malformed(path+".label", "is required for categories"))
		}
		if entry.ID != "" {
			errs = multierror.Append(errs, malformed(path, "is a category and cannot reference document %q", entry.ID))
		}
	case "":
		errs = multierror.Append(errs, malformed(path, "is neither a document reference nor a category"))
	default:
		errs = multierror.Append(errs, malformed(path+".type", "must be %q or %q, found %q", EntryTypeDoc, EntryTypeCategory, entry.Type))
	}
	return errs
}

// ValidateReferences checks that every sidebar referenced from the navbar is
// declared in the navigation tree. Every dangling reference is reported as a
// *ReferenceError wrapping ErrReferential.
func ValidateReferences(site *SiteConfig, tree *NavigationTree) error {
	if site == nil {
		return malformed("", "site declaration is missing")
	}
	var errs *multierror.Error
	for i, item := range site.ThemeConfig.Navbar.Items {
		if item == nil || item.Kind() != NavbarItemSidebar {
			continue
		}
		if _, ok := tree.Sidebar(item.SidebarID); !ok {
			errs = multierror.Append(errs, &ReferenceError{SidebarID: item.SidebarID, Item: i})
		}
	}
	return errs.ErrorOrNil()
}
