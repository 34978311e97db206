// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/workspace/sitecfg/pkg/api"
	"k8s.io/klog/v2"
)

// Loader loads and validates site and sidebar declarations
type Loader struct {
	// Now is the clock the footer copyright template is evaluated with
	Now func() time.Time
	// Transformations run over every sidebar entry after the built-in ones
	Transformations []EntryTransformation
}

// New creates a Loader using the system clock
func New() *Loader {
	return &Loader{Now: time.Now}
}

// Site loads the site declaration embedded in the binary
func Site() (*api.SiteConfig, error) {
	return New().LoadSite(EmbeddedSite())
}

// Sidebars loads the sidebar declaration embedded in the binary
func Sidebars() (*api.NavigationTree, error) {
	return New().LoadSidebars(EmbeddedSidebars())
}

// LoadSite reads, parses and validates a site declaration. The footer
// copyright template is evaluated once, here.
func (l *Loader) LoadSite(src Source) (*api.SiteConfig, error) {
	content, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("can't read site declaration %s: %w", src.Name(), err)
	}
	site, err := api.ParseSite(content)
	if err != nil {
		return nil, fmt.Errorf("can't parse site declaration %s: %w", src.Name(), err)
	}
	if err = l.renderCopyright(site); err != nil {
		return nil, fmt.Errorf("site declaration %s: %w", src.Name(), err)
	}
	if err = api.ValidateSite(site); err != nil {
		return nil, fmt.Errorf("invalid site declaration %s: %w", src.Name(), err)
	}
	klog.V(2).Infof("loaded site %q from %s", site.Title, src.Name())
	return site, nil
}

func (l *Loader) renderCopyright(site *api.SiteConfig) error {
	footer := &site.ThemeConfig.Footer
	if !strings.Contains(footer.Copyright, "{{") {
		return nil
	}
	tmpl, err := template.New("copyright").Option("missingkey=error").Parse(footer.Copyright)
	if err != nil {
		return &api.MalformedError{Field: "themeConfig.footer.copyright", Reason: err.Error()}
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	var b strings.Builder
	if err = tmpl.Execute(&b, struct{ Year int }{Year: now().Year()}); err != nil {
		return &api.MalformedError{Field: "themeConfig.footer.copyright", Reason: err.Error()}
	}
	footer.Copyright = b.String()
	return nil
}

// LoadSidebars reads, parses and validates one or more sidebar declarations
// into a single navigation tree. A sidebar id may be declared only once
// across all sources.
func (l *Loader) LoadSidebars(srcs ...Source) (*api.NavigationTree, error) {
	if len(srcs) == 0 {
		return nil, &api.MalformedError{Reason: "no sidebar declaration given"}
	}
	var errs *multierror.Error
	tree := &api.NavigationTree{}
	declaredIn := map[string]string{}
	for _, src := range srcs {
		content, err := src.Read()
		if err != nil {
			return nil, fmt.Errorf("can't read sidebar declaration %s: %w", src.Name(), err)
		}
		parsed, err := api.ParseSidebars(content)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("can't parse sidebar declaration %s: %w", src.Name(), err))
			continue
		}
		for _, s := range parsed.Sidebars {
			if prev, ok := declaredIn[s.ID]; ok {
				errs = multierror.Append(errs, &api.MalformedError{
					Field:  s.ID,
					Reason: fmt.Sprintf("is declared in %s and again in %s", prev, src.Name()),
				})
				continue
			}
			declaredIn[s.ID] = src.Name()
			tree.Sidebars = append(tree.Sidebars, s)
		}
		klog.V(2).Infof("loaded sidebars %v from %s", parsed.IDs(), src.Name())
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	transformations := append([]EntryTransformation{decideEntryType, setParent}, l.Transformations...)
	if err := processTree(tree, transformations...); err != nil {
		return nil, err
	}
	if err := api.ValidateSidebars(tree); err != nil {
		return nil, fmt.Errorf("invalid sidebar declaration %s: %w", names(srcs), err)
	}
	if klog.V(4).Enabled() {
		for _, s := range tree.Sidebars {
			klog.Infof("sidebar outline:\n%s", s.Outline())
		}
	}
	return tree, nil
}

// SidebarPaths returns the sidebar declarations referenced by the docs
// options of the site presets, resolved against the directory of the site
// declaration.
func SidebarPaths(site *api.SiteConfig, siteFile string) []string {
	var paths []string
	for _, p := range site.Presets {
		if p == nil || p.Options.Docs == nil || p.Options.Docs.SidebarPath == "" {
			continue
		}
		sidebarPath := filepath.FromSlash(p.Options.Docs.SidebarPath)
		if !filepath.IsAbs(sidebarPath) {
			sidebarPath = filepath.Join(filepath.Dir(siteFile), sidebarPath)
		}
		paths = append(paths, sidebarPath)
	}
	return paths
}

func names(srcs []Source) string {
	n := make([]string, 0, len(srcs))
	for _, s := range srcs {
		n = append(n, path.Base(s.Name()))
	}
	return strings.Join(n, ",")
}
