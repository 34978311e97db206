// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/workspace/sitecfg/pkg/api"
	"github.com/workspace/sitecfg/pkg/loader"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("Loader", func() {
	var l *loader.Loader

	BeforeEach(func() {
		l = &loader.Loader{Now: fixedClock}
	})

	Describe("embedded declarations", func() {
		It("loads a site with all identity fields", func() {
			site, err := loader.Site()
			Expect(err).NotTo(HaveOccurred())
			Expect(site.Title).NotTo(BeEmpty())
			Expect(site.Tagline).NotTo(BeEmpty())
			Expect(site.BaseURL).NotTo(BeEmpty())
			Expect(site.OrganizationName).NotTo(BeEmpty())
			Expect(site.ProjectName).NotTo(BeEmpty())
			Expect(site.ThemeConfig.Footer.Copyright).To(ContainSubstring(fmt.Sprint(time.Now().Year())))
		})

		It("loads the sidebars in declaration order", func() {
			tree, err := loader.Sidebars()
			Expect(err).NotTo(HaveOccurred())
			Expect(tree.IDs()).To(Equal([]string{"docsSidebar"}))
			docs, _ := tree.Sidebar("docsSidebar")
			Expect(docs.Items).To(HaveLen(3))
			Expect(docs.Items[0].ID).To(Equal("intro"))
			Expect(docs.Items[1].ID).To(Equal("getting-started"))
			Expect(docs.Items[2].Type).To(Equal(api.EntryTypeCategory))
			Expect(docs.Items[2].Label).To(Equal("Tools Reference"))
			Expect(docs.DocIDs()).To(HaveLen(7))
		})

		It("composes", func() {
			bundle, err := l.Load(loader.EmbeddedSite())
			Expect(err).NotTo(HaveOccurred())
			for _, item := range bundle.Site.ThemeConfig.Navbar.Items {
				if item.Kind() == api.NavbarItemSidebar {
					_, ok := bundle.Sidebars.Sidebar(item.SidebarID)
					Expect(ok).To(BeTrue())
				}
			}
		})

		It("yields equal values when loaded twice", func() {
			first, err := l.Load(loader.EmbeddedSite(), loader.EmbeddedSidebars())
			Expect(err).NotTo(HaveOccurred())
			second, err := l.Load(loader.EmbeddedSite(), loader.EmbeddedSidebars())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})
	})

	Describe("loading a site", func() {
		It("evaluates the copyright with the loader clock", func() {
			site, err := l.LoadSite(loader.File("testdata/site.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(site.ThemeConfig.Footer.Copyright).To(Equal("(c) 2024 test"))
		})

		It("rejects unknown template fields", func() {
			_, err := l.LoadSite(loader.Bytes("broken.yaml", []byte(`
title: t
tagline: t
baseUrl: /
organizationName: o
projectName: p
i18n: {defaultLocale: en, locales: [en]}
themeConfig:
  footer:
    copyright: "{{ .Month }}"
`)))
			Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("themeConfig.footer.copyright"))
			Expect(err.Error()).To(ContainSubstring("broken.yaml"))
		})

		It("reports every missing identity field", func() {
			_, err := l.LoadSite(loader.Bytes("empty-identity.yaml", []byte(`
i18n: {defaultLocale: en, locales: [en]}
`)))
			Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeTrue())
			for _, field := range []string{"title", "tagline", "baseUrl", "organizationName", "projectName"} {
				Expect(err.Error()).To(ContainSubstring(field + " is required"))
			}
		})

		It("fails on a missing file without claiming it malformed", func() {
			_, err := l.LoadSite(loader.File("testdata/missing.yaml"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeFalse())
		})

		It("fails on a directory", func() {
			_, err := l.LoadSite(loader.File("testdata"))
			Expect(err).To(MatchError(ContainSubstring("is directory")))
		})
	})

	Describe("loading sidebars", func() {
		It("decides the type of untyped entries and links parents", func() {
			tree, err := l.LoadSidebars(loader.File("testdata/sidebars.yaml"))
			Expect(err).NotTo(HaveOccurred())
			docs, _ := tree.Sidebar("docsSidebar")
			tools := docs.Items[2]
			Expect(tools.Type).To(Equal(api.EntryTypeCategory))
			Expect(tools.Items).To(HaveLen(3))
			for _, item := range tools.Items {
				Expect(item.Type).To(Equal(api.EntryTypeDoc))
				Expect(item.Parent()).To(BeIdenticalTo(tools))
			}
			Expect(docs.Items[0].Parent()).To(BeNil())
		})

		It("keeps the order of sources", func() {
			tree, err := l.LoadSidebars(
				loader.Bytes("b.yaml", []byte("zSidebar: [z]\n")),
				loader.Bytes("a.yaml", []byte("aSidebar: [a]\nmSidebar: [m]\n")),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree.IDs()).To(Equal([]string{"zSidebar", "aSidebar", "mSidebar"}))
		})

		It("rejects a sidebar declared in two sources", func() {
			_, err := l.LoadSidebars(
				loader.Bytes("first.yaml", []byte("docsSidebar: [intro]\n")),
				loader.Bytes("second.yaml", []byte("docsSidebar: [intro, getting-started]\n")),
			)
			Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeTrue())
			var malformed *api.MalformedError
			Expect(errors.As(err, &malformed)).To(BeTrue())
			Expect(malformed.Field).To(Equal("docsSidebar"))
			Expect(malformed.Reason).To(Equal("is declared in first.yaml and again in second.yaml"))
		})

		It("requires at least one source", func() {
			_, err := l.LoadSidebars()
			Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeTrue())
		})

		DescribeTable("malformed sidebars",
			func(content string, expected string) {
				_, err := l.LoadSidebars(loader.Bytes("sidebars.yaml", []byte(content)))
				Expect(errors.Is(err, api.ErrConfigMalformed)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(expected))
			},
			Entry("top level sequence", "- intro\n", "must be a mapping"),
			Entry("doc and category at once", "s:\n  - id: intro\n    items: [a]\n", "s[0] is neither a document reference nor a category"),
			Entry("entry of no type", "s:\n  - collapsed: true\n", "s[0] is neither a document reference nor a category"),
			Entry("category with empty label", "s:\n  - type: category\n    items: [a]\n", "s[0].label is required"),
			Entry("doc with empty id", "s:\n  - type: doc\n", "s[0] references a document with an empty id"),
		)

		It("runs caller transformations after the built-in ones", func() {
			var visited []string
			l.Transformations = append(l.Transformations, func(entry *api.NavEntry, parent *api.NavEntry) error {
				Expect(entry.Type).NotTo(BeEmpty())
				visited = append(visited, entry.ID+entry.Label)
				return nil
			})
			_, err := l.LoadSidebars(loader.File("testdata/sidebars.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(visited).To(Equal([]string{"intro", "getting-started", "Tools Reference", "tools/market", "tools/trade", "tools/account"}))
		})

		It("names the failing entry of a transformation", func() {
			l.Transformations = append(l.Transformations, func(entry *api.NavEntry, _ *api.NavEntry) error {
				if entry.ID == "tools/trade" {
					return errors.New("trade is not allowed")
				}
				return nil
			})
			_, err := l.LoadSidebars(loader.File("testdata/sidebars.yaml"))
			Expect(err).To(MatchError("sidebar docsSidebar -> category Tools Reference -> trade is not allowed"))
		})
	})

	Describe("composing", func() {
		It("follows the sidebar path of the site", func() {
			bundle, err := l.Load(loader.File("testdata/site.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.Sidebars.IDs()).To(Equal([]string{"docsSidebar"}))
		})

		It("resolves sidebar paths against the site file", func() {
			site, err := l.LoadSite(loader.File("testdata/site.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(loader.SidebarPaths(site, filepath.Join("testdata", "site.yaml"))).To(Equal([]string{filepath.Join("testdata", "sidebars.yaml")}))
		})

		It("reports a dangling navbar reference", func() {
			_, err := l.Load(loader.File("testdata/dangling-site.yaml"))
			Expect(errors.Is(err, api.ErrReferential)).To(BeTrue())
			var ref *api.ReferenceError
			Expect(errors.As(err, &ref)).To(BeTrue())
			Expect(ref.SidebarID).To(Equal("apiSidebar"))
			Expect(ref.Item).To(Equal(0))
		})

		It("returns a bundle holding both declarations", func() {
			site, err := l.LoadSite(loader.File("testdata/site.yaml"))
			Expect(err).NotTo(HaveOccurred())
			tree, err := l.LoadSidebars(loader.File("testdata/sidebars.yaml"))
			Expect(err).NotTo(HaveOccurred())
			bundle, err := loader.Compose(site, tree)
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.Site).To(BeIdenticalTo(site))
			Expect(bundle.Sidebars).To(BeIdenticalTo(tree))
		})
		It("rejects a missing site", func() {
			bundle, err := loader.Compose(nil, &api.NavigationTree{})
			Expect(bundle).To(BeNil())
			Expect(err).To(MatchError(api.ErrConfigMalformed))
		})
	})
})
