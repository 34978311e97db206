// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/workspace/sitecfg/pkg/api"
	"github.com/workspace/sitecfg/pkg/export"
	"github.com/workspace/sitecfg/pkg/loader"
	"github.com/workspace/sitecfg/pkg/writers/writersfakes"
)

const sidebarsJSON = `{
  "docsSidebar": [
    "intro",
    "getting-started",
    {
      "type": "category",
      "label": "Tools Reference",
      "items": [
        "tools/market",
        "tools/trade",
        "tools/account"
      ]
    }
  ]
}
`

var _ = Describe("Exporter", func() {
	var (
		ctx      context.Context
		bundle   *loader.Bundle
		writer   *writersfakes.FakeWriter
		exporter *export.Exporter
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		l := &loader.Loader{Now: func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }}
		site, err := l.LoadSite(loader.EmbeddedSite())
		Expect(err).NotTo(HaveOccurred())
		tree := &api.NavigationTree{Sidebars: []*api.Sidebar{{
			ID: "docsSidebar",
			Items: []*api.NavEntry{
				api.Doc("intro"),
				api.Doc("getting-started"),
				api.Category("Tools Reference", api.Doc("tools/market"), api.Doc("tools/trade"), api.Doc("tools/account")),
			},
		}}}
		bundle, err = loader.Compose(site, tree)
		Expect(err).NotTo(HaveOccurred())
		writer = &writersfakes.FakeWriter{}
		exporter = &export.Exporter{Writer: writer}
	})

	JustBeforeEach(func() {
		err = exporter.Export(ctx, bundle)
	})

	When("exporting JSON", func() {
		It("writes the site and the sidebars", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteCallCount()).To(Equal(2))
			name, path, _ := writer.WriteArgsForCall(0)
			Expect(name).To(Equal("docusaurus.config.json"))
			Expect(path).To(Equal(""))
			name, _, content := writer.WriteArgsForCall(1)
			Expect(name).To(Equal("sidebars.json"))
			Expect(string(content)).To(Equal(sidebarsJSON))
		})

		It("keeps the declaration order of the site", func() {
			_, _, content := writer.WriteArgsForCall(0)
			var decoded map[string]interface{}
			Expect(json.Unmarshal(content, &decoded)).To(Succeed())
			Expect(decoded["title"]).To(Equal("Bybit MCP Server"))
			s := string(content)
			Expect(strings.HasPrefix(s, "{\n  \"title\": \"Bybit MCP Server\",\n  \"tagline\":")).To(BeTrue())
			Expect(strings.Index(s, `"i18n"`)).To(BeNumerically("<", strings.Index(s, `"presets"`)))
			Expect(strings.Index(s, `"presets"`)).To(BeNumerically("<", strings.Index(s, `"themeConfig"`)))
			Expect(s).To(ContainSubstring(`"blog": false`))
			Expect(s).To(ContainSubstring(`"copyright": "Copyright © 2025 bybit-mcp contributors. Built with Docusaurus."`))
		})

		It("points the docs preset at the exported sidebars", func() {
			_, _, content := writer.WriteArgsForCall(0)
			Expect(string(content)).To(ContainSubstring(`"sidebarPath": "./sidebars.json"`))
			Expect(bundle.Site.Presets[0].Options.Docs.SidebarPath).To(Equal("./sidebars.yaml"))
		})
	})

	When("exporting YAML into a directory", func() {
		BeforeEach(func() {
			exporter.Format = export.FormatYAML
			exporter.Path = "site"
		})

		It("writes declarations the loader reads back", func() {
			Expect(err).NotTo(HaveOccurred())
			name, path, content := writer.WriteArgsForCall(0)
			Expect(name).To(Equal("docusaurus.config.yaml"))
			Expect(path).To(Equal("site"))
			site, err := api.ParseSite(content)
			Expect(err).NotTo(HaveOccurred())
			Expect(site.Title).To(Equal(bundle.Site.Title))
			Expect(site.ThemeConfig.Navbar).To(Equal(bundle.Site.ThemeConfig.Navbar))

			_, _, content = writer.WriteArgsForCall(1)
			tree, err := api.ParseSidebars(content)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree.IDs()).To(Equal([]string{"docsSidebar"}))
			docs, _ := tree.Sidebar("docsSidebar")
			Expect(docs.DocIDs()).To(Equal(bundle.Sidebars.Sidebars[0].DocIDs()))
			Expect(docs.Items[2].Type).To(Equal(api.EntryTypeCategory))
		})
	})

	When("the writer fails", func() {
		BeforeEach(func() {
			writer.WriteReturnsOnCall(1, errors.New("disk full"))
		})

		It("names the failed file", func() {
			Expect(err).To(MatchError("can't write sidebars.json: disk full"))
		})
	})

	When("the context is cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			cancel()
		})

		It("writes nothing", func() {
			Expect(err).To(MatchError(context.Canceled))
			Expect(writer.WriteCallCount()).To(Equal(0))
		})
	})
})

var _ = DescribeTable("ParseFormat",
	func(in string, expected export.Format, fails bool) {
		f, err := export.ParseFormat(in)
		if fails {
			Expect(err).To(HaveOccurred())
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(expected))
	},
	Entry("default", "", export.FormatJSON, false),
	Entry("json", "json", export.FormatJSON, false),
	Entry("yaml", "yaml", export.FormatYAML, false),
	Entry("toml", "toml", export.Format(""), true),
)
