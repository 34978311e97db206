// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"errors"

	"github.com/workspace/sitecfg/pkg/api"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("API Nodes", func() {
	Context("Parents & Helpers", func() {
		var (
			child, parent, ancestor *api.NavEntry
		)
		BeforeEach(func() {
			child = api.Doc("tools/market")
			parent = &api.NavEntry{Type: api.EntryTypeCategory, Label: "Market", Items: []*api.NavEntry{child}}
			ancestor = &api.NavEntry{Type: api.EntryTypeCategory, Label: "Tools", Items: []*api.NavEntry{parent}}
		})
		When("set parent", func() {
			JustBeforeEach(func() {
				child.SetParent(parent)
			})
			It("sets the parent", func() {
				Expect(child.Parent()).To(Equal(parent))
			})
		})
		When("set parents downwards", func() {
			JustBeforeEach(func() {
				ancestor.SetParentsDownwards()
			})
			It("sets the parents downwards", func() {
				Expect(child.Parents()).To(Equal([]*api.NavEntry{ancestor, parent}))
				Expect(ancestor.Parents()).To(BeNil())
			})
		})
		When("created with Category", func() {
			It("links the items", func() {
				c := api.Category("Tools", child)
				Expect(child.Parent()).To(BeIdenticalTo(c))
			})
		})
	})

	Context("Walking sidebars", func() {
		var sidebar *api.Sidebar
		BeforeEach(func() {
			sidebar = &api.Sidebar{ID: "docsSidebar", Items: []*api.NavEntry{
				api.Doc("intro"),
				api.Category("Tools Reference",
					api.Doc("tools/market"),
					api.Category("Orders", api.Doc("tools/trade")),
				),
				api.Doc("faq"),
			}}
		})
		It("visits entries depth-first in declaration order", func() {
			var paths []string
			Expect(sidebar.Walk(func(_ *api.NavEntry, _ *api.NavEntry, path string) error {
				paths = append(paths, path)
				return nil
			})).To(Succeed())
			Expect(paths).To(Equal([]string{
				"docsSidebar[0]",
				"docsSidebar[1]",
				"docsSidebar[1].items[0]",
				"docsSidebar[1].items[1]",
				"docsSidebar[1].items[1].items[0]",
				"docsSidebar[2]",
			}))
		})
		It("stops on the first visitor error", func() {
			stop := errors.New("stop")
			visited := 0
			err := sidebar.Walk(func(_ *api.NavEntry, _ *api.NavEntry, _ string) error {
				visited++
				if visited == 2 {
					return stop
				}
				return nil
			})
			Expect(err).To(Equal(stop))
			Expect(visited).To(Equal(2))
		})
		It("collects document ids", func() {
			Expect(sidebar.DocIDs()).To(Equal([]string{"intro", "tools/market", "tools/trade", "faq"}))
		})
		It("renders an outline", func() {
			Expect(sidebar.Outline()).To(Equal(`docsSidebar
  intro
  Tools Reference/
    tools/market
    Orders/
      tools/trade
  faq
`))
		})
	})
})
