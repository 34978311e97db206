// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/workspace/sitecfg/pkg/api"
	"github.com/workspace/sitecfg/pkg/export"
	"github.com/workspace/sitecfg/pkg/loader"
	"github.com/workspace/sitecfg/pkg/writers"
	"k8s.io/klog/v2"
)

func load(vip *viper.Viper) (*loader.Bundle, *options, error) {
	var o options
	if err := vip.Unmarshal(&o); err != nil {
		return nil, nil, err
	}
	site := loader.EmbeddedSite()
	if o.SitePath != "" {
		site = loader.File(o.SitePath)
	}
	var sidebars []loader.Source
	for _, p := range o.SidebarsPaths {
		sidebars = append(sidebars, loader.File(p))
	}
	klog.Infof("Site: %s", site.Name())
	bundle, err := loader.New().Load(site, sidebars...)
	if err != nil {
		return nil, nil, err
	}
	return bundle, &o, nil
}

func validate(_ context.Context, vip *viper.Viper, out io.Writer) error {
	bundle, _, err := load(vip)
	if err != nil {
		return err
	}
	var refs int
	for _, item := range bundle.Site.ThemeConfig.Navbar.Items {
		if item.Kind() == api.NavbarItemSidebar {
			refs++
		}
	}
	_, err = fmt.Fprintf(out, "site %q is valid: %d sidebar(s) %v, %d navbar reference(s) resolved\n",
		bundle.Site.Title, len(bundle.Sidebars.Sidebars), bundle.Sidebars.IDs(), refs)
	return err
}

func exportBundle(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	bundle, o, err := load(vip)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	if o.Destination == "" && !o.DryRun {
		return errors.New("destination is required, set --destination or destination in the configuration file")
	}
	var (
		w      writers.Writer
		dryRun writers.DryRunWriter
	)
	if o.DryRun {
		dryRun = writers.NewDryRunWritersFactory(out)
		w = dryRun.GetWriter(o.Destination)
	} else {
		w = &writers.FSWriter{Root: o.Destination}
	}
	exporter := &export.Exporter{Writer: w, Format: format}
	if err = exporter.Export(ctx, bundle); err != nil {
		return err
	}
	if dryRun != nil {
		return dryRun.Flush()
	}
	klog.Infof("Output dir: %s", o.Destination)
	return nil
}

func resolve(_ context.Context, vip *viper.Viper, out io.Writer) error {
	bundle, _, err := load(vip)
	if err != nil {
		return err
	}
	for _, v := range []interface{}{bundle.Site, bundle.Sidebars} {
		s, err := api.Serialize(v)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(out, "---\n%s", s); err != nil {
			return err
		}
	}
	return nil
}
