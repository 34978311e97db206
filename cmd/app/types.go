// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options are the command options merged from the configuration file,
// the environment and the flags
type options struct {
	SitePath      string   `mapstructure:"site"`
	SidebarsPaths []string `mapstructure:"sidebars"`
	Destination   string   `mapstructure:"destination"`
	Format        string   `mapstructure:"format"`
	DryRun        bool     `mapstructure:"dry-run"`
}
