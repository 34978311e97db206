// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configurePersistentFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().String("site", "",
		"Site declaration path. The embedded declaration is used when empty.")
	_ = vip.BindPFlag("site", command.PersistentFlags().Lookup("site"))

	command.PersistentFlags().StringSlice("sidebars", []string{},
		"Sidebar declaration path. Repeat to load several declarations. Defaults to the docs sidebar path of the site declaration.")
	_ = vip.BindPFlag("sidebars", command.PersistentFlags().Lookup("sidebars"))
}

func configureExportFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("destination", "d", "",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("format", "json",
		"Export format. Must be one of: `json` or `yaml`.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}
