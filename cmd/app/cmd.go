// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"flag"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/workspace/sitecfg/cmd/configuration"
	"github.com/workspace/sitecfg/cmd/gendocs"
	"github.com/workspace/sitecfg/cmd/version"
	"github.com/workspace/sitecfg/pkg/api"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables overriding command options
const EnvPrefix = "SITECFG"

var klogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to its subcommands' Run callback closures
func NewCommand(ctx context.Context) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "sitecfg",
		Short: "Load, validate and export site and sidebar declarations",
		Long: `sitecfg loads the site configuration and the navigation tree (sidebars)
of a static documentation site, validates both, checks that every sidebar the
navbar references is declared and hands the result to the site generator.

Without --site and --sidebars the declarations compiled into the binary are used.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initViper(vip, new(configuration.DefaultConfigurationLoader))
		},
	}
	configurePersistentFlags(cmd, vip)

	cmd.AddCommand(newValidateCmd(ctx, vip))
	cmd.AddCommand(newExportCmd(ctx, vip))
	cmd.AddCommand(newResolveCmd(ctx, vip))
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klogFlags.Do(func() { klog.InitFlags(nil) })
	AddFlags(cmd)

	return cmd
}

// initViper layers the configuration file under the environment and the flags
func initViper(vip *viper.Viper, c configuration.Loader) error {
	config, err := c.Load()
	if err != nil {
		return err
	}
	if err = vip.MergeConfigMap(config.Settings()); err != nil {
		return err
	}
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	return nil
}

func newValidateCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the site and sidebar declarations",
		Long:  "Loads both declarations, validates them and checks the navbar sidebar references. All violations are reported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return validate(ctx, vip, cmd.OutOrStdout())
		},
	}
}

func newExportCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Validate and write the declarations for the site generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exportBundle(ctx, vip, cmd.OutOrStdout())
		},
	}
	configureExportFlags(cmd, vip)
	return cmd
}

func newResolveCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the validated declarations",
		Long:  "Prints the validated declarations as YAML documents, with templates evaluated and entry types decided.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return resolve(ctx, vip, cmd.OutOrStdout())
		},
	}
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, api.ErrConfigMalformed):
		return 2
	case errors.Is(err, api.ErrReferential):
		return 3
	}
	return 1
}
