// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version is set during compile time via -ldflags in the `go build` process.
	// Builds installed with `go install` report the module version instead.
	Version = "binary was not built properly"
	// GitCommit is the commit the binary was built from, set via -ldflags.
	GitCommit = ""
)

// NewVersionCmd creates a version command printing the binary version
func NewVersionCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !long {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), Get())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "version: %s\ncommit: %s\ngo: %s %s/%s\n",
				Get(), GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "Print the commit and the Go toolchain as well.")
	return cmd
}

// Get returns Version, falling back to the main module version
// recorded in the build info
func Get() string {
	if Version != "" && Version != "binary was not built properly" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
