// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

type genDocsFormat string

const (
	genDocsMarkdown genDocsFormat = "md"
	genDocsManPages genDocsFormat = "man"
	genDocsYAML     genDocsFormat = "yaml"
	genDocsReST     genDocsFormat = "rest"
)

var genDocsFormats = []genDocsFormat{genDocsMarkdown, genDocsManPages, genDocsYAML, genDocsReST}

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	for _, f := range genDocsFormats {
		if string(f) == formatString {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, genDocsFormats)
}

// NewGenCmdDocs generates commands reference documentation
func NewGenCmdDocs() *cobra.Command {
	var format, destination string
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newGenDocsFormat(format)
			if err != nil {
				return err
			}
			destination = filepath.Clean(destination)
			if err = os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			if err = generate(root, f, destination); err != nil {
				return err
			}
			klog.Infof("%s reference documentation written to %s", f, destination)
			return nil
		},
	}
	command.Flags().StringVarP(&format, "format", "f", string(genDocsMarkdown),
		"Specifies the generated documentation format. Must be one of: `md` (for markdown), `man` (for man pages), `yaml` or `rest` (for reStructuredText).")
	command.Flags().StringVarP(&destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}

func generate(root *cobra.Command, format genDocsFormat, destination string) error {
	switch format {
	case genDocsManPages:
		header := &doc.GenManHeader{
			Title:   "SITECFG",
			Manual:  "Sitecfg Command Reference",
			Section: "1",
		}
		return doc.GenManTree(root, header, destination)
	case genDocsYAML:
		return doc.GenYamlTree(root, destination)
	case genDocsReST:
		return doc.GenReSTTree(root, destination)
	default:
		return doc.GenMarkdownTree(root, destination)
	}
}
