// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ParseSite decodes a site declaration. Unknown top-level fields are rejected.
func ParseSite(b []byte) (*SiteConfig, error) {
	var site = &SiteConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed("", "site declaration is empty")
		}
		return nil, decodeError(err)
	}
	return site, nil
}

// ParseSidebars decodes a navigation tree declaration
func ParseSidebars(b []byte) (*NavigationTree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, decodeError(err)
	}
	if len(doc.Content) == 0 {
		return nil, malformed("", "sidebar declaration is empty")
	}
	var tree = &NavigationTree{}
	if err := doc.Content[0].Decode(tree); err != nil {
		return nil, decodeError(err)
	}
	return tree, nil
}

// Serialize is the YAML form of a site or navigation tree declaration
func Serialize(v interface{}) (string, error) {
	var (
		err error
		b   []byte
	)
	if b, err = yaml.Marshal(v); err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeError turns decoder failures into ErrConfigMalformed violations.
// Aggregated errors are flattened so that no violation is lost.
func decodeError(err error) error {
	var errs *multierror.Error
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			errs = multierror.Append(errs, decodeError(e))
		}
		return errs.ErrorOrNil()
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, e := range typeErr.Errors {
			errs = multierror.Append(errs, &MalformedError{Reason: e})
		}
		return errs.ErrorOrNil()
	}
	if errors.Is(err, ErrConfigMalformed) {
		return err
	}
	return &MalformedError{Reason: err.Error()}
}

func at(field string, n *yaml.Node) string {
	return fmt.Sprintf("%s (line %d)", field, n.Line)
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return fmt.Sprintf("scalar %q", n.Value)
	case yaml.AliasNode:
		return "alias"
	}
	return "nothing"
}
