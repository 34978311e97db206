// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package declaration embeds the literal site and sidebar declarations
// the binary was built with.
package declaration

import (
	_ "embed"
)

const (
	// SiteName is the name the embedded site declaration is reported under
	SiteName = "embedded:site.yaml"
	// SidebarsName is the name the embedded sidebar declaration is reported under
	SidebarsName = "embedded:sidebars.yaml"
)

// Site is the embedded site declaration
//
//go:embed site.yaml
var Site []byte

// Sidebars is the embedded sidebar declaration
//
//go:embed sidebars.yaml
var Sidebars []byte
