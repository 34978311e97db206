// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"os"

	"github.com/workspace/sitecfg/pkg/declaration"
)

// Source is a declarative input the loader reads
type Source interface {
	// Name identifies the source in errors and logs
	Name() string
	// Read returns the declaration content
	Read() ([]byte, error)
}

// File creates a Source reading the declaration at path
func File(path string) Source {
	return fileSource(path)
}

type fileSource string

func (f fileSource) Name() string {
	return string(f)
}

func (f fileSource) Read() ([]byte, error) {
	stat, err := os.Stat(string(f))
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for declaration %s: %w", string(f), err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the declaration path %s is directory, instead of file", string(f))
	}
	return os.ReadFile(string(f))
}

// Bytes creates a Source serving content under name
func Bytes(name string, content []byte) Source {
	return &bytesSource{name: name, content: content}
}

type bytesSource struct {
	name    string
	content []byte
}

func (b *bytesSource) Name() string {
	return b.name
}

func (b *bytesSource) Read() ([]byte, error) {
	return b.content, nil
}

// EmbeddedSite is the site declaration compiled into the binary
func EmbeddedSite() Source {
	return Bytes(declaration.SiteName, declaration.Site)
}

// EmbeddedSidebars is the sidebar declaration compiled into the binary
func EmbeddedSidebars() Source {
	return Bytes(declaration.SidebarsName, declaration.Sidebars)
}
