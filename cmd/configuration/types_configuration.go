// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds the tool defaults read from the configuration file. Unset
// fields leave the decision to environment variables, flags or built-in
// defaults.
type Config struct {
	// Site is the path of the site declaration
	Site *string `yaml:"site,omitempty"`
	// Sidebars are the paths of the sidebar declarations
	Sidebars []string `yaml:"sidebars,omitempty"`
	// Destination is the export directory
	Destination *string `yaml:"destination,omitempty"`
	// Format is the export format, `json` or `yaml`
	Format *string `yaml:"format,omitempty"`
	// DryRun prints the projected files instead of writing them
	DryRun *bool `yaml:"dryRun,omitempty"`
}

// Settings returns the set fields keyed by the command option they default
func (c *Config) Settings() map[string]interface{} {
	s := map[string]interface{}{}
	if c == nil {
		return s
	}
	if c.Site != nil {
		s["site"] = *c.Site
	}
	if len(c.Sidebars) > 0 {
		s["sidebars"] = c.Sidebars
	}
	if c.Destination != nil {
		s["destination"] = *c.Destination
	}
	if c.Format != nil {
		s["format"] = *c.Format
	}
	if c.DryRun != nil {
		s["dry-run"] = *c.DryRun
	}
	return s
}
