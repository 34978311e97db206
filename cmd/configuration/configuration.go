// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the name of the configuration file in SitecfgHomeDir
	DefaultConfigFileName = "config"
	// SitecfgHomeDir is the directory in the user home holding the configuration file
	SitecfgHomeDir = ".sitecfg"
	// SitecfgConfigEnv names the environment variable overriding the configuration file path
	SitecfgConfigEnv = "SITECFG_CONFIG"
)

// Loader loads the tool configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader reads the configuration file named by
// SitecfgConfigEnv, or $HOME/.sitecfg/config when the variable is not set
type DefaultConfigurationLoader struct{}

// Load implements Loader. A missing configuration file yields an empty configuration.
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(SitecfgConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", SitecfgConfigEnv)
		}
		return load(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	return load(filepath.Join(userHomeDir, SitecfgHomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("can't parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}
