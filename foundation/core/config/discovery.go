// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file in a list of directories and
//              loads it. When nothing is found and the file is optional, an
//              empty configuration backed by defaults and environment is returned.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of config discovery
// - 2026-10-16 v0.2.0: User config directory, defaults for the optional case

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try
	Required   bool     // Fail when no file is found
	Load       LoadOptions
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for <app>.toml, <app>.yaml and <app>.yml.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "." + app},
		Extensions: []string{".toml", ".yaml", ".yml"},
		Load:       LoadOptions{Format: FormatAuto, EnvPrefix: strings.ToUpper(app)},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists and is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.NotFound(errors.ModuleConfig, "discover", "configuration file").
		WithDetail("searchPaths", ListPossibleConfigFiles(options))
}

// Discover finds and loads the configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		cfg := New(options.Load.EnvPrefix, options.Load.Defaults)
		if options.Load.Logger != nil {
			cfg.logger = options.Load.Logger.WithName("config")
		}
		return cfg, nil
	}
	return LoadWithOptions(path, options.Load)
}
