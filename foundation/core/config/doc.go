// Package config loads textkit configuration from TOML or YAML files.
//
// Package: config
// Title: textkit Configuration Management
// Description: File discovery, TOML/YAML parsing, dot-notation typed getters,
//              environment overrides, rule based validation and reload on
//              file change.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: fsnotify watching, textkit discovery defaults
//
// # File layout
//
//	[wrap]
//	width = 72
//	word_wrap = true
//
//	[truncate]
//	ellipsis = "..."
//	exact = true
//
// # Environment overrides
//
// With EnvPrefix "TEXTKIT" the key wrap.width is read from TEXTKIT_WRAP_WIDTH
// before the file is consulted. Without a prefix the environment is ignored.
//
// # Usage
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions("textkit"))
//	if err != nil {
//		return err
//	}
//	width := cfg.GetInt("wrap.width", 72)
//
//	cfg.OnChange(func(old, updated *config.Config) {
//		logger.Info("width changed", log.Fields{"width": updated.GetInt("wrap.width")})
//	})
//	if err := cfg.Watch(); err != nil {
//		return err
//	}
//	defer cfg.StopWatching()
package config
