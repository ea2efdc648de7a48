// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"

	"github.com/dannypurcell/rubycom-sub000/lib/config"
)

// ConfigOption is an embeddable struct that adds --config to a
// command's parameter struct.
type ConfigOption struct {
	ConfigPath string `json:"config" flag:"config" desc:"configuration file (default: $RUBYCOM_CONFIG)"`
}

// LoadConfig loads the configuration named by --config or
// RUBYCOM_CONFIG, or the defaults when neither is set, and applies its
// log level to the running command's logger.
func (o *ConfigOption) LoadConfig(ctx context.Context, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.Select(o.ConfigPath)
	if err != nil {
		return nil, Internal("%w", err)
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, Internal("%w", err)
	}
	SetLogLevel(ctx, level)

	logger.Debug("configuration loaded",
		"path", o.ConfigPath,
		"manifest", cfg.Manifest,
		"output", cfg.Output,
	)
	return cfg, nil
}
