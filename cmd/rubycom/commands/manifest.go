// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/config"
	"github.com/dannypurcell/rubycom-sub000/lib/manifest"
)

// manifestParams is embedded by every command that reads a command tree.
type manifestParams struct {
	cli.ConfigOption
	ManifestPath string `json:"manifest" flag:"manifest,m" desc:"command manifest (.yaml, .json, .jsonc, .toml); default from config"`
}

// load reads the configuration and then the manifest it or --manifest
// names.
func (p *manifestParams) load(ctx context.Context, logger *slog.Logger) (commandtree.Node, *config.Config, error) {
	cfg, err := p.LoadConfig(ctx, logger)
	if err != nil {
		return nil, nil, err
	}

	path := p.ManifestPath
	if path == "" {
		path = cfg.Manifest
	}
	if path == "" {
		return nil, nil, cli.Validation("no manifest: pass --manifest or set manifest in the config file")
	}

	root, err := manifest.Load(path, manifest.Options{Reserved: cfg.ReservedNames})
	if err != nil {
		return nil, nil, manifestError(err)
	}

	logger.Debug("manifest loaded",
		"manifest", path,
		"commands", len(commandtree.Leaves(root)),
		"reserved", len(cfg.ReservedNames),
	)
	return root, cfg, nil
}

// manifestError categorizes a manifest.Load failure. Only reading the
// file is an internal failure; everything else is a problem in the
// manifest's content.
func manifestError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return cli.Internal("%w", err)
	}
	return cli.Validation("%w", err)
}
