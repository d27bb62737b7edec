package controller

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/constants"
)

// PluginPath is where the Wordless plugin lives inside an installation.
var PluginPath = filepath.Join(constants.PluginsDir, constants.WordlessPluginFolder)

// WordlessRepo resolves the plugin repository: --repo, then wordless_repo,
// then the upstream default.
func (c *Controller) WordlessRepo(flag string) (string, configs.Source) {
	return c.cfg.Resolve(flag, configs.WordlessRepoKey, constants.DefaultWordlessRepo)
}

// Install clones the Wordless plugin into wp-content/plugins, or updates it.
func (c *Controller) Install(ctx context.Context, repoFlag string) (string, error) {
	if err := c.ToolAvailable(constants.GitTool); err != nil {
		return "", err
	}
	if err := c.DirectoryExists(constants.PluginsDir); err != nil {
		return "", err
	}

	repo, _ := c.WordlessRepo(repoFlag)
	if err := c.repo.Install(ctx, repo, c.path(PluginPath)); err != nil {
		return "", errors.WithMessage(err, "There was an error installing the Wordless plugin")
	}
	return "Installed Wordless plugin.", nil
}
