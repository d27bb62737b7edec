package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/lib/git"
)

// Settings describes the effective configuration and where each value came from.
func (c *Controller) Settings(ctx context.Context) map[string]string {
	settings := map[string]string{}

	wordfile := c.cfg.Path()
	if !c.cfg.Found() {
		wordfile += " (not found)"
	}
	settings["wordfile"] = wordfile

	repo, source := c.WordlessRepo("")
	settings[configs.WordlessRepoKey] = withSource(repo, source)

	if command, source, err := c.DeployCommand(""); err == nil {
		settings[configs.DeployCommandKey] = withSource(command, source)
	} else {
		settings[configs.DeployCommandKey] = "(not set)"
	}

	settings[configs.LibDirKey] = c.libDir

	if paths, err := c.AssetPaths(); err == nil {
		rel := make([]string, 0, len(paths))
		for _, p := range paths {
			rel = append(rel, c.relative(p))
		}
		settings["static_assets"] = strings.Join(rel, ", ")
	}

	checkout, err := git.Describe(ctx, c.path(PluginPath))
	switch {
	case err != nil:
		settings["plugin"] = err.Error()
	case !checkout.IsRepo:
		settings["plugin"] = "(not installed)"
	default:
		plugin := fmt.Sprintf("%s %s@%s", checkout.RepoName, checkout.Branch, checkout.Head)
		if checkout.Modified {
			plugin += " (modified)"
		}
		settings["plugin"] = plugin
	}

	return settings
}

func withSource(value string, source configs.Source) string {
	return fmt.Sprintf("%s (%s)", value, source)
}

func (c *Controller) relative(p string) string {
	rel, err := filepath.Rel(c.root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}
