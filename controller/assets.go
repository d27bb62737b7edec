package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/constants"
	wlerrors "github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/ui"
)

// Compile runs the PHP asset compiler over the installation.
func (c *Controller) Compile(ctx context.Context) (string, error) {
	if err := c.ToolAvailable(constants.PHPTool); err != nil {
		return "", err
	}
	if err := c.scriptExists(constants.CompileAssetsScript); err != nil {
		return "", err
	}

	if err := c.gtwy.Run(ctx, c.root, constants.PHPTool, c.script(constants.CompileAssetsScript)); err != nil {
		return "", errors.WithMessage(err, "Couldn't compile static assets")
	}
	return "Compiled static assets.", nil
}

// Clean removes the compiled static assets. Files that are already gone are
// skipped; any other removal error aborts.
func (c *Controller) Clean(ctx context.Context) (string, error) {
	if err := c.DirectoryExists(constants.ThemesDir); err != nil {
		return "", err
	}

	paths, err := c.AssetPaths()
	if err != nil {
		return "", err
	}

	removed := []string{}
	for _, p := range paths {
		if err := os.Remove(c.path(p)); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			kind := wlerrors.ProcessFailure
			if os.IsPermission(err) {
				kind = wlerrors.PermissionDenied
			}
			return "", wlerrors.Wrap(kind, err, "Couldn't clean static assets")
		}
		removed = append(removed, p)
	}

	if ui.Verbose() && len(removed) > 0 {
		ui.Print(ui.UnorderedList(removed))
	}
	return fmt.Sprintf("Cleaned static assets (%d removed).", len(removed)), nil
}

// AssetPaths lists the static files clean removes: static_css and static_js
// from the Wordfile, each falling back to the per-theme defaults only when
// the key is absent. An empty list removes nothing.
func (c *Controller) AssetPaths() ([]string, error) {
	themesRoot := c.path(constants.ThemesDir)

	css := c.cfg.GetStringSlice(configs.StaticCSSKey, nil)
	if css == nil {
		defaults, err := themeAssets(themesRoot, constants.DefaultStaticCSS)
		if err != nil {
			return nil, err
		}
		css = defaults
	}

	js := c.cfg.GetStringSlice(configs.StaticJSKey, nil)
	if js == nil {
		defaults, err := themeAssets(themesRoot, constants.DefaultStaticJS)
		if err != nil {
			return nil, err
		}
		js = defaults
	}

	return append(css, js...), nil
}

// DefaultAssetPaths returns the compiled stylesheet and javascript of every
// theme directly under themesRoot that actually has them.
func DefaultAssetPaths(themesRoot string) ([]string, error) {
	css, err := themeAssets(themesRoot, constants.DefaultStaticCSS)
	if err != nil {
		return nil, err
	}
	js, err := themeAssets(themesRoot, constants.DefaultStaticJS)
	if err != nil {
		return nil, err
	}
	return append(css, js...), nil
}

func themeAssets(themesRoot, asset string) ([]string, error) {
	entries, err := os.ReadDir(themesRoot)
	if err != nil {
		return nil, wlerrors.Wrap(wlerrors.MissingDirectory, err, "Couldn't list themes")
	}

	paths := []string{}
	for _, entry := range entries {
		// Like a shell glob, * does not match hidden directories.
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		p := filepath.Join(themesRoot, entry.Name(), asset)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			paths = append(paths, p)
		}
	}
	return paths, nil
}
