package controller

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/welaika/wordless-cli/constants"
	wlerrors "github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/entity"
)

// DownloadWordPress fetches WordPress core into the name directory with WP-CLI.
func (c *Controller) DownloadWordPress(ctx context.Context, name, locale string) (string, error) {
	if err := validateDirName(name); err != nil {
		return "", err
	}
	if err := c.ToolAvailable(constants.WPTool); err != nil {
		return "", err
	}

	args := []string{"core", "download", "--path=" + name}
	if locale != "" {
		args = append(args, "--locale="+locale)
	}
	if err := c.gtwy.Run(ctx, c.root, constants.WPTool, args...); err != nil {
		return "", errors.WithMessage(err, "Couldn't download WordPress")
	}
	return fmt.Sprintf("Downloaded WordPress in '%s'.", name), nil
}

// NewProject downloads WordPress, installs the plugin and creates a theme,
// all named name. The chain stops at the first failing step.
func (c *Controller) NewProject(ctx context.Context, name, locale string) (string, error) {
	msg, err := c.DownloadWordPress(ctx, name, locale)
	if err != nil {
		return "", err
	}
	c.report(entity.Succeeded(msg))

	project := c.In(name)
	msg, err = project.Install(ctx, "")
	if err != nil {
		return "", err
	}
	c.report(entity.Succeeded(msg))

	msg, err = project.Theme(ctx, name)
	if err != nil {
		return "", err
	}
	c.report(entity.Succeeded(msg))

	return fmt.Sprintf("Wordless project ready in '%s'.", name), nil
}

func validateDirName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return wlerrors.InvalidName(name)
	}
	return nil
}
