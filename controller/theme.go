package controller

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/welaika/wordless-cli/constants"
)

// Theme generates a Wordless theme skeleton named name.
func (c *Controller) Theme(ctx context.Context, name string) (string, error) {
	if err := validateDirName(name); err != nil {
		return "", err
	}
	if err := c.DirectoryExists(constants.ThemesDir); err != nil {
		return "", err
	}
	if err := c.ToolAvailable(constants.PHPTool); err != nil {
		return "", err
	}
	if err := c.scriptExists(constants.ThemeBuilderScript); err != nil {
		return "", err
	}

	if err := c.gtwy.Run(ctx, c.root, constants.PHPTool, c.script(constants.ThemeBuilderScript), name); err != nil {
		return "", errors.WithMessage(err, "Couldn't create Wordless theme")
	}
	return fmt.Sprintf("Created a new Wordless theme in '%s'.", filepath.ToSlash(filepath.Join(constants.ThemesDir, name))), nil
}
