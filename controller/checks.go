package controller

import (
	"fmt"
	"os"

	"github.com/welaika/wordless-cli/errors"
)

// ToolAvailable fails when name is not on PATH.
func (c *Controller) ToolAvailable(name string) error {
	if _, err := c.lookPath(name); err != nil {
		return errors.ToolNotAvailable(name)
	}
	return nil
}

func (c *Controller) DirectoryExists(dir string) error {
	info, err := os.Stat(c.path(dir))
	if err != nil || !info.IsDir() {
		return errors.DirectoryNotFound(dir)
	}
	return nil
}

func (c *Controller) FileExists(file string) error {
	info, err := os.Stat(c.path(file))
	if err != nil || info.IsDir() {
		return errors.FileNotFound(file)
	}
	return nil
}

// scriptExists checks a PHP helper shipped next to the executable.
func (c *Controller) scriptExists(name string) error {
	path := c.script(name)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return errors.New(errors.MissingFile, fmt.Sprintf("Helper script '%s' not found. Set lib_dir in your Wordfile.", path))
	}
	return nil
}
