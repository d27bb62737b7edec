package controller

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/errors"
)

// OpenInBrowser opens the docs page registered under shortcut.
func (c *Controller) OpenInBrowser(shortcut string) (string, error) {
	url, ok := constants.DocsURLMap[shortcut]
	if !ok {
		return "", errors.New(errors.InvalidArgument, fmt.Sprintf("Unknown page '%s'. Run wordless docs --list", shortcut))
	}
	if err := browser.OpenURL(url); err != nil {
		return "", errors.Wrap(errors.ProcessFailure, err, fmt.Sprintf("Couldn't open %s", url))
	}
	return fmt.Sprintf("Opened %s", url), nil
}
