package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/ui"
)

func (h *Handler) Theme(ctx context.Context, req *entity.CommandRequest) (string, error) {
	name, err := nameArg(req, ui.ThemeNamePrompt, errors.ThemeNameMissing)
	if err != nil {
		return "", err
	}
	return h.ctrl.Theme(ctx, name)
}
