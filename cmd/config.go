package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/ui"
)

// Config prints the effective configuration of the current directory.
func (h *Handler) Config(ctx context.Context, req *entity.CommandRequest) (string, error) {
	ui.Print(ui.KeyValues(h.ctrl.Settings(ctx)))
	return "", nil
}
