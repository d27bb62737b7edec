package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/ui"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) (string, error) {
	list, err := req.Cmd.Flags().GetBool("list")
	if err != nil {
		return "", err
	}
	if list {
		ui.Print(ui.KeyValues(constants.DocsURLMap))
		return "", nil
	}

	page := "docs"
	if len(req.Args) > 0 {
		page = req.Args[0]
	}
	return h.ctrl.OpenInBrowser(page)
}
