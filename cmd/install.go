package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
)

func (h *Handler) Install(ctx context.Context, req *entity.CommandRequest) (string, error) {
	repo, err := req.Cmd.Flags().GetString("repo")
	if err != nil {
		return "", err
	}
	return h.ctrl.Install(ctx, repo)
}
