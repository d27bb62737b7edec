package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
)

func (h *Handler) Deploy(ctx context.Context, req *entity.CommandRequest) (string, error) {
	refresh, err := req.Cmd.Flags().GetBool("refresh")
	if err != nil {
		return "", err
	}
	command, err := req.Cmd.Flags().GetString("command")
	if err != nil {
		return "", err
	}
	return h.ctrl.Deploy(ctx, refresh, command)
}
