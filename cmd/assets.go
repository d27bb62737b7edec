package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
)

func (h *Handler) Compile(ctx context.Context, req *entity.CommandRequest) (string, error) {
	return h.ctrl.Compile(ctx)
}

func (h *Handler) Clean(ctx context.Context, req *entity.CommandRequest) (string, error) {
	return h.ctrl.Clean(ctx)
}
