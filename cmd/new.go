package cmd

import (
	"context"

	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/ui"
)

func (h *Handler) New(ctx context.Context, req *entity.CommandRequest) (string, error) {
	name, err := nameArg(req, ui.ProjectNamePrompt, errors.ProjectNameMissing)
	if err != nil {
		return "", err
	}
	locale, err := req.Cmd.Flags().GetString("locale")
	if err != nil {
		return "", err
	}
	return h.ctrl.NewProject(ctx, name, locale)
}

// nameArg takes NAME from the arguments, or asks for it on a terminal.
func nameArg(req *entity.CommandRequest, prompt ui.Prompt, missing error) (string, error) {
	if len(req.Args) > 0 {
		return req.Args[0], nil
	}
	if !ui.IsInteractive() {
		return "", missing
	}
	return ui.PromptText(prompt)
}
