package cmd

import (
	"context"
	"os"

	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/controller"
	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/ui"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{}
}

// Setup runs before every command: it applies global flags and loads the
// Wordfile from the working directory.
func (h *Handler) Setup(ctx context.Context, req *entity.CommandRequest) (string, error) {
	verbose, err := req.Cmd.Flags().GetBool("verbose")
	if err != nil {
		return "", err
	}
	ui.SetVerbose(verbose)

	wordfile, err := req.Cmd.Flags().GetString("wordfile")
	if err != nil {
		return "", err
	}

	cfg, err := configs.Load(wordfile)
	if err != nil {
		return "", err
	}

	root, err := os.Getwd()
	if err != nil {
		return "", err
	}

	h.cfg = cfg
	h.ctrl = controller.New(root, cfg)
	return "", nil
}
