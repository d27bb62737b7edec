package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/errors"
)

func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) (string, error) {
	var err error
	switch req.Args[0] {
	case "bash":
		err = req.Cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		err = req.Cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		err = req.Cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		err = req.Cmd.Root().GenPowerShellCompletion(os.Stdout)
	default:
		return "", errors.New(errors.InvalidArgument, fmt.Sprintf("Unsupported shell '%s'", req.Args[0]))
	}
	return "", err
}
