package cmd

import (
	"context"
	"fmt"

	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) (string, error) {
	if constants.Version != "source" {
		latest, err := h.ctrl.GetLatestVersion(ctx)
		if err != nil {
			ui.Trace("latest release lookup failed: %v", err)
		} else if latest != "" && latest != constants.Version {
			ui.Info(fmt.Sprintf("A newer version of wordless is available: %s", ui.Bold(latest)))
		}
	}
	return fmt.Sprintf("wordless version %s", constants.Version), nil
}
