package cmd

import (
	"context"
	"fmt"

	"github.com/welaika/wordless-cli/ui"
)

// Panic reports a crash inside a command as a failed outcome.
func (h *Handler) Panic(ctx context.Context, err string, stacktrace string, command string, args []string) error {
	ui.Error(fmt.Sprintf("Unexpected error while running %s: %s", command, err))
	if ui.Verbose() {
		ui.Print(ui.PrefixLines(stacktrace, "    "))
	}
	return nil
}
