package gateway

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	wlerrors "github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/ui"
)

// Runner launches external programs and blocks until they exit.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	RunShell(ctx context.Context, dir string, commandLine string) error
}

// Gateway runs processes with the caller's standard streams attached.
type Gateway struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New() *Gateway {
	return &Gateway{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (g *Gateway) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return g.run(cmd, dir, strings.Join(append([]string{name}, args...), " "))
}

// RunShell hands commandLine to the platform shell, as user-defined deploy
// commands may contain pipes and redirections.
func (g *Gateway) RunShell(ctx context.Context, dir string, commandLine string) error {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}
	cmd := exec.CommandContext(ctx, shell, flag, commandLine)
	return g.run(cmd, dir, commandLine)
}

func (g *Gateway) run(cmd *exec.Cmd, dir string, display string) error {
	cmd.Dir = dir
	cmd.Stdin = g.Stdin
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr

	ui.Trace("%s", display)
	if err := cmd.Run(); err != nil {
		return processError(display, err)
	}
	return nil
}

func processError(display string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return wlerrors.Wrap(wlerrors.ProcessFailure, err, fmt.Sprintf("`%s` failed", display))
	}
	return wlerrors.Wrap(wlerrors.ProcessFailure, errors.Wrap(err, "start"), fmt.Sprintf("Couldn't run `%s`", display))
}

// ExitCode extracts the exit status from an error returned by Run or
// RunShell. It is 0 for nil and -1 when the process never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
