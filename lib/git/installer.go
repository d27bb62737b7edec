package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	wlerrors "github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/ui"
)

// Installer keeps a clone of a remote repository at a target path.
type Installer struct{}

func NewInstaller() *Installer {
	return &Installer{}
}

// Install clones repoURL into target, or pulls when target already is a
// checkout. Running it again with the same arguments only fast-forwards.
func (i *Installer) Install(ctx context.Context, repoURL, target string) error {
	abs, err := filepath.Abs(target)
	if err != nil {
		return errors.Wrap(err, "resolve target path")
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return i.clone(ctx, repoURL, abs)
	case os.IsPermission(err):
		return wlerrors.Wrap(wlerrors.PermissionDenied, err, fmt.Sprintf("Can't access '%s'", target))
	case err != nil:
		return errors.Wrapf(err, "stat %s", target)
	case !info.IsDir():
		return wlerrors.New(wlerrors.NotARepository, fmt.Sprintf("'%s' exists and is not a directory", target))
	}

	if !IsRepoRoot(ctx, abs) {
		return wlerrors.New(wlerrors.NotARepository, fmt.Sprintf("'%s' exists but is not a git checkout. Remove it and try again.", target))
	}
	return i.pull(ctx, abs, target)
}

func (i *Installer) clone(ctx context.Context, repoURL, abs string) error {
	if err := os.Mkdir(abs, 0o755); err != nil {
		if os.IsPermission(err) {
			return wlerrors.Wrap(wlerrors.PermissionDenied, err, fmt.Sprintf("Can't create '%s'", abs))
		}
		return wlerrors.Wrap(wlerrors.CloneFailure, err, fmt.Sprintf("Can't create '%s'", abs))
	}

	ui.Trace("git clone %s %s", repoURL, abs)
	ui.StartSpinner(&ui.SpinnerCfg{Message: fmt.Sprintf("Cloning %s...", repoURL)})
	out, err := execGit(ctx, "", "clone", "--quiet", "--", repoURL, abs)
	ui.StopSpinner("")
	if err != nil {
		// Never leave a half-cloned plugin behind.
		_ = os.RemoveAll(abs)
		return gitFailure(out, err, fmt.Sprintf("Couldn't clone %s", repoURL))
	}
	return nil
}

func (i *Installer) pull(ctx context.Context, abs, target string) error {
	ui.Trace("git -C %s pull --ff-only", abs)
	ui.StartSpinner(&ui.SpinnerCfg{Message: fmt.Sprintf("Updating %s...", target)})
	out, err := execGit(ctx, abs, "pull", "--quiet", "--ff-only")
	ui.StopSpinner("")
	if err != nil {
		return gitFailure(out, err, fmt.Sprintf("Couldn't update '%s'", target))
	}
	return nil
}

func gitFailure(out []byte, err error, message string) error {
	if output := trim(out); output != "" {
		err = fmt.Errorf("%w\n%s", err, strings.TrimRight(ui.PrefixLines(output, "    "), "\n"))
	}
	kind := wlerrors.CloneFailure
	if strings.Contains(string(out), "Permission denied") {
		kind = wlerrors.PermissionDenied
	}
	return wlerrors.Wrap(kind, err, message)
}
