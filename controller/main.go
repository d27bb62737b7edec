package controller

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/go-github/github"
	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/gateway"
	"github.com/welaika/wordless-cli/lib/git"
	"github.com/welaika/wordless-cli/ui"
)

// RepoInstaller clones or updates a repository at a target path.
type RepoInstaller interface {
	Install(ctx context.Context, repoURL, target string) error
}

// Reporter prints the outcome of an intermediate step of a chained command.
type Reporter func(*entity.Outcome)

type Controller struct {
	root     string
	cfg      *configs.Configs
	gtwy     gateway.Runner
	repo     RepoInstaller
	ghc      *github.Client
	lookPath func(string) (string, error)
	report   Reporter
	libDir   string
}

// New returns a controller operating on the WordPress installation at root.
func New(root string, cfg *configs.Configs) *Controller {
	return &Controller{
		root:     root,
		cfg:      cfg,
		gtwy:     gateway.New(),
		repo:     git.NewInstaller(),
		ghc:      github.NewClient(nil),
		lookPath: exec.LookPath,
		report:   ui.Report,
		libDir:   resolveLibDir(root, cfg),
	}
}

// In returns a copy of c rooted at dir, relative to the current root.
func (c *Controller) In(dir string) *Controller {
	sub := *c
	sub.root = c.path(dir)
	return &sub
}

func (c *Controller) Root() string {
	return c.root
}

// path resolves p against the controller root unless it is already absolute.
func (c *Controller) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}

func (c *Controller) script(name string) string {
	return filepath.Join(c.libDir, name)
}

// resolveLibDir finds the PHP helper scripts: lib_dir from the Wordfile, or
// the directory of the wordless executable.
func resolveLibDir(root string, cfg *configs.Configs) string {
	if dir := cfg.GetString(configs.LibDirKey, ""); dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(root, dir)
	}
	ex, err := os.Executable()
	if err != nil {
		return root
	}
	if resolved, err := filepath.EvalSymlinks(ex); err == nil {
		ex = resolved
	}
	return filepath.Dir(ex)
}
