package controller

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/entity"
	wlerrors "github.com/welaika/wordless-cli/errors"
)

type runCall struct {
	Dir   string
	Line  string
	Shell bool
}

// fakeRunner records every process it is asked to start.
type fakeRunner struct {
	calls []runCall
	fail  map[string]bool
	onRun func(runCall) error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	return f.record(runCall{Dir: dir, Line: strings.Join(append([]string{name}, args...), " ")}, name)
}

func (f *fakeRunner) RunShell(ctx context.Context, dir string, commandLine string) error {
	return f.record(runCall{Dir: dir, Line: commandLine, Shell: true}, commandLine)
}

func (f *fakeRunner) record(call runCall, key string) error {
	f.calls = append(f.calls, call)
	if f.onRun != nil {
		if err := f.onRun(call); err != nil {
			return err
		}
	}
	if f.fail[key] {
		return wlerrors.New(wlerrors.ProcessFailure, "`"+call.Line+"` failed")
	}
	return nil
}

func (f *fakeRunner) lines() []string {
	lines := []string{}
	for _, c := range f.calls {
		lines = append(lines, c.Line)
	}
	return lines
}

type installCall struct {
	Repo   string
	Target string
}

type fakeInstaller struct {
	calls []installCall
	err   error
}

func (f *fakeInstaller) Install(ctx context.Context, repoURL, target string) error {
	f.calls = append(f.calls, installCall{Repo: repoURL, Target: target})
	return f.err
}

type harness struct {
	ctrl      *Controller
	root      string
	libDir    string
	runner    *fakeRunner
	installer *fakeInstaller
	tools     map[string]bool
	outcomes  []*entity.Outcome
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		root:      t.TempDir(),
		libDir:    t.TempDir(),
		runner:    &fakeRunner{fail: map[string]bool{}},
		installer: &fakeInstaller{},
		tools: map[string]bool{
			constants.GitTool: true,
			constants.PHPTool: true,
			constants.WPTool:  true,
		},
	}
	for _, script := range []string{constants.ThemeBuilderScript, constants.CompileAssetsScript} {
		writeFile(t, filepath.Join(h.libDir, script), "<?php\n")
	}
	h.ctrl = &Controller{
		root: h.root,
		cfg:  configs.Empty(),
		gtwy: h.runner,
		repo: h.installer,
		lookPath: func(name string) (string, error) {
			if h.tools[name] {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		report: func(o *entity.Outcome) {
			h.outcomes = append(h.outcomes, o)
		},
		libDir: h.libDir,
	}
	return h
}

func (h *harness) withWordfile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(h.root, constants.DefaultWordfile)
	writeFile(t, path, content)
	cfg, err := configs.Load(path)
	require.NoError(t, err)
	h.ctrl.cfg = cfg
}

// wordpress lays out the bits of a WordPress installation the commands look for.
func wordpress(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, constants.PluginsDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, constants.ThemesDir), 0o755))
	writeFile(t, filepath.Join(root, constants.WPConfigFile), "<?php\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
