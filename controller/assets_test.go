package controller

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/welaika/wordless-cli/constants"
	wlerrors "github.com/welaika/wordless-cli/errors"
)

// themes creates two themes with compiled assets plus files clean must not touch.
func themes(t *testing.T, root string) (assets []string, unrelated []string) {
	t.Helper()
	themesRoot := filepath.Join(root, constants.ThemesDir)
	for _, theme := range []string{"alpha", "beta"} {
		dir := filepath.Join(themesRoot, theme)
		assets = append(assets,
			filepath.Join(dir, "assets", "stylesheets", "screen.css"),
			filepath.Join(dir, "assets", "javascripts", "application.js"),
		)
		unrelated = append(unrelated,
			filepath.Join(dir, "assets", "stylesheets", "print.css"),
			filepath.Join(dir, "theme", "assets", "stylesheets", "screen.sass"),
			filepath.Join(dir, "index.php"),
		)
	}
	// Has no compiled assets at all.
	unrelated = append(unrelated, filepath.Join(themesRoot, "twentytwenty", "style.css"))
	for _, p := range append(append([]string{}, assets...), unrelated...) {
		writeFile(t, p, "/* */")
	}
	return assets, unrelated
}

func TestDefaultAssetPaths(t *testing.T) {
	root := t.TempDir()
	assets, _ := themes(t, root)
	writeFile(t, filepath.Join(root, constants.ThemesDir, "README"), "not a theme")

	paths, err := DefaultAssetPaths(filepath.Join(root, constants.ThemesDir))
	require.NoError(t, err)

	sort.Strings(paths)
	sort.Strings(assets)
	require.Equal(t, assets, paths)
}

func TestDefaultAssetPathsMissingRoot(t *testing.T) {
	_, err := DefaultAssetPaths(filepath.Join(t.TempDir(), "nope"))
	require.True(t, stderrors.Is(err, wlerrors.ErrMissingDirectory))
}

func TestCleanRemovesOnlyAssets(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	assets, unrelated := themes(t, h.root)

	msg, err := h.ctrl.Clean(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cleaned static assets (4 removed).", msg)

	for _, p := range assets {
		require.False(t, exists(p), p)
	}
	for _, p := range unrelated {
		require.True(t, exists(p), p)
	}

	msg, err = h.ctrl.Clean(context.Background())
	require.NoError(t, err, "missing files are not an error")
	require.Equal(t, "Cleaned static assets (0 removed).", msg)
}

func TestCleanUsesWordfilePaths(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	assets, _ := themes(t, h.root)
	custom := filepath.Join(h.root, "public", "bundle.js")
	writeFile(t, custom, "")

	h.withWordfile(t, `
static_css:
  - wp-content/themes/alpha/assets/stylesheets/screen.css
  - wp-content/themes/alpha/assets/stylesheets/missing.css
static_js: public/bundle.js
`)

	_, err := h.ctrl.Clean(context.Background())
	require.NoError(t, err)

	require.False(t, exists(assets[0]), "configured stylesheet removed")
	require.False(t, exists(custom), "configured javascript removed")
	require.True(t, exists(assets[1]), "default javascript kept when static_js is set")
	require.True(t, exists(assets[2]), "other theme kept")
	require.True(t, exists(assets[3]), "other theme kept")
}

func TestCleanWithEmptyWordfileListsRemovesNothing(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	assets, _ := themes(t, h.root)
	h.withWordfile(t, "static_css: []\nstatic_js: []\n")

	paths, err := h.ctrl.AssetPaths()
	require.NoError(t, err)
	require.Empty(t, paths)

	msg, err := h.ctrl.Clean(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cleaned static assets (0 removed).", msg)
	for _, p := range assets {
		require.True(t, exists(p), p)
	}
}

func TestCleanIgnoresBlankWordfileEntries(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	assets, _ := themes(t, h.root)
	h.withWordfile(t, `
static_css:
  - ""
  - ~
  - wp-content/themes/alpha/assets/stylesheets/screen.css
static_js: "  "
`)

	paths, err := h.ctrl.AssetPaths()
	require.NoError(t, err)
	require.Equal(t, []string{"wp-content/themes/alpha/assets/stylesheets/screen.css"}, paths)

	msg, err := h.ctrl.Clean(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cleaned static assets (1 removed).", msg)
	require.False(t, exists(assets[0]))
	require.True(t, exists(h.root))
	for _, p := range assets[1:] {
		require.True(t, exists(p), p)
	}
}

func TestCleanSkipsHiddenThemeDirectories(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	assets, _ := themes(t, h.root)
	hidden := filepath.Join(h.root, constants.ThemesDir, ".backup", "assets", "stylesheets", "screen.css")
	writeFile(t, hidden, "/* */")

	paths, err := DefaultAssetPaths(filepath.Join(h.root, constants.ThemesDir))
	require.NoError(t, err)
	require.NotContains(t, paths, hidden)

	msg, err := h.ctrl.Clean(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cleaned static assets (4 removed).", msg)
	require.True(t, exists(hidden))
	for _, p := range assets {
		require.False(t, exists(p), p)
	}
}

func TestCleanWithoutThemesDirectory(t *testing.T) {
	h := newHarness(t)

	_, err := h.ctrl.Clean(context.Background())
	require.True(t, stderrors.Is(err, wlerrors.ErrMissingDirectory))
}

func TestCleanPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file modes are not enforced")
	}
	h := newHarness(t)
	wordpress(t, h.root)
	assets, _ := themes(t, h.root)
	locked := filepath.Dir(assets[0])
	require.NoError(t, os.Chmod(locked, 0o555))
	defer os.Chmod(locked, 0o755)

	_, err := h.ctrl.Clean(context.Background())
	require.True(t, stderrors.Is(err, wlerrors.ErrPermissionDenied), "%v", err)
	require.Contains(t, err.Error(), "Couldn't clean static assets")
	require.True(t, exists(assets[0]))
}

func TestCompile(t *testing.T) {
	h := newHarness(t)

	msg, err := h.ctrl.Compile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Compiled static assets.", msg)
	require.Equal(t, []string{"php " + filepath.Join(h.libDir, constants.CompileAssetsScript)}, h.runner.lines())
}

func TestCompileWithoutPHP(t *testing.T) {
	h := newHarness(t)
	h.tools[constants.PHPTool] = false

	_, err := h.ctrl.Compile(context.Background())
	require.True(t, stderrors.Is(err, wlerrors.ErrMissingTool))
	require.Empty(t, h.runner.calls)
}
