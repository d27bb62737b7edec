package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/welaika/wordless-cli/constants"
)

func TestSettings(t *testing.T) {
	h := newHarness(t)
	wordpress(t, h.root)
	themes(t, h.root)
	h.withWordfile(t, "deploy_command: make deploy\n")

	settings := h.ctrl.Settings(context.Background())

	require.Equal(t, constants.DefaultWordlessRepo+" (default)", settings["wordless_repo"])
	require.Equal(t, "make deploy (Wordfile)", settings["deploy_command"])
	require.Equal(t, h.libDir, settings["lib_dir"])
	require.Equal(t, "(not installed)", settings["plugin"])
	require.Contains(t, settings["static_assets"], "wp-content/themes/alpha/assets/stylesheets/screen.css")
	require.Contains(t, settings["static_assets"], "wp-content/themes/beta/assets/javascripts/application.js")
}

func TestSettingsWithoutWordfile(t *testing.T) {
	h := newHarness(t)

	settings := h.ctrl.Settings(context.Background())

	require.Equal(t, "(not set)", settings["deploy_command"])
	require.Equal(t, "Wordfile (not found)", settings["wordfile"])
	_, ok := settings["static_assets"]
	require.False(t, ok, "no themes directory")
}
