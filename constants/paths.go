package constants

import "path/filepath"

// DefaultWordlessRepo is used when neither --repo nor wordless_repo is set.
const DefaultWordlessRepo = "https://github.com/welaika/wordless.git"

const (
	DefaultWordfile = "Wordfile"
	WPConfigFile    = "wp-config.php"

	ThemeBuilderScript   = "theme_builder.php"
	CompileAssetsScript  = "compile_assets.php"
	WordlessPluginFolder = "wordless"
)

var (
	PluginsDir = filepath.Join("wp-content", "plugins")
	ThemesDir  = filepath.Join("wp-content", "themes")

	// Relative to a single theme directory.
	DefaultStaticCSS = filepath.Join("assets", "stylesheets", "screen.css")
	DefaultStaticJS  = filepath.Join("assets", "javascripts", "application.js")
)

// External tools the commands shell out to.
const (
	GitTool = "git"
	PHPTool = "php"
	WPTool  = "wp"
)
