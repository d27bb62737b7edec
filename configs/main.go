package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/errors"
)

// Recognized Wordfile keys. Anything else in the file is ignored.
const (
	WordlessRepoKey  = "wordless_repo"
	DeployCommandKey = "deploy_command"
	StaticCSSKey     = "static_css"
	StaticJSKey      = "static_js"
	LibDirKey        = "lib_dir"
)

var Keys = []string{WordlessRepoKey, DeployCommandKey, StaticCSSKey, StaticJSKey, LibDirKey}

// Configs is the project configuration read from the Wordfile. It is loaded
// once at startup and never written to afterwards.
type Configs struct {
	viper *viper.Viper
	path  string
	found bool
}

// Load reads the Wordfile at path. A missing file yields an empty config.
func Load(path string) (*Configs, error) {
	v := viper.New()
	v.SetConfigFile(path)
	// The Wordfile has no extension so viper can't guess the format.
	v.SetConfigType("yaml")

	cfg := &Configs{
		viper: v,
		path:  path,
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ConfigParseError, err, fmt.Sprintf("Couldn't read %s", path))
	}
	if info.IsDir() {
		return nil, errors.New(errors.ConfigParseError, fmt.Sprintf("%s is a directory", path))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errors.ConfigParseError, err, fmt.Sprintf("Malformed %s", path))
	}
	cfg.found = true

	return cfg, nil
}

// Empty returns a config with no values, as if no Wordfile existed.
func Empty() *Configs {
	return &Configs{viper: viper.New(), path: constants.DefaultWordfile}
}

func (c *Configs) Path() string {
	return c.path
}

// Found reports whether a Wordfile was actually read.
func (c *Configs) Found() bool {
	return c.found
}

// Has reports whether key holds a non-null value.
func (c *Configs) Has(key string) bool {
	return c.viper.IsSet(key)
}

// Get returns the raw value for key or def when absent.
func (c *Configs) Get(key string, def interface{}) interface{} {
	if !c.Has(key) {
		return def
	}
	return c.viper.Get(key)
}

// GetString returns key as a string. Blank and non-scalar values count as absent.
func (c *Configs) GetString(key, def string) string {
	s, err := cast.ToStringE(c.Get(key, def))
	if err != nil || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// GetStringSlice returns key as a list. A single string is a one-element
// list and blank entries are dropped. A configured key always yields a
// non-nil slice, even when empty, so callers can tell it from def.
func (c *Configs) GetStringSlice(key string, def []string) []string {
	if !c.Has(key) {
		return def
	}
	raw := c.viper.Get(key)
	if s, ok := raw.(string); ok {
		raw = []string{s}
	}
	list, err := cast.ToStringSliceE(raw)
	if err != nil {
		return def
	}

	values := []string{}
	for _, v := range list {
		if strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}
	return values
}
