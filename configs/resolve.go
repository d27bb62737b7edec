package configs

import "strings"

type Source string

const (
	SourceFlag     Source = "flag"
	SourceWordfile Source = "Wordfile"
	SourceDefault  Source = "default"
)

// Resolve picks the effective value for one option: a non-empty command line
// flag wins over the Wordfile, which wins over def.
func (c *Configs) Resolve(flagValue, key, def string) (string, Source) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, SourceFlag
	}
	if v := c.GetString(key, ""); v != "" {
		return v, SourceWordfile
	}
	return def, SourceDefault
}
