package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoteRegex(t *testing.T) {
	tests := []struct {
		url  string
		user string
		repo string
	}{
		{"git@github.com:welaika/wordless.git", "welaika", "wordless"},
		{"https://github.com/welaika/wordless.git", "welaika", "wordless"},
		{"git://github.com/welaika/wordless.git", "welaika", "wordless"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			params := getParams(remoteRegex, tt.url)
			require.Equal(t, tt.user, params["User"])
			require.Equal(t, tt.repo, params["Repo"])
		})
	}
}
