package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/welaika/wordless-cli/entity"
)

func TestNewOutcome(t *testing.T) {
	ok := entity.NewOutcome("Compiled static assets.", nil)
	require.True(t, ok.OK())
	require.Equal(t, 0, ok.ExitCode())
	require.Equal(t, "Compiled static assets.", ok.Message)

	failed := entity.NewOutcome("ignored", errors.New("boom"))
	require.False(t, failed.OK())
	require.Equal(t, 1, failed.ExitCode())
	require.Equal(t, "boom", failed.Message)
}
