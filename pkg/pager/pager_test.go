package pager_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anno-tools/anno/pkg/pager"
)

func TestCommand_Arguments(t *testing.T) {
	cmd := pager.Command("less", []string{"a.txt", "b.txt"})

	require.Equal(t, []string{"less", "-R", "a.txt", "b.txt"}, cmd.Args)
}

func TestCommand_InjectsFilter(t *testing.T) {
	cmd := pager.Command("less", nil)

	require.Equal(t, []string{"less", "-R"}, cmd.Args)
	require.Contains(t, cmd.Env, "LESSOPEN=||-annofilter %s")
}
