package run_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohak852/chapel/pkg/run"
)

func TestCommand(t *testing.T) {
	out, err := run.Command(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	require.Equal(t, "hello", out, "trailing newline must be trimmed")
}

func TestCommandMissingBinary(t *testing.T) {
	_, err := run.Command(context.Background(), "definitely-not-a-real-binary-4f2a")
	require.Error(t, err)
}

func TestCommandNonZeroExit(t *testing.T) {
	_, err := run.Command(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
}

func TestShellPipeline(t *testing.T) {
	out, err := run.Shell(context.Background(), "printf '# line\\nkept\\n' | sed -e '/^#/d'")
	require.NoError(t, err)
	require.Equal(t, "kept", out)
}
