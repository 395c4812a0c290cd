package bitwarden

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_CapturesOutputAndExitCode(t *testing.T) {
	r := NewCommandRunner()

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, nil)
	require.NoError(t, err, "non-zero exit is not an error")
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestExecRunner_Success(t *testing.T) {
	r := NewCommandRunner()

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", string(res.Stdout))
}

func TestExecRunner_ExtraEnvVisibleToChild(t *testing.T) {
	r := NewCommandRunner()

	res, err := r.Run(context.Background(), "sh", []string{"-c", `printf '%s' "$BW_PASSWORD"`}, []string{"BW_PASSWORD=hunter2"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hunter2", string(res.Stdout))
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	r := NewCommandRunner()

	_, err := r.Run(context.Background(), "/nonexistent/definitely-not-a-binary", nil, nil)
	require.Error(t, err)
}
