package metamap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvoker_CapturesStdout tests stdout capture on a clean exit
func TestInvoker_CapturesStdout(t *testing.T) {
	inv := NewInvoker()

	out, err := inv.Invoke(context.Background(), []string{"sh", "-c", "printf 'processing'"})
	require.NoError(t, err)
	assert.Equal(t, "processing", string(out))
}

// TestInvoker_NonZeroExit tests that a failing child still yields stdout
func TestInvoker_NonZeroExit(t *testing.T) {
	inv := NewInvoker()

	out, err := inv.Invoke(context.Background(), []string{"sh", "-c", "echo 'ERROR: no match'; exit 3"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "ERROR: no match")
}

// TestInvoker_SpawnFailure tests the error path for an unspawnable child
func TestInvoker_SpawnFailure(t *testing.T) {
	inv := NewInvoker()

	_, err := inv.Invoke(context.Background(), []string{"/nonexistent/metamap"})
	assert.Error(t, err)
}

// TestInvoker_EmptyArgv tests rejection of an empty vector
func TestInvoker_EmptyArgv(t *testing.T) {
	inv := NewInvoker()

	_, err := inv.Invoke(context.Background(), nil)
	assert.Error(t, err)
}

// TestInvoker_TerminateIdempotent tests termination of an exited child
func TestInvoker_TerminateIdempotent(t *testing.T) {
	inv := NewInvoker()

	// Never invoked: nothing to terminate.
	assert.NoError(t, inv.Terminate())

	_, err := inv.Invoke(context.Background(), []string{"sh", "-c", "true"})
	require.NoError(t, err)

	// The child has exited; both requests must be clean no-ops.
	assert.NoError(t, inv.Terminate())
	assert.NoError(t, inv.Terminate())
}
