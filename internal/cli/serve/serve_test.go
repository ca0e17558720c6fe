package serve

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestServe_StopsOnCancel(t *testing.T) {
	a := clitest.SetupCLITest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Set("addr", "127.0.0.1:0"))
	cmd.SetContext(cli.WithApp(ctx, a))

	var runErr error
	output := testutil.CaptureOutput(t, func() {
		runErr = Run(ctx, cmd)
	})

	require.NoError(t, runErr)
	assert.Contains(t, output, "Serving board on http://127.0.0.1:0")
}

func TestServe_AddressInUse(t *testing.T) {
	a := clitest.SetupCLITest(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Set("addr", ln.Addr().String()))
	cmd.SetContext(cli.WithApp(ctx, a))

	var runErr error
	testutil.CaptureOutput(t, func() {
		runErr = Run(ctx, cmd)
	})

	require.Error(t, runErr)
	assert.Equal(t, cli.ExitError, cli.ExitCode(runErr))
}
