package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/web"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the board as a local JSON API until interrupted.

The server listens on server.addr from the config file unless --addr is
given. It is meant for one user on one machine: there is no authentication.

Examples:
  # Serve on the configured address (default 127.0.0.1:7420)
  tablero serve

  # Serve on another port
  tablero serve --addr 127.0.0.1:8080

  # Query it
  curl -s localhost:7420/api/board | jq '.stats'
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, cmd)
}

// Run serves until ctx is cancelled
func Run(ctx context.Context, cmd *cobra.Command) error {
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.App.Config.Server.Addr
	}

	if cliInstance.App.KV.Degraded() {
		slog.Warn("serving a memory-only board", "addr", addr)
	}

	server := web.NewServer(cliInstance.App, slog.Default())
	fmt.Printf("Serving board on http://%s (Ctrl+C to stop)\n", addr)

	if err := server.Run(ctx, addr); err != nil {
		return formatter.Fail(cli.ExitError, "SERVER_ERROR", err, "Is another process using "+addr+"?")
	}
	return nil
}
