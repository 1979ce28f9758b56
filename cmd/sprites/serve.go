package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sprites/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeAnim   string
)

var serveCmd = &cobra.Command{
	Use:   "serve <sheet>...",
	Short: "Serve the animation preview over SSH",
	Long: `Start an SSH server that shows the animation preview to every
connection. The catalog is built once; each session gets its own playback.

Host key handling:
  - If --host-key (or serve.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.sprites/host_key

Examples:
  sprites serve assets/knight.json               # Listen on the configured address
  sprites serve assets/*.json --ssh :2222        # Listen on port 2222
  sprites serve assets/*.json --host-key ./key   # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.MinimumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagServeAnim, "anim", "", "Animation sessions start on")
}

func runServe(_ *cobra.Command, args []string) {
	e, err := loadEnv(os.Stderr)
	exitOnError(err)
	c, err := e.loadCatalog(args)
	exitOnError(err)

	start, err := startID(c, flagServeAnim)
	exitOnError(err)

	cfg := tui.SSHServerConfig{
		Address:     e.cfg.Serve.Address,
		HostKeyPath: e.cfg.Serve.HostKey,
		IdleTimeout: e.cfg.Serve.IdleTimeout,
		TickRate:    e.cfg.Preview.TickRate,
		Speed:       e.cfg.Preview.Speed,
		Start:       start,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, c, e.logger.WithPrefix("sprites-ssh"))
	if err != nil {
		exitOnError(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Serving %d animations on %s\n", c.Len(), server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	exitOnError(server.ListenAndServe())
}
