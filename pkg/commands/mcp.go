package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/runner/mcp"
	"tableflip.dev/dreams/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that lets assistants record and read dream entries
through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			v, err := store.Load(cfg)
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				Vault:     v,
				Extension: cfg.Extension(),
				Name:      "dreams",
				Version:   version,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportSSE):
				h := strings.TrimSpace(host)
				if h == "" {
					h = "127.0.0.1"
				}
				if port < 0 || port > 65535 {
					return fmt.Errorf("invalid port %d", port)
				}
				runner.Transport = mcp.TransportSSE
				runner.ListenAddr = net.JoinHostPort(h, strconv.Itoa(port))
				runner.OnListening = func(baseURL string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP SSE server listening on %s/sse\n", baseURL)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected stdio or sse)", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "transport to use: stdio or sse")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "host/interface for the SSE transport")
	cmd.Flags().IntVar(&port, "port", 8080, "port for the SSE transport")

	topLevel.AddCommand(cmd)
}
