package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/store"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
	// TransportSSE serves MCP over HTTP server-sent events.
	TransportSSE Transport = "sse"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Vault     store.Vault
	Extension string
	Name      string
	Version   string

	Transport Transport
	// ListenAddr is the host:port used by the SSE transport.
	ListenAddr string
	// OnListening is called with the base URL once the SSE server starts.
	OnListening func(baseURL string)
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, v store.Vault, ext string) error {
	r := Runner{
		Vault:     v,
		Extension: ext,
		Transport: TransportStdio,
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with the dream tools and resources.
func (r Runner) NewServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "dreams"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	svc := NewService(r.Vault, r.Extension)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Vault == nil {
		return errors.New("mcp runner requires a vault")
	}
	srv := r.NewServer()

	switch t := r.Transport; t {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportSSE:
		return r.serveSSE(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) serveSSE(ctx context.Context, srv *server.MCPServer) error {
	addr := r.ListenAddr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	baseURL := "http://" + addr
	sse := server.NewSSEServer(srv, server.WithBaseURL(baseURL))

	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := sse.Shutdown(shutdownCtx); err != nil {
				logging.Warnf("mcp: shutdown: %v", err)
			}
		}()
	}

	if r.OnListening != nil {
		r.OnListening(baseURL)
	}
	if err := sse.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
