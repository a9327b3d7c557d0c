package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

// Transports understood by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// shutdownTimeout bounds how long in-flight HTTP calls may take to drain.
const shutdownTimeout = 5 * time.Second

// ServeOptions selects the transport. Stdin/Stdout default to the process
// streams; Listener, when set, overrides Addr.
type ServeOptions struct {
	Transport string
	Addr      string
	Listener  net.Listener
	Stdin     io.Reader
	Stdout    io.Writer
}

// Serve runs the server until ctx is cancelled or the transport ends. Extra
// goroutines (a config watcher, say) may be added to the same group through
// sidecars; each must return once its context is done.
func (s *Server) Serve(ctx context.Context, opts ServeOptions, sidecars ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	switch opts.Transport {
	case TransportStdio, "":
		in, out := opts.Stdin, opts.Stdout
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		stdio := server.NewStdioServer(s.mcp)
		logging.MCP("serving on stdio")
		g.Go(func() error {
			err := stdio.Listen(gctx, in, out)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("stdio transport: %w", err)
			}
			return errStdioClosed
		})

	case TransportHTTP:
		ln := opts.Listener
		if ln == nil {
			var err error
			ln, err = net.Listen("tcp", opts.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
			}
		}
		srv := &http.Server{
			Handler:           server.NewStreamableHTTPServer(s.mcp),
			ReadHeaderTimeout: 10 * time.Second,
		}
		logging.MCP("serving streamable HTTP on %s", ln.Addr())
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http transport: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

	default:
		return fmt.Errorf("unknown transport %q (valid: %s, %s)", opts.Transport, TransportStdio, TransportHTTP)
	}

	for _, run := range sidecars {
		run := run
		g.Go(func() error { return run(gctx) })
	}

	err := g.Wait()
	if errors.Is(err, errStdioClosed) {
		err = nil
	}
	logging.MCP("server stopped")
	return err
}

// errStdioClosed ends the group once the client closes stdin.
var errStdioClosed = errors.New("stdio closed")
