package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/common"
	"github.com/alphabridge/alphabridge/pkg/log"
)

// Server exposes the AlphaESS bridge tools over MCP. One vendor client is
// created lazily on the first tool call and shared for the process lifetime;
// nothing on it is mutated afterwards, so concurrent tool calls need no
// locking beyond the once-initialization.
type Server struct {
	serverName string

	appID      string
	appSecret  string
	apiURL     string
	apiTimeout time.Duration
	listenAddr string

	clientOnce sync.Once
	client     alphaess.API
	clientErr  error
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured() *Server {
	srv := &Server{serverName: "alphabridge"}

	appID := lflag.String("app-id", os.Getenv("ALPHAESS_APP_ID"), "AlphaESS Open API application ID")
	appSecret := lflag.String("app-secret", os.Getenv("ALPHAESS_APP_SECRET"), "AlphaESS Open API application secret")
	apiURL := lflag.String("api-url", "", "Override the AlphaESS Open API base URL")
	apiTimeout := lflag.Duration("api-timeout", time.Minute, "Timeout for AlphaESS API calls")
	listenAddr := lflag.String("http-listen", "", "Serve MCP over HTTP/SSE on this address instead of stdio")

	lflag.Do(func() {
		srv.appID = *appID
		srv.appSecret = *appSecret
		srv.apiURL = *apiURL
		srv.apiTimeout = *apiTimeout
		srv.listenAddr = *listenAddr
	})

	return srv
}

// api returns the shared vendor client, creating it on first use. Missing or
// empty credentials fail every call with the same error instead of crashing
// the process.
func (s *Server) api() (alphaess.API, error) {
	s.clientOnce.Do(func() {
		if s.client != nil {
			// injected by tests
			return
		}
		var opts []alphaess.Option
		if s.apiURL != "" {
			opts = append(opts, alphaess.WithBaseURL(s.apiURL))
		}
		if s.apiTimeout > 0 {
			opts = append(opts, alphaess.WithTimeout(s.apiTimeout))
		}
		c, err := alphaess.New(s.appID, s.appSecret, opts...)
		if err != nil {
			s.clientErr = err
			return
		}
		s.client = c
	})
	return s.client, s.clientErr
}

// Run serves the MCP tools until the context is canceled. The default
// transport is stdio; --http-listen switches to SSE over HTTP with gzip.
func (s *Server) Run(ctx context.Context) error {
	m := mcpserver.NewMCPServer(s.serverName, common.Version(),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools(m)

	if s.listenAddr != "" {
		sse := mcpserver.NewSSEServer(m)
		httpServer := &http.Server{
			Addr:         s.listenAddr,
			Handler:      gziphandler.GzipHandler(sse),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // SSE streams stay open
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Ctx(ctx).ErrorContext(ctx, "failed to shut down http server", slog.Any("error", err))
			}
		}()

		log.Ctx(ctx).InfoContext(ctx, "serving MCP over HTTP/SSE", slog.String("addr", s.listenAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	log.Ctx(ctx).InfoContext(ctx, "serving MCP over stdio")
	return mcpserver.NewStdioServer(m).Listen(ctx, os.Stdin, os.Stdout)
}
