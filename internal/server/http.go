package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/config"
)

// Serve runs an MCP server over streamable HTTP at /mcp, alongside the
// health endpoint and the OAuth stub routes, until ctx is cancelled.
func Serve(ctx context.Context, cfg config.Config, name string, s *server.MCPServer, log *zap.Logger) error {
	streamable := server.NewStreamableHTTPServer(s,
		server.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.HandleFunc("/health", handleHealth(name))
	mux.HandleFunc("/", handleRoot(name))
	registerOAuthStubs(mux)

	httpServer := &http.Server{
		Addr:    cfg.BindAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("service", name),
			zap.String("addr", cfg.BindAddress),
			zap.String("endpoint", "/mcp"))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", zap.String("service", name))
	return nil
}

func handleHealth(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "healthy",
			"service": name,
			"version": Version,
		})
	}
}

func handleRoot(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"service":  name,
			"version":  Version,
			"mcp":      "/mcp",
			"health":   "/health",
			"protocol": "streamable-http",
		})
	}
}

// registerOAuthStubs mounts the dummy OAuth surface. Every well-formed
// request is granted: real isolation comes from MCP session ids, and these
// endpoints exist only so OAuth-aware clients can complete their handshake.
func registerOAuthStubs(mux *http.ServeMux) {
	mux.HandleFunc("/.well-known/oauth-authorization-server", func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		writeJSON(w, http.StatusOK, map[string]any{
			"issuer":                   base,
			"authorization_endpoint":   base + "/oauth/authorize",
			"token_endpoint":           base + "/oauth/token",
			"registration_endpoint":    base + "/oauth/register",
			"response_types_supported": []string{"code"},
			"grant_types_supported":    []string{"authorization_code", "client_credentials"},
		})
	})

	mux.HandleFunc("/oauth/authorize", func(w http.ResponseWriter, r *http.Request) {
		redirect := r.URL.Query().Get("redirect_uri")
		if redirect == "" {
			http.Error(w, "missing redirect_uri", http.StatusBadRequest)
			return
		}
		state := r.URL.Query().Get("state")
		location := fmt.Sprintf("%s?code=%s&state=%s", redirect, uuid.NewString(), state)
		http.Redirect(w, r, location, http.StatusFound)
	})

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": uuid.NewString(),
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	mux.HandleFunc("/oauth/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"client_id":     uuid.NewString(),
			"client_secret": uuid.NewString(),
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
