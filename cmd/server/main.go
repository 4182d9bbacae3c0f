// Package main is the entry point for the ryzenadj-mcp server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
	"github.com/mwynn/ryzenadj-mcp/internal/auth"
	"github.com/mwynn/ryzenadj-mcp/internal/config"
	"github.com/mwynn/ryzenadj-mcp/internal/executor"
	"github.com/mwynn/ryzenadj-mcp/internal/profile"
	"github.com/mwynn/ryzenadj-mcp/internal/sysd"
	"github.com/mwynn/ryzenadj-mcp/internal/tools"
	"github.com/mwynn/ryzenadj-mcp/internal/tuning"
)

func main() {
	cfg := loadConfig()
	config.ApplyEnvOverrides(cfg)

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.Printf("warning: could not generate auth token: %v — running without authentication", err)
	} else if tokenBefore == "" {
		log.Printf("generated auth token (set RYZENADJ_MCP_AUTH_TOKEN to persist): %s", token)
	}

	// Open audit log writer if enabled.
	var auditLog *audit.Logger
	if cfg.Audit.Enabled {
		path := cfg.Audit.LogPath
		if path == "" {
			if base, err := os.UserConfigDir(); err == nil {
				path = filepath.Join(base, "ryzenadj-mcp", "audit.log")
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Printf("warning: could not open audit log %q: %v — audit logging disabled", path, err)
		} else {
			auditLog = audit.NewLogger(f)
			defer f.Close()
		}
	}

	store, err := profile.NewStore(cfg.Profiles.Path)
	if err != nil {
		log.Fatalf("failed to open profile store: %v", err)
	}
	log.Printf("profile store at %q", store.Path())

	runner := executor.NewRunner()
	tuner := tuning.NewManager(store, runner, cfg.Ryzenadj.Binary, cfg.Ryzenadj.UsePkexec)

	autostart, err := sysd.NewAutostart(cfg.Autostart.Binary, cfg.Autostart.Fallback)
	if err != nil {
		log.Fatalf("failed to resolve autostart path: %v", err)
	}
	integrations := sysd.Deps{
		Manager:    sysd.NewManager(),
		Autostart:  autostart,
		Store:      store,
		Runner:     runner,
		BinaryPath: cfg.Ryzenadj.BinaryPath,
		UsePkexec:  cfg.Ryzenadj.UsePkexec,
	}

	// Build MCP server.
	mcpServer := server.NewMCPServer(
		"ryzenadj-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	// Register all tools.
	var registrations []tools.Registration
	registrations = append(registrations, profile.ProfileTools(store, auditLog)...)
	registrations = append(registrations, tuning.TuningTools(tuner, auditLog)...)
	registrations = append(registrations, sysd.IntegrationTools(integrations, auditLog)...)
	tools.RegisterAll(mcpServer, registrations)

	// Build Streamable HTTP server and wrap with auth middleware.
	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)
	wrappedHandler := authMiddleware(httpHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           wrappedHandler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("ryzenadj-mcp listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// loadConfig attempts to read the config file from the path specified by
// RYZENADJ_MCP_CONFIG_PATH or the per-user default. If the file cannot be
// read, DefaultConfig is returned.
func loadConfig() *config.Config {
	path := os.Getenv("RYZENADJ_MCP_CONFIG_PATH")
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return config.DefaultConfig()
		}
		path = filepath.Join(base, "ryzenadj-mcp", "config.yaml")
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}

	log.Printf("loaded config from %q", path)
	return cfg
}
