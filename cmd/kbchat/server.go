package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/jgrande/kbchat/internal/api"
	"github.com/jgrande/kbchat/internal/config"
	"github.com/jgrande/kbchat/internal/gemini"
	"github.com/jgrande/kbchat/internal/knowledge"
	"github.com/jgrande/kbchat/internal/pipeline"
	"github.com/jgrande/kbchat/internal/retrieval"
	"github.com/jgrande/kbchat/internal/storage"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the kbchat server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running kbchat server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show kbchat system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "kbchat.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "kbchat version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize structured logging.
	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Write PID file. Check if server is already running via health endpoint.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			printWarning("kbchat is already running (PID %d)", pid)
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		printWarning("kbchat is already running on port %d", cfg.Server.Port)
		return fmt.Errorf("server already running on port %d", cfg.Server.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Check Gemini API readiness.
	client := gemini.New(cfg.Gemini.BaseURL, cfg.Gemini.APIKey)
	if err := gemini.EnsureReady(ctx, client, cfg.Gemini.GenModel, cfg.Gemini.EmbedModel, os.Stderr); err != nil {
		return err
	}

	// Load the knowledge base (builtins plus optional docs directory).
	base, err := knowledge.Load(cfg.Knowledge.DocsDir)
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	slog.Info("knowledge base loaded", "documents", base.Len())

	// Open storage for interaction history.
	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	// Build the answering pipeline.
	embedder := retrieval.NewEmbedder(client, cfg.Gemini.EmbedModel)
	cache := retrieval.NewCache(base, embedder)
	retriever := retrieval.NewRetriever(embedder, cache)
	gate := retrieval.NewGate(cfg.Retrieval.TopK, cfg.Retrieval.Threshold)
	answerer := pipeline.NewAnswerer(retriever, gate, client, cfg.Gemini.GenModel)

	// Warm the embedding cache in the background; the first query does
	// it on demand if this fails.
	go func() {
		if err := cache.Warm(ctx); err != nil {
			slog.Warn("knowledge base warm-up failed", "error", err)
		}
	}()

	// Build HTTP handlers.
	chatHandler := api.NewChatHandler(api.ChatDeps{
		Answerer: answerer,
		Store:    store,
	})

	topRouter := chi.NewRouter()
	topRouter.Mount("/", chatHandler)
	if cfg.Server.APIToken != "" {
		appHandler := api.NewAppHandler(api.AppDeps{
			Store: store,
			Token: cfg.Server.APIToken,
		})
		topRouter.Mount("/app", appHandler)
	} else {
		printWarning("no API token configured; management endpoints disabled")
	}

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: topRouter,
	}

	// Build and start MCP server (stdio transport in a goroutine).
	mcpSrv := api.NewMCPServer(api.MCPDeps{
		Answerer:  answerer,
		Retriever: retriever,
		Store:     store,
	})
	stdioSrv := server.NewStdioServer(mcpSrv)
	go func() {
		if err := stdioSrv.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MCP stdio server error", "error", err)
		}
	}()
	slog.Info("MCP server started (stdio transport)")

	// Start server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "kbchat listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for signal or server error.
	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("kbchat is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop kbchat (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to kbchat (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load()
	if err != nil {
		// Still show partial status even if config fails.
		printError("config error: %v", err)
		return nil
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == 200 {
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	gemClient := gemini.New(cfg.Gemini.BaseURL, cfg.Gemini.APIKey)
	checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if gemClient.IsReachable(checkCtx) {
		printStatus("Gemini API", "reachable")
	} else {
		printStatus("Gemini API", "unreachable")
	}

	printStatus("Generation model", "%s", cfg.Gemini.GenModel)
	printStatus("Embedding model", "%s", cfg.Gemini.EmbedModel)
	printStatus("Top K", "%d", cfg.Retrieval.TopK)
	printStatus("Threshold", "%.2f", cfg.Retrieval.Threshold)
	if cfg.Knowledge.DocsDir != "" {
		printStatus("Docs dir", "%s", cfg.Knowledge.DocsDir)
	}
	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}
