package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/gateway/server"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/version"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP parse gateway",
	Long: `Starts the latexp HTTP gateway.

Endpoints:
  POST /api/v1/parse          Parse one or more formulas
  GET  /api/v1/health         Health report
  GET  /api/v1/version        Build information
  GET  /api/v1/history        Recorded parse history
  GET  /api/v1/history/stats  History statistics
  GET  /ws                    WebSocket parse stream

Examples:
  latexp serve
  latexp serve --port 9090
  curl -X POST localhost:8080/api/v1/parse -d '{"formula":"(\\neg (true))"}'`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Gateway.Host = serveHost
	}
	if servePort != 0 {
		cfg.Gateway.Port = servePort
	}

	store, err := openStore(cfg)
	if err != nil {
		printError("history store unavailable, recording disabled", err)
		store = nil
	}

	srv, err := server.New(server.Config{
		Host:         cfg.Gateway.Host,
		Port:         cfg.Gateway.Port,
		ReadTimeout:  cfg.Gateway.ReadTimeout,
		WriteTimeout: cfg.Gateway.WriteTimeout,
		Version:      version.Version,
		Engine: logic.Options{
			MaxInputLength: cfg.Engine.MaxInputLength,
			Strict:         cfg.Engine.Strict,
			CollectStats:   cfg.Engine.CollectStats,
		},
		Store:              store,
		HistoryBatchSize:   cfg.History.BatchSize,
		HistoryFlushPeriod: cfg.History.FlushPeriod,
		CacheTTL:           cfg.Gateway.CacheTTL,
		CacheSize:          cfg.Gateway.CacheSize,
	})
	if err != nil {
		return err
	}

	srv.StartAsync()

	fmt.Printf("%s gateway listening on http://%s\n", version.ServiceName, srv.Address())
	fmt.Printf("Health check: http://%s/api/v1/health\n", srv.Address())
	fmt.Println("Press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Gateway.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		printError("shutdown failed", err)
	}
	if store != nil {
		store.Close()
	}
	return nil
}
