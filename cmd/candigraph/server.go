package candigraph

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/candigraph/candigraph/pkg/config"
	"github.com/candigraph/candigraph/pkg/driver"
	"github.com/candigraph/candigraph/pkg/logger"
	"github.com/candigraph/candigraph/pkg/search"
	"github.com/candigraph/candigraph/pkg/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the candigraph HTTP server",
	Long: `Start the candigraph HTTP server to provide REST API access to candidate records.

The server provides endpoints for:
- Multi-criteria candidate search
- Candidate profile aggregation (education, exams, achievements)
- Health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().String("host", "", "Server host")
	serverCmd.Flags().Int("port", 0, "Server port")
	serverCmd.Flags().String("mode", "", "Server mode (debug, release, test)")

	// Database flags
	serverCmd.Flags().String("db-uri", "", "Neo4j bolt URI")
	serverCmd.Flags().String("db-username", "", "Neo4j username")
	serverCmd.Flags().String("db-password", "", "Neo4j password")
	serverCmd.Flags().String("db-database", "", "Neo4j database name")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	overrideServerFlags(cmd, cfg)

	log := logger.FromConfig(cfg.Log.Level, cfg.Log.Format)

	// Connect to the graph store
	exec, err := driver.NewNeo4jExecutor(cfg.Database.URI, cfg.Database.Username,
		cfg.Database.Password, cfg.Database.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to graph store: %w", err)
	}
	defer exec.Close(context.Background())

	var executor driver.GraphExecutor = exec
	if cfg.CircuitBreaker.Enabled {
		executor = driver.NewBreakerExecutor(exec, cfg.CircuitBreaker, log, "neo4j")
	}

	limits := search.PageLimits{
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
	}
	service := search.NewService(search.NewRepository(executor, log, limits), log)

	// Create and setup server
	var pinger driver.Pinger
	if p, ok := executor.(driver.Pinger); ok {
		pinger = p
	}
	srv := server.New(cfg, service, pinger, log)
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		log.Info("received signal, shutting down", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		log.Info("server stopped gracefully")
		return nil
	}
}

func overrideServerFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("db-uri") {
		cfg.Database.URI, _ = cmd.Flags().GetString("db-uri")
	}
	if cmd.Flags().Changed("db-username") {
		cfg.Database.Username, _ = cmd.Flags().GetString("db-username")
	}
	if cmd.Flags().Changed("db-password") {
		cfg.Database.Password, _ = cmd.Flags().GetString("db-password")
	}
	if cmd.Flags().Changed("db-database") {
		cfg.Database.Database, _ = cmd.Flags().GetString("db-database")
	}
}
