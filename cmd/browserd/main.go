package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/browserd/pkg/config"
	"github.com/odvcencio/browserd/pkg/engine/adapters/playwright"
	"github.com/odvcencio/browserd/pkg/ipc"
	"github.com/odvcencio/browserd/pkg/logging"
	"github.com/odvcencio/browserd/pkg/session"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "browserd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	port := flag.Int("port", -1, "RPC port (overrides config, 0 picks a free port)")
	headful := flag.Bool("headful", false, "run the browser with a visible window")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("browserd %s (%s, built %s)\n", version, commit, buildDate)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *port >= 0 {
		cfg.Server.Port = *port
	}
	if *headful {
		cfg.Engine.Headless = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.SetMinLevel(logging.ParseLevel(cfg.Logging.Level))

	eng, err := playwright.NewEngine(playwright.Config{
		Headless:          cfg.Engine.Headless,
		IgnoreHTTPSErrors: cfg.Engine.IgnoreHTTPSErrors,
		TimeoutMillis:     cfg.Engine.TimeoutMillis,
	})
	if err != nil {
		return err
	}
	defer eng.Close()

	registry := session.NewRegistry(eng, logger)
	defer registry.CloseAll()

	server := ipc.NewGRPCServer(registry, logger)

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr(), err)
	}
	// Clients started with port 0 scrape the bound address from stdout.
	fmt.Printf("browserd listening on %s\n", lis.Addr())
	logger.Info(logging.CategoryRPC, "listening", lis.Addr().String(), nil)

	if addr := cfg.MetricsAddr(); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error(logging.CategoryRPC, "metrics_listener_failed", err.Error(), nil)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info(logging.CategoryRPC, "shutdown", sig.String(), nil)
		server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
