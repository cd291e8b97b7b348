package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rkirkendall/armeasure/internal/bridge"
	"github.com/rkirkendall/armeasure/internal/config"
	"github.com/rkirkendall/armeasure/pkg/replay"
)

var (
	serveConfigPath string
	serveListen     string
	serveRecord     string
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the websocket device bridge",
	Long: `Run the bridge that device shells connect to: each websocket carries
one measuring session, fed by the shell's per-frame hit-test results
and answered with the box pose to render.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "YAML config file")
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8421", "listen address")
	serveCmd.Flags().StringVar(&serveRecord, "record", "", "append every inbound frame to this JSONL file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override the config file when given explicitly.
	if cmd.Flags().Changed("listen") {
		cfg.Listen = serveListen
	}
	if cmd.Flags().Changed("record") {
		cfg.Record = serveRecord
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = serveLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var recorder *replay.Recorder
	if cfg.Record != "" {
		f, err := os.Create(cfg.Record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating record file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		recorder = replay.NewRecorder(f)
		defer recorder.Flush()
		logger.Info("recording frames", zap.String("file", cfg.Record))
	}

	server := bridge.NewServer(logger, recorder)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Listen)
	}()

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Fatal("bridge failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
