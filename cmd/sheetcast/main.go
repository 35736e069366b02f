// Package main provides the CLI entry point for sheetcast.
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
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sheetcast/sheetcast/internal/config"
	"github.com/sheetcast/sheetcast/internal/logging"
	"github.com/sheetcast/sheetcast/internal/web"
	"github.com/sheetcast/sheetcast/pkg/sheetcast"
	"github.com/spf13/cobra"
)

var (
	formatName string
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetcast [input file]",
		Short: "Convert spreadsheet data to structured text formats",
		Long: `sheetcast converts multi-sheet workbooks or delimited text files
into json, yaml, xml, or sql output.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	rootCmd.Flags().StringVarP(&formatName, "format", "f", "json", "Output format: json, yaml, xml, sql")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := sheetcast.Convert(data, filepath.Base(inputPath), formatName)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Payload), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Print(result.Payload)
	return nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP conversion server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Load .env if present; the environment wins otherwise.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	server := web.NewServer(cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
