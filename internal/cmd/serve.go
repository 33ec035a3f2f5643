package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/config"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/logger"
	"github.com/harrison/clickprint/internal/server"
)

// NewServeCommand creates and returns the serve subcommand
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the feature pipeline as a JSON HTTP API",
		Long: `Start an HTTP server exposing:
  GET  /healthz
  POST /v1/features   session -> features
  POST /v1/compare    {reference, attempt} -> deltas
  POST /v1/classify   session -> verdict
  POST /v1/explain    {reference?, attempt} -> narrative

Append ?lenient=true to skip session validation. Logs are also written to
$CLICKPRINT_HOME/logs unless --no-log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			noLogFile, _ := cmd.Flags().GetBool("no-log-file")
			return runServe(cmd.Context(), rt, !noLogFile)
		},
	}

	cmd.Flags().String("address", "", "Listen address (overrides config, default :8080)")
	cmd.Flags().Bool("llm", false, "Use the Ollama explainer (overrides config)")
	cmd.Flags().String("model", "", "Ollama model name (overrides config)")
	cmd.Flags().Bool("no-log-file", false, "Do not write a log file")

	return cmd
}

func runServe(ctx context.Context, rt *runtime, logToFile bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var log logger.Logger = rt.log
	if logToFile {
		logDir, err := config.GetLogDir()
		if err != nil {
			return err
		}
		fileLog, err := logger.NewFileLogger(logDir, "serve", rt.cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		log = logger.Multi{rt.log, fileLog}
		rt.log.LogInfo(fmt.Sprintf("Logging to %s", fileLog.Path()))
	}

	if rt.log.Level() != "debug" && rt.log.Level() != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	explainer := explain.Select(ctx, rt.cfg.Explainer, log)
	srv := server.New(rt.cfg.Server.Address, explainer, log)
	return srv.ListenAndServe(ctx)
}
