package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/config"
	"github.com/harrison/clickprint/internal/display"
	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/logger"
	"github.com/harrison/clickprint/internal/models"
)

// runtime is the per-invocation state shared by every subcommand.
type runtime struct {
	cfg     *config.Config
	log     *logger.ConsoleLogger
	lenient bool
	out     io.Writer
	errOut  io.Writer
}

// newRuntime loads config, applies global flags and sets up logging and colour.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.MergeWithFlags(&level, nil, nil, nil)
	}
	if cmd.Flags().Lookup("llm") != nil && cmd.Flags().Changed("llm") {
		enabled, _ := cmd.Flags().GetBool("llm")
		cfg.MergeWithFlags(nil, &enabled, nil, nil)
	}
	if cmd.Flags().Lookup("model") != nil && cmd.Flags().Changed("model") {
		model, _ := cmd.Flags().GetString("model")
		cfg.MergeWithFlags(nil, nil, &model, nil)
	}
	if cmd.Flags().Lookup("address") != nil && cmd.Flags().Changed("address") {
		address, _ := cmd.Flags().GetString("address")
		cfg.MergeWithFlags(nil, nil, nil, &address)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !isTerminal(cmd.OutOrStdout()) {
		color.NoColor = true
	}

	lenient, _ := cmd.Flags().GetBool("lenient")
	return &runtime{
		cfg:     cfg,
		log:     logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
		lenient: lenient,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}, nil
}

// loadConfig reads --config, else $CLICKPRINT_HOME/config.yaml, else
// ./.clickprint/config.yaml. A missing file yields defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	switch {
	case configPath != "":
		cfg, err = config.LoadConfig(configPath)
	case os.Getenv("CLICKPRINT_HOME") != "":
		configPath, err = config.GetConfigPath()
		if err == nil {
			cfg, err = config.LoadConfig(configPath)
		}
	default:
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadSession reads a session file and validates it unless --lenient.
func (rt *runtime) loadSession(path string) (*models.Session, error) {
	s, err := models.LoadSession(path)
	if err != nil {
		return nil, err
	}
	if rt.lenient {
		display.WarnSkippedValidation([]string{path}).Display(rt.errOut)
		return s, nil
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("session %s: %w", path, err)
	}
	rt.log.LogDebug(fmt.Sprintf("Loaded %s: %d trajectory samples, %d clicks", path, len(s.Trajectory), len(s.Clicks)))
	return s, nil
}

// loadReference returns the reference feature vector, either from a stored
// profile or by extracting it from an enrollment session.
func (rt *runtime) loadReference(path string, profile bool) (models.BiometricFeatures, error) {
	if profile {
		f, err := models.LoadFeatures(path)
		if err != nil {
			return models.BiometricFeatures{}, err
		}
		return *f, nil
	}
	s, err := rt.loadSession(path)
	if err != nil {
		return models.BiometricFeatures{}, err
	}
	return features.Extract(s), nil
}
