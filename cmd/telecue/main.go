// Package main provides the CLI entrypoint for telecue.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/telecue/internal/config"
	"github.com/verte-zerg/telecue/internal/device"
	"github.com/verte-zerg/telecue/internal/logging"
	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/scripts"
	"github.com/verte-zerg/telecue/internal/studio"
	"github.com/verte-zerg/telecue/internal/teleprompter"
	"github.com/verte-zerg/telecue/internal/ticker"
	"github.com/verte-zerg/telecue/internal/tui"
)

const (
	defaultScript       = "1"
	defaultStepsPerLine = 36
	defaultLogLevel     = "info"
	acquireTimeout      = 5 * time.Second
)

var (
	runSpeed        int
	runScript       string
	runCatalog      string
	runStepsPerLine int
	runVideo        bool
	runAudio        bool
	runLogLevel     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "telecue",
		Short:         "Self-recording studio with a teleprompter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runStudioCmd,
	}
	addSettingsFlags(rootCmd)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScriptsCmd())
	rootCmd.AddCommand(newDevicesCmd())

	return rootCmd
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&runSpeed, "speed", teleprompter.DefaultSpeed, "scroll speed percent (10-100)")
	cmd.Flags().StringVar(&runScript, "script", defaultScript, "initially selected script id")
	cmd.Flags().StringVar(&runCatalog, "catalog", "", "YAML file with extra scripts")
	cmd.Flags().IntVar(&runStepsPerLine, "steps-per-line", defaultStepsPerLine, "scroll steps per rendered line")
	cmd.Flags().BoolVar(&runVideo, "video", true, "enable camera preview at start")
	cmd.Flags().BoolVar(&runAudio, "audio", true, "enable microphone at start")
	cmd.Flags().StringVar(&runLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
}

func loadSettings(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "speed", &runSpeed, fileCfg.Teleprompter.Speed)
	applyStringConfig(cmd, "script", &runScript, fileCfg.Teleprompter.Script)
	applyStringConfig(cmd, "catalog", &runCatalog, fileCfg.Teleprompter.Catalog)
	applyIntConfig(cmd, "steps-per-line", &runStepsPerLine, fileCfg.Teleprompter.StepsPerLine)
	applyBoolConfig(cmd, "video", &runVideo, fileCfg.Devices.Video)
	applyBoolConfig(cmd, "audio", &runAudio, fileCfg.Devices.Audio)
	applyStringConfig(cmd, "log-level", &runLogLevel, fileCfg.Log.Level)

	cfg := model.Config{
		Speed:        runSpeed,
		ScriptID:     model.ScriptID(strings.TrimSpace(runScript)),
		CatalogPath:  strings.TrimSpace(runCatalog),
		StepsPerLine: runStepsPerLine,
		Video:        runVideo,
		Audio:        runAudio,
		LogLevel:     runLogLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runStudioCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("telecue needs an interactive terminal")
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Path(config.DefaultLogDir()), logging.Level(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	st, err := studio.Open(ctx, studio.Options{
		Clock:    ticker.System,
		Acquirer: device.NewProbeAcquirer(),
		Scripts:  catalog,
		ScriptID: cfg.ScriptID,
		Speed:    cfg.Speed,
		Flags:    model.DeviceFlags{Video: cfg.Video, Audio: cfg.Audio},
		Logger:   logger,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("failed to open studio: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close studio: %v\n", cerr)
		}
	}()
	if _, ferr := st.Feed(); ferr != nil {
		logger.Warn("starting without capture device", zap.Error(ferr))
	}

	m := tui.NewModel(st, tui.Options{StepsPerLine: cfg.StepsPerLine, Logger: logger.Named("tui")})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadCatalog returns the built-ins followed by scripts from the configured
// catalog, or from the default catalog path when that file exists.
func loadCatalog(cfg model.Config) ([]model.Script, error) {
	path := cfg.CatalogPath
	if path == "" {
		if _, err := os.Stat(config.DefaultCatalogPath()); err == nil {
			path = config.DefaultCatalogPath()
		}
	}
	out := scripts.Builtins()
	extra, err := scripts.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load script catalog: %w", err)
	}
	return append(out, extra...), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newScriptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "List available scripts",
		Args:  cobra.NoArgs,
		RunE:  runScriptsCmd,
	}
	cmd.Flags().StringVar(&runCatalog, "catalog", "", "YAML file with extra scripts")
	return cmd
}

func runScriptsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "catalog", &runCatalog, fileCfg.Teleprompter.Catalog)
	catalog, err := loadCatalog(model.Config{CatalogPath: strings.TrimSpace(runCatalog)})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, sc := range catalog {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", sc.ID, sc.Title, sc.EstimatedTime); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Probe the camera and microphone",
		Args:  cobra.NoArgs,
		RunE:  runDevicesCmd,
	}
}

func runDevicesCmd(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), acquireTimeout)
	defer cancel()
	feed, err := device.NewProbeAcquirer().Acquire(ctx, true, true)
	if err != nil {
		logErrf("%v\n", err)
		return fmt.Errorf("no capture device available")
	}
	defer func() { _ = feed.Close() }()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), feed.Describe()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# telecue configuration
# Uncomment a value to enable it. CLI flags override config values.

[teleprompter]
# speed = %d              # Scroll speed percent (10-100)
# script = %q            # Initially selected script id
# catalog = ""            # YAML file with extra scripts (default %s if present)
# steps-per-line = %d     # Scroll steps per rendered line

[devices]
# video = true            # Camera preview on at start
# audio = true            # Microphone on at start

[log]
# level = %q          # debug, info, warn, error (file: %s)
`,
		teleprompter.DefaultSpeed,
		defaultScript,
		config.DefaultCatalogPath(),
		defaultStepsPerLine,
		defaultLogLevel,
		filepath.Join(config.DefaultLogDir(), "telecue.log"),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Speed < teleprompter.MinSpeed || cfg.Speed > teleprompter.MaxSpeed {
		return fmt.Errorf("--speed must be between %d and %d", teleprompter.MinSpeed, teleprompter.MaxSpeed)
	}
	if cfg.StepsPerLine <= 0 {
		return fmt.Errorf("--steps-per-line must be > 0")
	}
	if cfg.ScriptID == "" {
		return fmt.Errorf("--script must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
