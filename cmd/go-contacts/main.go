package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/tartampluch/go-contacts/internal/commands"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/locale"
	"github.com/tartampluch/go-contacts/internal/ui"
	"github.com/urfave/cli/v3"
)

// main delegates to runMain so deferred calls (closing the log file) run
// before os.Exit.
func main() {
	os.Exit(runMain(os.Args, os.Stdin, os.Stdout))
}

// runMain returns config.ExitCodeSuccess on a normal end of session and
// config.ExitCodeError when startup fails.
func runMain(args []string, in io.Reader, out io.Writer) int {
	// Cancel on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Restore default handling after the first signal so a second one
	// terminates the process.
	go func() {
		<-ctx.Done()
		cancel()
	}()

	if err := newRootCommand(in, out).Run(ctx, args); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

func newRootCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    config.AppName,
		Usage:   config.AppUsage,
		Version: fmt.Sprintf(config.FormatVersion, config.Version, config.Commit, config.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    config.FlagConfig,
				Aliases: []string{config.FlagConfigAlias},
				Usage:   config.FlagDescConfig,
			},
			&cli.BoolFlag{
				Name:  config.FlagDebug,
				Usage: config.FlagDescDebug,
			},
			&cli.IntFlag{
				Name:    config.FlagWindow,
				Aliases: []string{config.FlagWindowAlias},
				Usage:   config.FlagDescWindow,
				Value:   config.DefaultWindowDays,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, in, out)
		},
	}
}

// run loads settings, configures logging and drives the session until the
// user leaves.
func run(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	level, err := config.ParseLogLevel(settings.Log.Level)
	if err != nil {
		return err
	}

	logCloser := setupLogging(level, cmd.Bool(config.FlagDebug))
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	logStartupInfo()
	slog.Info(config.MsgSettingsLoaded,
		config.LogKeyComponent, config.CompConfig,
		config.LogKeyPath, cmd.String(config.FlagConfig),
		config.LogKeyWindow, settings.Birthdays.WindowDays,
		config.LogKeyFormat, settings.Birthdays.DateFormat,
		config.LogKeyLang, settings.Locale.Language,
	)
	for _, key := range settings.Unknown {
		slog.Warn(config.MsgSettingsUnknown,
			config.LogKeyComponent, config.CompConfig,
			config.LogKeyKey, key,
			config.LogKeyPath, cmd.String(config.FlagConfig),
		)
	}

	opts, err := commands.OptionsFromSettings(settings)
	if err != nil {
		return err
	}

	catalog, err := locale.New(settings.Locale.Language)
	if err != nil {
		return err
	}

	assistant := commands.New(engine.NewAddressBook(), catalog, engine.RealClock{}, opts)
	return ui.NewSession(in, out, assistant, catalog).Run(ctx)
}

// loadSettings starts from the embedded defaults, applies the optional file
// and then the --window flag.
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings := config.DefaultSettings()

	if path := cmd.String(config.FlagConfig); path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if cmd.IsSet(config.FlagWindow) {
		settings.Birthdays.WindowDays = int(cmd.Int(config.FlagWindow))
		slog.Debug(config.MsgWindowOverride,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyWindow, settings.Birthdays.WindowDays,
		)
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Stdout belongs to the
// session, so logs go to a JSON file in the user cache dir, or to stderr
// through charmbracelet/log in debug mode.
func setupLogging(level slog.Level, debugMode bool) io.Closer {
	if debugMode {
		handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.DebugLevel,
			Prefix:          config.AppName,
		})
		slog.SetDefault(slog.New(handler))
		return nil
	}

	logPath, err := getLogFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, "", err)
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		return nil
	}

	// O_TRUNC resets logs on restart to prevent indefinite growth.
	f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		return nil
	}

	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return f
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
