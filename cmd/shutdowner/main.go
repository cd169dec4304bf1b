package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/smitstech/Shutdowner/internal/appinfo"
	"github.com/smitstech/Shutdowner/internal/config"
	"github.com/smitstech/Shutdowner/internal/console"
	"github.com/smitstech/Shutdowner/internal/countdown"
	"github.com/smitstech/Shutdowner/internal/i18n"
	"github.com/smitstech/Shutdowner/internal/logger"
	"github.com/smitstech/Shutdowner/internal/notifier"
	"github.com/smitstech/Shutdowner/internal/power"
	"github.com/smitstech/Shutdowner/internal/updater"
	"github.com/smitstech/Shutdowner/internal/version"
)

const updateTimeout = 2 * time.Minute

// options holds command-line flags
type options struct {
	hours       string
	minutes     string
	seconds     string
	action      string
	lang        string
	configPath  string
	dryRun      bool
	debug       bool
	eventLog    bool
	showVersion bool
	checkUpdate bool
	update      bool
}

// parseFlags parses command-line flags and returns options
func parseFlags() *options {
	opts := &options{}
	flag.StringVarP(&opts.hours, "hours", "H", "", "Hours until the action fires")
	flag.StringVarP(&opts.minutes, "minutes", "M", "", "Minutes until the action fires")
	flag.StringVarP(&opts.seconds, "seconds", "S", "", "Seconds until the action fires")
	flag.StringVarP(&opts.action, "action", "a", "", "Action to run: poweroff, hibernate or restart")
	flag.StringVarP(&opts.lang, "lang", "l", "", "Interface language: en, uk or ru")
	flag.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (default: "+config.FileName+" in executable directory)")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Log the system command instead of running it")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.eventLog, "eventlog", false, "Log to the Windows Event Log instead of stderr")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version information and exit")
	flag.BoolVar(&opts.checkUpdate, "check-update", false, "Check GitHub for a newer release and exit")
	flag.BoolVar(&opts.update, "update", false, "Install the latest release and exit")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	level := logger.LevelInfo
	if opts.debug {
		level = logger.LevelDebug
	}

	switch {
	case opts.showVersion:
		fmt.Println(version.Info())
	case opts.checkUpdate:
		os.Exit(runCheckUpdate(logger.NewConsoleLogger(level)))
	case opts.update:
		os.Exit(runUpdate(logger.NewConsoleLogger(level)))
	default:
		if err := run(opts); err != nil {
			os.Exit(1)
		}
	}
}

// runCheckUpdate reports whether a newer release exists
func runCheckUpdate(appLogger logger.Logger) int {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	info, err := updater.CheckForUpdate(ctx)
	if err != nil {
		appLogger.Errorf(logger.EventUpdateError, "Failed to check for update: %v", err)
		return 1
	}
	if !info.UpdateAvailable {
		appLogger.Infof(logger.EventUpdateInfo, "%s %s is up to date", appinfo.Name, info.CurrentVersion)
		return 0
	}
	appLogger.Infof(logger.EventUpdateInfo, "Update available: %s -> %s (%s)",
		info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
	return 0
}

// runUpdate replaces the executable with the latest release
func runUpdate(appLogger logger.Logger) int {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	installed, err := updater.Apply(ctx)
	if errors.Is(err, updater.ErrNoUpdate) {
		appLogger.Infof(logger.EventUpdateInfo, "%s %s is up to date", appinfo.Name, version.Short())
		return 0
	}
	if err != nil {
		appLogger.Errorf(logger.EventUpdateError, "Failed to update: %v", err)
		return 1
	}
	appLogger.Infof(logger.EventUpdateInfo, "Updated to %s", installed)
	return 0
}

// run starts the interactive countdown. Every error it returns has
// already been logged.
func run(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.NewConsoleLogger(logger.LevelError).Errorf(logger.EventConfigError, "Failed to load configuration: %v", err)
		return err
	}

	logLevel := logger.ParseLogLevel(cfg.LogLevel)
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	appLogger, err := newLogger(opts.eventLog, logLevel)
	if err != nil {
		logger.NewConsoleLogger(logger.LevelError).Errorf(logger.EventConfigError, "Failed to open log: %v", err)
		return err
	}
	defer appLogger.Close()

	appLogger.Infof(logger.EventAppStart, "%s %s starting", appinfo.Name, version.Short())
	appLogger.Debugf(logger.EventConfigLoaded, "Config: action=%s language=%q logLevel=%s dryRun=%t notifications=%t",
		cfg.DefaultAction, cfg.Language, logLevel, cfg.DryRun, cfg.Notifications)

	action := cfg.Action()
	if opts.action != "" {
		action, err = countdown.ParseAction(opts.action)
		if err != nil {
			appLogger.Errorf(logger.EventConfigError, "Invalid --action: %v", err)
			return err
		}
	}

	langTag := opts.lang
	if langTag == "" {
		langTag = cfg.LanguageTag()
	}
	catalog := i18n.New(i18n.Match(langTag))

	var executor countdown.Executor = power.NewShellExecutor(appLogger)
	if opts.dryRun || cfg.DryRun {
		executor = power.NewDryRunExecutor(appLogger)
	}

	iconPath := ""
	if exePath, err := os.Executable(); err == nil {
		iconPath = notifier.LocateIcon(filepath.Dir(exePath))
	}
	if iconPath == "" {
		appLogger.Debug(logger.EventConfigLoaded, "No "+appinfo.IconFileName+" next to the executable, toasts have no icon")
	}

	presenter := console.NewPresenter(os.Stdout, catalog,
		notifier.New(cfg.Notifications, appinfo.AppID, iconPath), appLogger, appinfo.Name)

	app := console.NewApp(console.Options{
		In:        os.Stdin,
		Presenter: presenter,
		Executor:  executor,
		Clock:     countdown.SystemClock,
		Logger:    appLogger,
		Action:    action,
	})

	if opts.hours != "" || opts.minutes != "" || opts.seconds != "" {
		if err := app.SetTime(opts.hours, opts.minutes, opts.seconds); err != nil {
			appLogger.Errorf(logger.EventInputError, "Invalid time flags: %v", err)
			return err
		}
		app.Toggle()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		appLogger.Errorf(logger.EventAppStop, "Stopped with error: %v", err)
		return err
	}
	appLogger.Info(logger.EventAppStop, appinfo.Name+" stopped")
	return nil
}
