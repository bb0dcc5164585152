package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/filetug/allocfs/pkg/allocfs/nomadapi"
	"github.com/filetug/allocfs/pkg/browse"
	"github.com/filetug/allocfs/pkg/config"
	"github.com/filetug/allocfs/pkg/ui"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

func main() {
	if err := newRootCommand().Execute(); err != nil {
		osExit(1)
	}
}

type cliFlags struct {
	configPath  string
	task        string
	address     string
	token       string
	namespace   string
	logFile     string
	logLevel    string
	downloadDir string
}

func newRootCommand() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:          "allocfs <alloc-id>",
		Short:        "Browse the sandboxed filesystem of an allocation",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			var allocID string
			if len(args) > 0 {
				allocID = args[0]
			}
			return browseAllocation(cfg, allocID, flags.task)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", config.DefaultPath, "path to the YAML config file")
	f.StringVarP(&flags.task, "task", "t", "", "scope browsing to the directory of this task")
	f.StringVar(&flags.address, "address", "", "HTTP API address (overrides "+config.EnvAddress+")")
	f.StringVar(&flags.token, "token", "", "ACL token (overrides "+config.EnvToken+")")
	f.StringVarP(&flags.namespace, "namespace", "n", "", "namespace of the allocation")
	f.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&flags.downloadDir, "download-dir", "", "directory where previewed files are saved")
	return cmd
}

func loadConfig(cmd *cobra.Command, flags cliFlags) (config.Config, error) {
	changed := cmd.Flags().Changed
	cfg, err := config.Load(flags.configPath, changed("config"))
	if err != nil {
		return cfg, err
	}
	overrides := []struct {
		flag  string
		value string
		field *string
	}{
		{"address", flags.address, &cfg.Address},
		{"token", flags.token, &cfg.Token},
		{"namespace", flags.namespace, &cfg.Namespace},
		{"log-file", flags.logFile, &cfg.LogFile},
		{"log-level", flags.logLevel, &cfg.LogLevel},
		{"download-dir", flags.downloadDir, &cfg.DownloadDir},
	}
	for _, o := range overrides {
		if changed(o.flag) {
			*o.field = o.value
		}
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) (logger *logrus.Logger, closeLog func(), err error) {
	logger = logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.LogFile == "" {
		// The terminal belongs to the UI.
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, func() {
		logger.SetOutput(io.Discard)
		_ = file.Close()
	}, nil
}

func browseAllocation(cfg config.Config, allocID, task string) error {
	if allocID == "" {
		return allocfs.ErrNoAllocation
	}
	addr, err := cfg.AddressURL()
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := nomadapi.NewClient(*addr,
		nomadapi.WithHttpClient(&http.Client{Timeout: cfg.Timeout}),
		nomadapi.WithToken(cfg.Token),
		nomadapi.WithNamespace(cfg.Namespace),
	)

	app := newApp()
	browser := ui.NewBrowser(
		ui.WithDownloadDir(cfg.DownloadDir),
		ui.WithFocusSetter(func(p tview.Primitive) {
			app.SetFocus(p)
		}),
	)
	ctrl := browse.NewController(client,
		func(f func()) {
			app.QueueUpdateDraw(f)
		},
		browse.WithLogger(logger.WithField("component", "browser")),
		browse.WithOnChange(browser.Render),
		browse.WithFetchTimeout(cfg.Timeout),
		browse.WithPreviewLimit(cfg.PreviewLimit),
	)
	browser.SetController(ctrl)
	app.SetRoot(browser, true)
	app.EnableMouse(true)

	logger.WithFields(logrus.Fields{"alloc": allocID, "task": task, "address": addr.Redacted()}).Info("browsing allocation")
	ctrl.SessionReset(allocID, task)
	defer ctrl.Close()
	return run(app)
}

var newApp = tview.NewApplication

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}
