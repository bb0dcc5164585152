package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/filetug/allocfs/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRun(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	oldRun := run
	t.Cleanup(func() {
		run = oldRun
		logrus.SetOutput(os.Stderr)
	})
	run = func(app application) error {
		calls++
		return err
	}
	return &calls
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMainRoot(t *testing.T) {
	calls := stubRun(t, nil)
	server := newAPIServer(t)
	oldArgs := os.Args
	defer func() {
		os.Args = oldArgs
	}()
	os.Args = []string{"allocfs", "--config", "", "--address", server.URL, "a1b2"}

	main()

	assert.Equal(t, 1, *calls)
}

func TestMainRoot_exitsOnError(t *testing.T) {
	stubRun(t, nil)
	oldArgs, oldExit := os.Args, osExit
	defer func() {
		os.Args, osExit = oldArgs, oldExit
	}()
	var code int
	osExit = func(c int) {
		code = c
	}
	os.Args = []string{"allocfs", "--config", ""}

	main()

	assert.Equal(t, 1, code)
}

func TestRootCommand(t *testing.T) {
	t.Run("requires_allocation", func(t *testing.T) {
		calls := stubRun(t, nil)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--config", ""})
		cmd.SetOut(&discard{})
		cmd.SetErr(&discard{})
		err := cmd.Execute()
		assert.ErrorIs(t, err, allocfs.ErrNoAllocation)
		assert.Equal(t, 0, *calls)
	})

	t.Run("too_many_args", func(t *testing.T) {
		stubRun(t, nil)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"a", "b"})
		cmd.SetOut(&discard{})
		cmd.SetErr(&discard{})
		assert.Error(t, cmd.Execute())
	})

	t.Run("run_error", func(t *testing.T) {
		expectedErr := errors.New("terminal not available")
		stubRun(t, expectedErr)
		server := newAPIServer(t)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--config", "", "--address", server.URL, "--task", "web", "a1b2"})
		cmd.SetOut(&discard{})
		cmd.SetErr(&discard{})
		assert.ErrorIs(t, cmd.Execute(), expectedErr)
	})

	t.Run("invalid_address", func(t *testing.T) {
		stubRun(t, nil)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--config", "", "--address", "ftp://x", "a1b2"})
		cmd.SetOut(&discard{})
		cmd.SetErr(&discard{})
		assert.ErrorContains(t, cmd.Execute(), "scheme must be http or https")
	})

	t.Run("missing_explicit_config", func(t *testing.T) {
		stubRun(t, nil)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "a1b2"})
		cmd.SetOut(&discard{})
		cmd.SetErr(&discard{})
		assert.ErrorContains(t, cmd.Execute(), "failed to read config")
	})
}

func TestLoadConfig(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("address: http://file:4646\nnamespace: dev\n"), 0o644))

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filePath, "-n", "prod", "--log-level", "debug"}))
	configPath, _ := cmd.Flags().GetString("config")
	namespace, _ := cmd.Flags().GetString("namespace")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg, err := loadConfig(cmd, cliFlags{configPath: configPath, namespace: namespace, logLevel: logLevel})
	require.NoError(t, err)
	if _, ok := os.LookupEnv(config.EnvAddress); !ok {
		assert.Equal(t, "http://file:4646", cfg.Address)
	}
	assert.Equal(t, "prod", cfg.Namespace)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	t.Run("invalid_level", func(t *testing.T) {
		_, _, err := setupLogging(config.Config{LogLevel: "loud"})
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("discard", func(t *testing.T) {
		logger, closeLog, err := setupLogging(config.Config{LogLevel: "warn"})
		require.NoError(t, err)
		defer closeLog()
		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	})

	t.Run("file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "allocfs.log")
		logger, closeLog, err := setupLogging(config.Config{LogLevel: "info", LogFile: logFile})
		require.NoError(t, err)
		logger.WithField("alloc", "a1").Info("hello")
		closeLog()
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
		assert.Contains(t, string(data), "alloc=a1")
	})

	t.Run("unwritable_file", func(t *testing.T) {
		_, _, err := setupLogging(config.Config{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "missing", "x.log")})
		assert.ErrorContains(t, err, "failed to open log file")
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}
