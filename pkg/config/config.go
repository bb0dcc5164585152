// Package config loads allocfs settings from a YAML file and the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/filetug/allocfs/pkg/browse"
	"github.com/filetug/allocfs/pkg/fsutils"
)

const (
	DefaultPath    = "~/.allocfs/config.yaml"
	DefaultAddress = "http://127.0.0.1:4646"
	DefaultTimeout = 30 * time.Second
)

const (
	EnvAddress   = "NOMAD_ADDR"
	EnvToken     = "NOMAD_TOKEN"
	EnvNamespace = "NOMAD_NAMESPACE"
)

type Config struct {
	Address      string        `yaml:"address"`
	Token        string        `yaml:"token"`
	Namespace    string        `yaml:"namespace"`
	Timeout      time.Duration `yaml:"timeout"`
	PreviewLimit int           `yaml:"preview_limit"`
	DownloadDir  string        `yaml:"download_dir"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Address:      DefaultAddress,
		Timeout:      DefaultTimeout,
		PreviewLimit: browse.DefaultContentLimit,
		DownloadDir:  ".",
		LogLevel:     "info",
	}
}

var lookupEnv = os.LookupEnv

// Load reads the file at filePath over the defaults and then applies the
// environment. A missing file is not an error unless required.
func Load(filePath string, required bool) (Config, error) {
	cfg := Default()
	if filePath != "" {
		if err := fsutils.ReadYAMLFile(fsutils.ExpandHome(filePath), required, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", filePath, err)
		}
	}
	if v, ok := lookupEnv(EnvAddress); ok && v != "" {
		cfg.Address = v
	}
	if v, ok := lookupEnv(EnvToken); ok && v != "" {
		cfg.Token = v
	}
	if v, ok := lookupEnv(EnvNamespace); ok && v != "" {
		cfg.Namespace = v
	}
	return cfg, nil
}

// AddressURL parses and validates the API address.
func (c Config) AddressURL() (*url.URL, error) {
	u, err := url.Parse(c.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", c.Address, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid address %q: scheme must be http or https", c.Address)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid address %q: missing host", c.Address)
	}
	return u, nil
}
