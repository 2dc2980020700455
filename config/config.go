// Package config loads the optional TOML configuration of a shell session.
package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/skufirovan/command-line-emulator/archive"
	"github.com/skufirovan/command-line-emulator/shell"
)

const DefaultGatewayEndpoint = "127.0.0.1:6789"

// Config represents the session configuration. Command line arguments take precedence.
type Config struct {
	ComputerName string        `toml:"computer_name"`
	Archive      string        `toml:"archive"`
	Log          string        `toml:"log"`
	Script       string        `toml:"script"`
	PollInterval string        `toml:"poll_interval"`
	Cache        CacheConfig   `toml:"cache"`
	Gateway      GatewayConfig `toml:"gateway"`
}

// CacheConfig configures the file content cache used by rev.
type CacheConfig struct {
	Size   int    `toml:"size"`
	Expiry string `toml:"expiry"`
}

// GatewayConfig configures the HTTP front-end.
type GatewayConfig struct {
	Endpoint string   `toml:"endpoint"`
	Origins  []string `toml:"origins"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		PollInterval: shell.DefaultPollInterval.String(),
		Cache: CacheConfig{
			Size:   archive.DefaultCacheSize,
			Expiry: archive.DefaultCacheExpiry.String(),
		},
		Gateway: GatewayConfig{
			Endpoint: DefaultGatewayEndpoint,
		},
	}
}

// Load reads the configuration file at path on top of the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	meta, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse config file %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, errors.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return conf, nil
}

// Validate checks that the session inputs are present and the durations parse.
func (conf *Config) Validate() error {
	if conf.ComputerName == "" {
		return errors.New("computer name is required")
	}

	if conf.Archive == "" {
		return errors.New("archive path is required")
	}

	if conf.Log == "" {
		return errors.New("log path is required")
	}

	if _, err := conf.PollDuration(); err != nil {
		return err
	}

	if _, err := conf.CacheOptions(); err != nil {
		return err
	}

	return nil
}

// PollDuration returns the parsed queue poll interval.
func (conf *Config) PollDuration() (time.Duration, error) {
	d, err := time.ParseDuration(conf.PollInterval)
	if err != nil {
		return 0, errors.WithMessagef(err, "invalid poll interval %q", conf.PollInterval)
	}

	if d <= 0 {
		return 0, errors.Errorf("poll interval must be positive, got %v", d)
	}

	return d, nil
}

// CacheOptions returns the file content cache configuration.
func (conf *Config) CacheOptions() (archive.CacheConfig, error) {
	expiry, err := time.ParseDuration(conf.Cache.Expiry)
	if err != nil {
		return archive.CacheConfig{}, errors.WithMessagef(err, "invalid cache expiry %q", conf.Cache.Expiry)
	}

	return archive.CacheConfig{Size: conf.Cache.Size, Expiry: expiry}, nil
}
