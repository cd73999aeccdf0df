// Package config loads peer configuration from TOML files.
package config

import (
	"net"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// PeerConfig describes how a game instance participates in a session.
type PeerConfig struct {
	// Mode is one of "local", "client" or "server".
	Mode string `toml:"mode"`
	// Listen is the port a server waits on.
	Listen int `toml:"listen"`
	// Connect is the "host:port" address a client connects to.
	Connect string `toml:"connect"`
	// Debug enables debug-level logging.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file is present:
// a local game on the standard port.
func Default() PeerConfig {
	return PeerConfig{
		Mode:    "local",
		Listen:  3000,
		Connect: "0.0.0.0:3000",
	}
}

// Load reads a TOML peer configuration, filling unset fields with
// defaults and validating the result.
func Load(path string) (PeerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PeerConfig{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return PeerConfig{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return PeerConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c PeerConfig) Validate() error {
	switch c.Mode {
	case "local", "client", "server":
	default:
		return errors.Errorf("invalid mode %q, want local, client or server", c.Mode)
	}

	if c.Mode == "server" {
		if c.Listen < 0 || c.Listen > 65535 {
			return errors.Errorf("invalid listen port %d", c.Listen)
		}
	}

	if c.Mode == "client" {
		if _, _, err := net.SplitHostPort(c.Connect); err != nil {
			return errors.Wrapf(err, "invalid connect address %q", c.Connect)
		}
	}

	return nil
}
