package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// =============================================================================
// Config File
// =============================================================================

// Config holds settings loaded from the drawnet config file. Zero values
// mean "use the built-in default"; command-line flags override everything.
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds default rendering settings for the render and
// gallery commands.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Width   float64  `toml:"width"`
	Open    bool     `toml:"open"`
}

// ServerConfig holds settings for the preview server.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	Cache         string `toml:"cache"`
	CacheTTL      string `toml:"cache_ttl"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Namespace     string `toml:"namespace"`
}

// configTemplate is the commented default file written by "config init".
const configTemplate = `# drawnet configuration

[render]
# Formats rendered when --format is not given.
formats = ["svg"]
# Device width in pixels for svg and png output (0 uses the renderer default).
width = 0.0
# Open the first rendered artifact in the system viewer.
open = false

[server]
# Listen address for drawnet serve.
addr = ":8080"
# Cache backend: "file", "redis", or "off".
cache = "file"
# How long cached artifacts stay valid (Go duration, e.g. "1h", "30m").
cache_ttl = "1h"
# Redis connection, used when cache = "redis".
redis_addr = "localhost:6379"
redis_password = ""
redis_db = 0
# Optional key namespace, useful when several instances share one Redis.
namespace = ""
`

// resolveConfigPath returns the --config flag value, or the default
// location under the XDG config directory.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads and parses the config file. A missing file at the
// default location is not an error; an explicitly given --config that
// does not exist is.
func (c *CLI) loadConfig() (Config, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && c.configPath == "" {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// =============================================================================
// Config Command
// =============================================================================

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the drawnet config file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				printWarning("Config already exists at %s", path)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
				return err
			}

			printSuccess("Wrote %s", path)
			printNextStep("Edit defaults", "$EDITOR "+path)
			return nil
		},
	}
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
