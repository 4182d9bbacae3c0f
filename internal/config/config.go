// Package config provides configuration loading and defaults for the
// ryzenadj-mcp server.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds network and authentication settings for the MCP
// endpoint.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// RyzenadjConfig describes how the external tuning binary is invoked.
// Binary is the bare name resolved through PATH for interactive runs;
// BinaryPath is the absolute path baked into boot/resume integrations,
// which run without the interactive environment's search path. UsePkexec
// routes commands through pkexec when the server itself is not root.
type RyzenadjConfig struct {
	Binary     string `yaml:"binary"`
	BinaryPath string `yaml:"binary_path"`
	UsePkexec  bool   `yaml:"use_pkexec"`
}

// ProfilesConfig holds the location of the profile document. An empty path
// selects the per-user default.
type ProfilesConfig struct {
	Path string `yaml:"path"`
}

// AutostartConfig describes the login autostart entry: the installed
// front-end binary, and the fallback launch command used when it is absent.
type AutostartConfig struct {
	Binary   string `yaml:"binary"`
	Fallback string `yaml:"fallback"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// Config is the top-level configuration structure for the ryzenadj-mcp
// server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Ryzenadj  RyzenadjConfig  `yaml:"ryzenadj"`
	Profiles  ProfilesConfig  `yaml:"profiles"`
	Autostart AutostartConfig `yaml:"autostart"`
	Audit     AuditConfig     `yaml:"audit"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8090,
		},
		Ryzenadj: RyzenadjConfig{
			Binary:     "ryzenadj",
			BinaryPath: "/usr/bin/ryzenadj",
			UsePkexec:  true,
		},
		Autostart: AutostartConfig{
			Binary:   "/usr/bin/ryzenadj-mcp",
			Fallback: "ryzenadj-mcp",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - RYZENADJ_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - RYZENADJ_MCP_BINARY overrides cfg.Ryzenadj.Binary
//   - RYZENADJ_MCP_BINARY_PATH overrides cfg.Ryzenadj.BinaryPath
//   - RYZENADJ_MCP_PROFILE_PATH overrides cfg.Profiles.Path
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("RYZENADJ_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if binary := os.Getenv("RYZENADJ_MCP_BINARY"); binary != "" {
		cfg.Ryzenadj.Binary = binary
	}
	if path := os.Getenv("RYZENADJ_MCP_BINARY_PATH"); path != "" {
		cfg.Ryzenadj.BinaryPath = path
	}
	if path := os.Getenv("RYZENADJ_MCP_PROFILE_PATH"); path != "" {
		cfg.Profiles.Path = path
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or
// generated) and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
