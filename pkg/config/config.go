// Package config provides configuration management for the kuznechik CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Davincible/kuznechik/pkg/crypto/galois"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "KUZNECHIK_CONFIG"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the main configuration structure
type Config struct {
	Version  string         `json:"version" yaml:"version"`
	Cipher   CipherConfig   `json:"cipher" yaml:"cipher"`
	Bench    BenchConfig    `json:"bench" yaml:"bench"`
	Security SecurityConfig `json:"security" yaml:"security"`
	UI       UIConfig       `json:"ui" yaml:"ui"`
}

// CipherConfig selects the field the cipher is built over
type CipherConfig struct {
	FieldOrder int    `json:"field_order" yaml:"field_order"` // Default: 256
	Polynomial string `json:"polynomial" yaml:"polynomial"`   // Default: 0x1c3
}

// BenchConfig contains throughput benchmark settings
type BenchConfig struct {
	PayloadMB int    `json:"payload_mb" yaml:"payload_mb"` // Default: 100
	Seed      uint64 `json:"seed" yaml:"seed"`
	Verify    bool   `json:"verify" yaml:"verify"` // Decrypt and compare after timing
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	WipeMemory       bool   `json:"wipe_memory" yaml:"wipe_memory"`
	PBKDF2Iterations int    `json:"pbkdf2_iterations" yaml:"pbkdf2_iterations"`
	PBKDF2Salt       string `json:"pbkdf2_salt" yaml:"pbkdf2_salt"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color" yaml:"use_color"`
	Verbosity string `json:"verbosity" yaml:"verbosity"` // quiet, normal, verbose
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Cipher: CipherConfig{
			FieldOrder: 256,
			Polynomial: "0x1c3",
		},
		Bench: BenchConfig{
			PayloadMB: 100,
			Seed:      42,
			Verify:    true,
		},
		Security: SecurityConfig{
			WipeMemory:       true,
			PBKDF2Iterations: 100000,
			PBKDF2Salt:       "kuznechik-key-v1",
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
	}
}

// Validate checks the configuration for values the tool cannot run with.
func (c *Config) Validate() error {
	if c.Cipher.FieldOrder != 256 {
		return fmt.Errorf("%w: field order must be 256, got %d", ErrInvalidConfig, c.Cipher.FieldOrder)
	}
	if _, err := c.GeneratorBits(); err != nil {
		return err
	}
	if c.Bench.PayloadMB <= 0 {
		return fmt.Errorf("%w: bench payload must be positive, got %d MB", ErrInvalidConfig, c.Bench.PayloadMB)
	}
	if c.Security.PBKDF2Iterations < 1000 {
		return fmt.Errorf("%w: pbkdf2 iterations must be at least 1000, got %d", ErrInvalidConfig, c.Security.PBKDF2Iterations)
	}

	switch c.UI.Verbosity {
	case "", "quiet", "normal", "verbose":
	default:
		return fmt.Errorf("%w: unknown verbosity %q", ErrInvalidConfig, c.UI.Verbosity)
	}

	return nil
}

// GeneratorBits parses the configured polynomial ("0x1c3", "451" or
// "0b111000011") into the low-to-high bit vector galois.New expects.
func (c *Config) GeneratorBits() ([]byte, error) {
	s := strings.ToLower(strings.TrimSpace(c.Cipher.Polynomial))

	p, err := strconv.ParseUint(s, 0, 32)
	if err != nil || p == 0 {
		return nil, fmt.Errorf("%w: polynomial %q", ErrInvalidConfig, c.Cipher.Polynomial)
	}

	return galois.BitsFromUint(uint32(p)), nil
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager resolves the config path and loads it. A missing file
// yields the defaults without writing anything.
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt is NewConfigManager for an explicit path.
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{configPath: configPath}

	if err := cm.LoadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cm.config = DefaultConfig()
	}

	return cm, nil
}

// NewDefaultManager returns a manager for path holding the defaults,
// without reading the file.
func NewDefaultManager(configPath string) *ConfigManager {
	return &ConfigManager{config: DefaultConfig(), configPath: configPath}
}

// Path returns the configuration file location.
func Path() (string, error) {
	return getConfigPath()
}

// LoadConfig loads the configuration from disk. Fields absent from the
// file keep their default values.
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if isYAML(cm.configPath) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", cm.configPath, err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", cm.configPath, err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(cm.configPath) {
		data, err = yaml.Marshal(cm.config)
	} else {
		data, err = json.MarshalIndent(cm.config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// Path returns the file the manager reads and writes.
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// Marshal renders the current configuration in the format matching the
// config file's extension.
func (cm *ConfigManager) Marshal() ([]byte, error) {
	if isYAML(cm.configPath) {
		return yaml.Marshal(cm.config)
	}
	return json.MarshalIndent(cm.config, "", "  ")
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv(EnvConfigPath); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "kuznechik", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "kuznechik", "config.json"), nil
}
