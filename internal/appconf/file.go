package appconf

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// JSONConfig mirrors the on-disk JSON configuration file.
type JSONConfig struct {
	Port           int      `json:"port"`
	Env            string   `json:"env"`
	ApiKeys        []string `json:"api-keys"`
	RateLimit      int      `json:"rate-limit"`
	Verbose        bool     `json:"verbose"`
	DataPath       string   `json:"data-path"`
	MasterDataPath string   `json:"masterdata-path"`

	// Optional auth header attached when masterdata-path is an http(s) URL.
	MasterDataAuthHeaderKey   string `json:"masterdata-auth-header-key"`
	MasterDataAuthHeaderValue string `json:"masterdata-auth-header-value"`
}

// LoadFromFile reads and validates a JSON config file.
func LoadFromFile(path string) (*JSONConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg JSONConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *JSONConfig) validate() error {
	var problems []string

	if c.Port < 0 || c.Port > 65535 {
		problems = append(problems, "port must be between 0 and 65535")
	}
	switch c.Env {
	case "", "development", "test", "production":
	default:
		problems = append(problems, fmt.Sprintf("unknown env %q", c.Env))
	}
	if c.RateLimit < 0 {
		problems = append(problems, "rate-limit must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// ToAppConfig converts the file representation into the runtime Config.
func (c *JSONConfig) ToAppConfig() Config {
	return Config{
		Port:      c.Port,
		Env:       EnvFlagToEnvironment(c.Env),
		ApiKeys:   c.ApiKeys,
		RateLimit: c.RateLimit,
		Verbose:   c.Verbose,
	}
}

// MasterDataConfigData carries the master-data settings from the config file.
// It stays in this package so the master-data layer can depend on appconf
// without a cycle.
type MasterDataConfigData struct {
	DataPath        string
	MasterDataPath  string
	AuthHeaderKey   string
	AuthHeaderValue string
	Env             Environment
	Verbose         bool
}

// ToMasterDataConfigData extracts the master-data settings.
func (c *JSONConfig) ToMasterDataConfigData() MasterDataConfigData {
	return MasterDataConfigData{
		DataPath:        c.DataPath,
		MasterDataPath:  c.MasterDataPath,
		AuthHeaderKey:   c.MasterDataAuthHeaderKey,
		AuthHeaderValue: c.MasterDataAuthHeaderValue,
		Env:             EnvFlagToEnvironment(c.Env),
		Verbose:         c.Verbose,
	}
}
