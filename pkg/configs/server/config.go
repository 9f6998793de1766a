// Package server is the configuration of leadlined.
//
// Config files are YAML like:
//
//	dburi: postgres://user:pass@db:5432/leadline
//	port: 8080
//	auth:
//	  signKey: <base64 encoded key, 32 bytes or more>
//	  tokenTTL: 12h
//	documents:
//	  root: /var/lib/leadline/documents
//	metrics:
//	  public: false
package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort     = 8080
	DefaultTokenTTL = 12 * time.Hour

	// MinSignKeyLength is the minimum length of the token signing key, in bytes.
	MinSignKeyLength = 32
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the sealed configuration. Use Load or Unmarshal to get one.
type Config struct {
	dburi        string
	port         int32
	signKey      []byte
	tokenTTL     time.Duration
	documentRoot string
	publicMetric bool
}

// Connection string for database.
func (c *Config) DBURI() string {
	return c.dburi
}

func (c *Config) Port() int32 {
	return c.port
}

// SignKey is the key to sign and verify tokens.
func (c *Config) SignKey() []byte {
	return c.signKey
}

func (c *Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

// DocumentRoot is the directory where document contents are stored.
func (c *Config) DocumentRoot() string {
	return c.documentRoot
}

// PublicMetrics is true when /api/metrics can be read without tokens.
func (c *Config) PublicMetrics() bool {
	return c.publicMetric
}

// ConfigMarshall is the form of config files.
type ConfigMarshall struct {
	DBURI     string            `yaml:"dburi"`
	Port      int32             `yaml:"port,omitempty"`
	Auth      AuthMarshall      `yaml:"auth"`
	Documents DocumentsMarshall `yaml:"documents"`
	Metrics   MetricsMarshall   `yaml:"metrics,omitempty"`
}

type AuthMarshall struct {
	SignKey  string `yaml:"signKey"`
	TokenTTL string `yaml:"tokenTTL,omitempty"`
}

type DocumentsMarshall struct {
	Root string `yaml:"root"`
}

type MetricsMarshall struct {
	Public bool `yaml:"public,omitempty"`
}

// Seal validates the marshall and fills defaults.
func (m *ConfigMarshall) Seal() (*Config, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: empty", ErrInvalidConfig)
	}
	if m.DBURI == "" {
		return nil, fmt.Errorf("%w: dburi is required", ErrInvalidConfig)
	}
	if m.Documents.Root == "" {
		return nil, fmt.Errorf("%w: documents.root is required", ErrInvalidConfig)
	}

	port := m.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 0 || 65535 < port {
		return nil, fmt.Errorf("%w: port out of range: %d", ErrInvalidConfig, port)
	}

	key, err := base64.StdEncoding.DecodeString(m.Auth.SignKey)
	if err != nil {
		return nil, fmt.Errorf("%w: auth.signKey is not base64: %w", ErrInvalidConfig, err)
	}
	if len(key) < MinSignKeyLength {
		return nil, fmt.Errorf(
			"%w: auth.signKey is too short: %d bytes (%d bytes or more is required)",
			ErrInvalidConfig, len(key), MinSignKeyLength,
		)
	}

	ttl := DefaultTokenTTL
	if m.Auth.TokenTTL != "" {
		ttl, err = time.ParseDuration(m.Auth.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("%w: auth.tokenTTL: %w", ErrInvalidConfig, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("%w: auth.tokenTTL should be positive", ErrInvalidConfig)
		}
	}

	return &Config{
		dburi:        m.DBURI,
		port:         port,
		signKey:      key,
		tokenTTL:     ttl,
		documentRoot: m.Documents.Root,
		publicMetric: m.Metrics.Public,
	}, nil
}

// Load reads the config file.
func Load(filepath string) (*Config, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*Config, error) {
	var m *ConfigMarshall
	if err := yaml.Unmarshal(conf, &m); err != nil {
		return nil, err
	}
	return m.Seal()
}
