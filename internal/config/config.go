package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type storageConfig struct {
	DataDir  string `koanf:"data_dir"`
	InMemory bool   `koanf:"in_memory"`
}

type gitConfig struct {
	Timeout       time.Duration `koanf:"timeout"`
	MaxLogEntries int           `koanf:"max_log_entries"`
}

type openerConfig struct {
	EditorScheme string `koanf:"editor_scheme"`
}

type authConfig struct {
	SecretKey      string        `koanf:"secret_key"`
	Issuer         string        `koanf:"issuer"`
	AccessTokenExp time.Duration `koanf:"access_token_exp"`
	AdminUser      string        `koanf:"admin_user"`
	AdminPassword  string        `koanf:"admin_password"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage storageConfig `koanf:"storage"`
	Git     gitConfig     `koanf:"git"`
	Opener  openerConfig  `koanf:"opener"`
	Auth    authConfig    `koanf:"auth"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Git: gitConfig{
			Timeout:       30 * time.Second,
			MaxLogEntries: 100,
		},

		Opener: openerConfig{
			EditorScheme: "vscode",
		},

		Auth: authConfig{
			Issuer:         "gitscope",
			AccessTokenExp: time.Hour,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
