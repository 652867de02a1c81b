package config

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yadvendra249/olio-cab-connect/internal/shared/models"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*)?\}`)

// LoadConfig reads a yaml config file, expanding ${VAR} and ${VAR:-default}
// placeholders from the environment before decoding.
func LoadConfig(filename string) (*models.Config, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	expanded := envPattern.ReplaceAllStringFunc(string(raw), func(match string) string {
		inside := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		parts := strings.SplitN(inside, ":-", 2)

		defVal := ""
		if len(parts) == 2 {
			defVal = parts[1]
		}

		if v, ok := os.LookupEnv(parts[0]); ok {
			return v
		}
		return defVal
	})

	cfg := &models.Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "olio-cab-connect"
	}
	if cfg.API.LatencyMS == 0 {
		cfg.API.LatencyMS = 1000
	}
	if cfg.API.ListLatencyMS == 0 {
		cfg.API.ListLatencyMS = 500
	}
	if cfg.API.OTPCode == "" {
		cfg.API.OTPCode = "123456"
	}
	if cfg.API.AdminEmail == "" {
		cfg.API.AdminEmail = "admin@oliocar.com"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "supersecret"
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 24 * 60
	}
	if cfg.Auth.TokenFile == "" {
		cfg.Auth.TokenFile = ".olio_token"
	}
	if cfg.Admin.PageSize == 0 {
		cfg.Admin.PageSize = 20
	}
	if cfg.Admin.ExportPath == "" {
		cfg.Admin.ExportPath = "exports"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9091"
	}
}
