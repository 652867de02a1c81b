package models

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type APIConfig struct {
	LatencyMS     int    `yaml:"latency_ms"`
	ListLatencyMS int    `yaml:"list_latency_ms"`
	OTPCode       string `yaml:"otp_code"`
	AdminEmail    string `yaml:"admin_email"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	TokenFile       string `yaml:"token_file"`
}

type AdminConfig struct {
	PageSize   int    `yaml:"page_size"`
	ExportPath string `yaml:"export_path"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	App     AppConfig     `yaml:"app"`
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	Admin   AdminConfig   `yaml:"admin"`
	Metrics MetricsConfig `yaml:"metrics"`
}
