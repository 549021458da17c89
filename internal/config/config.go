package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	Env     string `yaml:"env"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TokenConfig struct {
	RegisterSecret string `yaml:"register_secret"`
	AccessSecret   string `yaml:"access_secret"`
	RefreshSecret  string `yaml:"refresh_secret"`
	ResetSecret    string `yaml:"reset_secret"`
	RegisterTTL    string `yaml:"register_ttl"`
	AccessTTL      string `yaml:"access_ttl"`
	RefreshTTL     string `yaml:"refresh_ttl"`
	ResetTTL       string `yaml:"reset_ttl"`
	Issuer         string `yaml:"issuer"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type RateLimitConfig struct {
	Window string `yaml:"window"`
	Max    int    `yaml:"max"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"`
	Token     TokenConfig     `yaml:"token"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Config is the immutable runtime configuration. It is built once at
// startup and injected; core logic never reads ambient state.
type Config struct {
	Port    string
	GinMode string
	Env     string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RegisterSecret string
	AccessSecret   string
	RefreshSecret  string
	ResetSecret    string
	RegisterTTL    time.Duration
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	ResetTTL       time.Duration
	TokenIssuer    string

	// Cookie lifetimes; the refresh cookie deliberately outlives the
	// access cookie.
	AccessCookieMaxAge  time.Duration
	RefreshCookieMaxAge time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the config file and applies environment overrides for secrets.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	regTTL, err := parseTTL(configFile.Token.RegisterTTL, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid register token TTL: %w", err)
	}
	accTTL, err := parseTTL(configFile.Token.AccessTTL, 15*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid access token TTL: %w", err)
	}
	refTTL, err := parseTTL(configFile.Token.RefreshTTL, 50*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token TTL: %w", err)
	}
	resTTL, err := parseTTL(configFile.Token.ResetTTL, 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	window, err := parseTTL(configFile.RateLimit.Window, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}
	limitMax := configFile.RateLimit.Max
	if limitMax <= 0 {
		limitMax = 100
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,
		Env:     env("APP_ENV", configFile.App.Env),

		MongoURI:      env("MONGO_URL", configFile.Mongo.URI),
		MongoDatabase: configFile.Mongo.Database,

		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,

		RegisterSecret: env("JWT_REGISTER_KEY", configFile.Token.RegisterSecret),
		AccessSecret:   env("ACCESS_TOKEN_SECRET", configFile.Token.AccessSecret),
		RefreshSecret:  env("REFRESH_TOKEN_SECRET", configFile.Token.RefreshSecret),
		ResetSecret:    env("PASSWORD_RESET_KEY", configFile.Token.ResetSecret),
		RegisterTTL:    regTTL,
		AccessTTL:      accTTL,
		RefreshTTL:     refTTL,
		ResetTTL:       resTTL,
		TokenIssuer:    configFile.Token.Issuer,

		AccessCookieMaxAge:  accTTL,
		RefreshCookieMaxAge: refTTL,

		SMTPHost:     env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:     configFile.SMTP.Port,
		SMTPUsername: env("EMAIL_HOST_USER", configFile.SMTP.Username),
		SMTPPassword: env("EMAIL_HOST_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:     configFile.SMTP.From,

		RateLimitWindow: window,
		RateLimitMax:    limitMax,
	}, nil
}

// IsDevelopment reports whether the process runs in local development.
// Cookies are only marked Secure outside development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseTTL(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
