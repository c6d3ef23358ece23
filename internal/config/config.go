package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "JULMAR"

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Site      SiteConfig      `mapstructure:"site"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Quote     QuoteConfig     `mapstructure:"quote"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// SiteConfig describes the public site.
type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Name    string `mapstructure:"name"`
	// Dev reparses templates on every request.
	Dev bool `mapstructure:"dev"`
}

// PathsConfig locates on-disk resources.
type PathsConfig struct {
	Templates string `mapstructure:"templates"`
	Public    string `mapstructure:"public"`
	Locales   string `mapstructure:"locales"`
	Content   string `mapstructure:"content"`
}

// CatalogConfig selects the fleet data.
type CatalogConfig struct {
	// File overrides the embedded catalog when set.
	File     string `mapstructure:"file"`
	BasePath string `mapstructure:"base_path"`
}

// QuoteConfig holds the destinations of quote requests.
type QuoteConfig struct {
	WhatsAppPhone string `mapstructure:"whatsapp_phone"`
	Email         string `mapstructure:"email"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AnalyticsConfig holds client instrumentation IDs surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string `mapstructure:"ga4_id"`
	GTMContainerID   string `mapstructure:"gtm_id"`
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	file         string
	envMap       map[string]string
	useSystemEnv bool
}

// WithFile reads a YAML/TOML/JSON config file. A missing file is not an error.
func WithFile(path string) Option {
	return func(o *loaderOptions) {
		o.file = path
	}
}

// WithEnvMap injects JULMAR_* style values that take precedence over everything else.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, an optional config file,
// JULMAR_* environment variables and explicit overrides, in increasing order
// of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	v := viper.New()
	setDefaults(v)

	if options.useSystemEnv {
		// Cloud Run injects PORT; JULMAR_SERVER_PORT still wins below.
		if port := os.Getenv("PORT"); port != "" {
			v.SetDefault("server.port", port)
		}
	}

	if options.file != "" {
		v.SetConfigFile(options.file)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return Config{}, fmt.Errorf("config: parse %s: %w", options.file, err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return Config{}, fmt.Errorf("config: read %s: %w", options.file, err)
				}
			}
		}
	}

	if options.useSystemEnv {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	for key, value := range options.envMap {
		if k, ok := envKey(key); ok {
			v.Set(k, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	normalize(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("site.base_url", "https://julmar.cl")
	v.SetDefault("site.name", "Maquinarias Julmar SpA")
	v.SetDefault("site.dev", false)
	v.SetDefault("paths.templates", "templates")
	v.SetDefault("paths.public", "public")
	v.SetDefault("paths.locales", "locales")
	v.SetDefault("paths.content", "content")
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.base_path", "/flota")
	v.SetDefault("quote.whatsapp_phone", "56931052727")
	v.SetDefault("quote.email", "jgalvez@julmarspa.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("analytics.ga4_id", "")
	v.SetDefault("analytics.gtm_id", "")
}

// envKey maps JULMAR_SECTION_FIELD_NAME to section.field_name.
func envKey(key string) (string, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, strings.ToLower(envPrefix)+"_")
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return "", false
	}
	return section + "." + field, true
}

func normalize(cfg *Config) {
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")
	cfg.Catalog.BasePath = "/" + strings.Trim(strings.TrimSpace(cfg.Catalog.BasePath), "/")
	cfg.Quote.WhatsAppPhone = strings.TrimPrefix(strings.TrimSpace(cfg.Quote.WhatsAppPhone), "+")
	cfg.Quote.Email = strings.TrimSpace(cfg.Quote.Email)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
}

func validate(cfg Config) error {
	var fields []string
	if strings.TrimSpace(cfg.Server.Port) == "" {
		fields = append(fields, "server.port")
	}
	if u, err := url.Parse(cfg.Site.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		fields = append(fields, "site.base_url")
	}
	if cfg.Catalog.BasePath == "/" {
		fields = append(fields, "catalog.base_path")
	}
	if !digitsOnly(cfg.Quote.WhatsAppPhone) {
		fields = append(fields, "quote.whatsapp_phone")
	}
	if !strings.Contains(cfg.Quote.Email, "@") {
		fields = append(fields, "quote.email")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
