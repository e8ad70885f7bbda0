package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load() returns and thread-safe for concurrent reads.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Site    SiteConfig    `yaml:"site"`
	Mail    MailConfig    `yaml:"mail"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// AllowedOrigins may call the JSON contact API cross-origin, e.g. a
	// published static build on another host.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SiteConfig contains static build settings.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir"`

	// ContactEndpoint is the base URL of the server that receives contact
	// submissions from a static build. Required by build and publish.
	ContactEndpoint string `yaml:"contact_endpoint"`
}

// MailConfig contains the hosted email service settings.
type MailConfig struct {
	Endpoint             string   `yaml:"endpoint"`
	ServiceID            string   `yaml:"service_id"`
	PublicKey            string   `yaml:"public_key"`
	PrivateKey           string   `yaml:"-"` // env-only, never in YAML
	ConfirmationTemplate string   `yaml:"confirmation_template"`
	NotificationTemplate string   `yaml:"notification_template"`
	NotifyEmail          string   `yaml:"notify_email"`
	Timeout              Duration `yaml:"timeout"`
}

// PublishConfig contains S3-compatible storage settings for publishing the
// built site. An empty bucket disables publishing.
type PublishConfig struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	UseSSL    *bool  `yaml:"use_ssl"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"-"` // env-only
	SecretKey string `yaml:"-"` // env-only
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration is a wrapper around time.Duration that supports YAML string parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// Returns an immutable Config suitable for concurrent read access.
func Load() (*Config, error) {
	cfg := newDefaults()

	// Determine config path
	configPath := getEnv("FOLIO_CONFIG_PATH", "config/folio.yaml")

	// Load YAML file if it exists (missing file is not an error)
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific path.
// Used for testing and explicit path specification.
func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	// Load YAML file (file must exist for this function)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newDefaults returns a Config with all default values.
func newDefaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(45 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Site: SiteConfig{
			OutputDir: "public",
		},
		Mail: MailConfig{
			Endpoint: "https://api.emailjs.com",
			Timeout:  Duration(10 * time.Second),
		},
		Publish: PublishConfig{
			Region: "us-east-1",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// loadYAMLFile loads configuration from a YAML file if it exists.
// Missing file is not an error; we just use defaults.
func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	// Server
	if v := os.Getenv("FOLIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	setDuration("FOLIO_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	setDuration("FOLIO_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	setDuration("FOLIO_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)

	if v := os.Getenv("FOLIO_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	// Site
	setString("FOLIO_OUTPUT_DIR", &cfg.Site.OutputDir)
	setString("FOLIO_CONTACT_ENDPOINT", &cfg.Site.ContactEndpoint)

	// Mail (EMAILJS_* matches the provider's own naming)
	setString("EMAILJS_ENDPOINT", &cfg.Mail.Endpoint)
	setString("EMAILJS_SERVICE_ID", &cfg.Mail.ServiceID)
	setString("EMAILJS_PUBLIC_KEY", &cfg.Mail.PublicKey)
	setString("EMAILJS_PRIVATE_KEY", &cfg.Mail.PrivateKey)
	setString("EMAILJS_CONFIRMATION_TEMPLATE", &cfg.Mail.ConfirmationTemplate)
	setString("EMAILJS_NOTIFICATION_TEMPLATE", &cfg.Mail.NotificationTemplate)
	setString("FOLIO_NOTIFY_EMAIL", &cfg.Mail.NotifyEmail)
	setDuration("FOLIO_MAIL_TIMEOUT", &cfg.Mail.Timeout)

	// Publish
	setString("FOLIO_PUBLISH_BUCKET", &cfg.Publish.Bucket)
	setString("FOLIO_PUBLISH_ENDPOINT", &cfg.Publish.Endpoint)
	setString("FOLIO_PUBLISH_REGION", &cfg.Publish.Region)
	setString("FOLIO_PUBLISH_PREFIX", &cfg.Publish.Prefix)
	setString("FOLIO_PUBLISH_ACCESS_KEY", &cfg.Publish.AccessKey)
	setString("FOLIO_PUBLISH_SECRET_KEY", &cfg.Publish.SecretKey)
	if v := os.Getenv("FOLIO_PUBLISH_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Publish.UseSSL = &b
		}
	}

	// Log
	setString("FOLIO_LOG_LEVEL", &cfg.Log.Level)
	setString("FOLIO_LOG_FORMAT", &cfg.Log.Format)
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDuration(key string, dst *Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = Duration(d)
		}
	}
}

// validate checks settings every command depends on.
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Publish.Bucket != "" && c.Publish.Endpoint == "" {
		return errors.New("FOLIO_PUBLISH_ENDPOINT is required when a publish bucket is set")
	}
	if c.Site.ContactEndpoint != "" {
		if err := ValidateBaseURL(c.Site.ContactEndpoint); err != nil {
			return fmt.Errorf("contact endpoint: %w", err)
		}
	}
	return nil
}

// ValidateBaseURL checks that raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q must be an absolute http(s) URL", raw)
	}
	return nil
}

// ValidateMail checks that the email service is configured. Only serving
// the contact form needs it. In dev mode (FOLIO_DEV_MODE=true) it is skipped
// and messages are logged instead of sent.
func (c *Config) ValidateMail() error {
	if DevMode() {
		return nil
	}

	if c.Mail.ServiceID == "" {
		return errors.New("EMAILJS_SERVICE_ID is required")
	}
	if c.Mail.PublicKey == "" {
		return errors.New("EMAILJS_PUBLIC_KEY is required")
	}
	if c.Mail.ConfirmationTemplate == "" {
		return errors.New("EMAILJS_CONFIRMATION_TEMPLATE is required")
	}
	if c.Mail.NotificationTemplate == "" {
		return errors.New("EMAILJS_NOTIFICATION_TEMPLATE is required")
	}
	return nil
}

// MailConfigured reports whether enough is set to reach the email service.
func (c *Config) MailConfigured() bool {
	return c.Mail.ServiceID != "" && c.Mail.PublicKey != ""
}

// DevMode reports whether FOLIO_DEV_MODE=true.
func DevMode() bool {
	return os.Getenv("FOLIO_DEV_MODE") == "true"
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
