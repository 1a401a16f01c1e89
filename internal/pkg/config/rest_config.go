package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CORSSettings lists the origins allowed to call the API from a browser
type CORSSettings struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// RestConfig is the complete configuration of the REST service and the CLI
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	Auth     AuthSettings     `yaml:"auth"`
	Cache    CacheSettings    `yaml:"cache"`
	OCR      OCRSettings      `yaml:"ocr"`
	Mail     MailSettings     `yaml:"mail"`
	Pricing  PricingSettings  `yaml:"pricing"`
	CORS     CORSSettings     `yaml:"cors"`
}

// InitializeRestConfig loads .env (if present), reads the YAML file at path,
// expands environment references, applies defaults and validates every section.
func InitializeRestConfig(path string) (*RestConfig, error) {
	_ = godotenv.Load()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - config path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseRestConfig(data)
}

// ParseRestConfig decodes raw YAML into a validated RestConfig
func ParseRestConfig(data []byte) (*RestConfig, error) {
	var cfg RestConfig
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *RestConfig) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = LogLevelInfo
	}
	if c.Logger.LogType == "" {
		c.Logger.LogType = LogTypeConsole
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"*"}
	}
	c.Auth.applyDefaults()
	c.Cache.applyDefaults()
	c.OCR.applyDefaults()
	c.Pricing.applyDefaults()
}

// Validate checks the top level fields and every settings section
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Logger, &c.Database, &c.Auth, &c.Cache, &c.OCR, &c.Mail, &c.Pricing,
	}
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
