package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"4000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level" env:"LOGLEVEL" env-default:"info"`
	} `yaml:"log"`
	Database struct {
		Driver       string `yaml:"driver" env:"DBDRIVER" env-default:"postgres"`
		DSN          string `yaml:"dsn" env:"DSN"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"MAXOPENCONNS" env-default:"25"`
		MaxIdleConns int    `yaml:"max_idle_conns" env:"MAXIDLECONNS" env-default:"25"`
		MaxIdleTime  string `yaml:"max_idle_time" env:"MAXIDLETIME" env-default:"15m"`
		AutoMigrate  bool   `yaml:"auto_migrate" env:"AUTOMIGRATE"`
	} `yaml:"database"`
	SMTP struct {
		Host     string `yaml:"host" env:"SMTPHOST"`
		Port     int    `yaml:"port" env:"SMTPPORT" env-default:"25"`
		Username string `yaml:"username" env:"SMTPUSERNAME"`
		Password string `yaml:"password" env:"SMTPPASSWORD"`
		Sender   string `yaml:"sender" env:"SMTPSENDER" env-default:"Library Portal <no-reply@libraryportal.local>"`
	} `yaml:"smtp"`
	S3 struct {
		AccessKeyID     string `yaml:"access_key_id" env:"ACCESSKEYID"`
		SecretAccessKey string `yaml:"secret_access_key" env:"SECRETACCESSKEY"`
		Region          string `yaml:"region" env:"REGION"`
		Bucket          string `yaml:"bucket" env:"BUCKET"`
	} `yaml:"s3"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"4"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"8"`
		Enabled bool    `yaml:"enabled" env:"LENABLED"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"TRUSTEDORIGINS" env-separator:" " env-default:"http://localhost:8080"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"BASICAUTHUSERNAME" env-default:"user"`
		Password string `yaml:"password" env:"BASICAUTHPASSWORD" env-default:"password"`
	} `yaml:"basic_auth"`
}

const redacted = "********"

// Decode loads the configuration. Values from a .env file in the working directory
// are exported first, then the YAML file at path (if any) is read and finally the
// environment overrides individual fields.
func Decode(path string) (Config, error) {
	var cfg Config
	// A missing .env file is not an error
	_ = godotenv.Load()
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "pgx", "sqlite3":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn must be provided")
	}
	if _, err := time.ParseDuration(c.Database.MaxIdleTime); err != nil {
		return fmt.Errorf("invalid database max idle time: %w", err)
	}
	if c.BasicAuth.Username == "" || c.BasicAuth.Password == "" {
		return errors.New("basic auth credential must be provided")
	}
	return nil
}

// SMTPEnabled reports whether outgoing email is configured.
func (c Config) SMTPEnabled() bool {
	return c.SMTP.Host != ""
}

// S3Enabled reports whether object storage is configured.
func (c Config) S3Enabled() bool {
	return c.S3.Bucket != "" && c.S3.Region != ""
}

// RedactedYAML renders the configuration as YAML with secrets masked.
func (c Config) RedactedYAML() ([]byte, error) {
	if c.Database.DSN != "" {
		c.Database.DSN = redacted
	}
	if c.SMTP.Password != "" {
		c.SMTP.Password = redacted
	}
	if c.S3.SecretAccessKey != "" {
		c.S3.SecretAccessKey = redacted
	}
	c.BasicAuth.Password = redacted
	return yaml.Marshal(c)
}
