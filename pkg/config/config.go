package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/joho/godotenv"
)

const DefaultUserAgent = "jenkins-sdk-go"

type Config struct {
	BaseURL  string
	Username string
	APIToken string

	UserAgent             string
	Size                  int
	RequestTimeout        time.Duration
	DialTimeout           time.Duration
	TlsTimeout            time.Duration
	IdleConnTimeout       time.Duration
	MaxConnsPerHost       int
	ConnWaitTimeout       time.Duration
	InsecureSkipVerify    bool
	ResponseHeaderTimeout time.Duration

	// Logger receives per-request debug entries. Nil discards them.
	Logger log.Interface
}

// DefaultConfig trusts any server certificate and sets no request timeout.
func DefaultConfig() Config {
	return Config{
		BaseURL:               "",
		UserAgent:             DefaultUserAgent,
		Size:                  4,
		RequestTimeout:        0,
		DialTimeout:           5 * time.Second,
		TlsTimeout:            5 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxConnsPerHost:       4,
		ConnWaitTimeout:       30 * time.Second,
		InsecureSkipVerify:    true,
		ResponseHeaderTimeout: 0,
	}
}

// Log returns the configured logger, or one that drops everything.
func (c Config) Log() log.Interface {
	if c.Logger != nil {
		return c.Logger
	}
	return &log.Logger{Handler: discard.Default, Level: log.FatalLevel}
}

// FromEnv loads the given dotenv files, if present, and overlays the
// JENKINS_* environment variables on DefaultConfig.
func FromEnv(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	cfg.BaseURL = os.Getenv("JENKINS_URL")
	cfg.Username = os.Getenv("JENKINS_USERNAME")
	cfg.APIToken = os.Getenv("JENKINS_API_TOKEN")
	if v := os.Getenv("JENKINS_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("JENKINS_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("JENKINS_POOL_SIZE: %w", err)
		}
		cfg.Size = n
	}
	if v := os.Getenv("JENKINS_INSECURE_SKIP_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("JENKINS_INSECURE_SKIP_VERIFY: %w", err)
		}
		cfg.InsecureSkipVerify = b
	}
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("JENKINS_URL is not set")
	}
	return cfg, nil
}
