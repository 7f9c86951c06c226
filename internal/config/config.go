package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// FromLayout is the layout of the start timestamp, interpreted in UTC.
const FromLayout = "2006-01-02 15:04:05"

// cronParser accepts the same specs as cron.New(cron.WithSeconds()).
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Config holds all application configuration.
type Config struct {
	Symbols     []string `yaml:"symbols"`
	From        string   `yaml:"from"`
	Window      *int     `yaml:"window"` // nil means unset; 0 and 1 are kept
	Concurrency int      `yaml:"concurrency"`
	DataSource  struct {
		Provider string `yaml:"provider"`
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Log struct {
		Verbose bool `yaml:"verbose"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// envOverrides lists the environment variables that override the file.
type envOverrides struct {
	Symbols     string `envconfig:"TRACKER_SYMBOLS"`
	From        string `envconfig:"TRACKER_FROM"`
	Window      *int   `envconfig:"TRACKER_WINDOW"`
	Concurrency int    `envconfig:"TRACKER_CONCURRENCY"`
	Provider    string `envconfig:"TRACKER_PROVIDER"`
	BaseURL     string `envconfig:"TRACKER_BASE_URL"`
	APIKey      string `envconfig:"TRACKER_API_KEY"`
	Format      string `envconfig:"TRACKER_FORMAT"`
	Cron        string `envconfig:"TRACKER_CRON"`
	BotToken    string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID      string `envconfig:"TELEGRAM_CHAT_ID"`
	Proxy       string `envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	cfg.applyEnv(&env)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv(env *envOverrides) {
	if env.Symbols != "" {
		c.Symbols = SplitSymbols(env.Symbols)
	}
	if env.From != "" {
		c.From = env.From
	}
	if env.Window != nil {
		c.Window = env.Window
	}
	if env.Concurrency != 0 {
		c.Concurrency = env.Concurrency
	}
	if env.Provider != "" {
		c.DataSource.Provider = env.Provider
	}
	if env.BaseURL != "" {
		c.DataSource.BaseURL = env.BaseURL
	}
	if env.APIKey != "" {
		c.DataSource.APIKey = env.APIKey
	}
	if env.Format != "" {
		c.Output.Format = env.Format
	}
	if env.Cron != "" {
		c.Schedule.Cron = env.Cron
	}
	if env.BotToken != "" {
		c.Telegram.BotToken = env.BotToken
	}
	if env.ChatID != "" {
		c.Telegram.ChatID = env.ChatID
	}
	if env.Proxy != "" {
		c.Proxy = env.Proxy
	}
}

func (c *Config) applyDefaults() {
	if len(c.Symbols) == 0 {
		c.Symbols = []string{"AAPL", "MSFT", "UBER", "GOOG"}
	}
	if c.Window == nil {
		w := 30
		c.Window = &w
	}
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
	}
	if c.Output.Format == "" {
		c.Output.Format = "csv"
	}
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.From == "" {
		return errors.New("from is required")
	}
	if _, err := c.Start(); err != nil {
		return err
	}
	if len(c.Symbols) == 0 {
		return errors.New("at least one symbol is required")
	}
	switch c.DataSource.Provider {
	case "yahoo", "financego", "mock":
	case "vstrader":
		if c.DataSource.BaseURL == "" {
			return errors.New("data_source.base_url is required for vstrader")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	switch c.Output.Format {
	case "csv", "table":
	default:
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	if c.Schedule.Cron != "" {
		if _, err := cronParser.Parse(c.Schedule.Cron); err != nil {
			return fmt.Errorf("invalid schedule.cron %q: %w", c.Schedule.Cron, err)
		}
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return errors.New("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// Start parses From as a UTC timestamp.
func (c *Config) Start() (time.Time, error) {
	t, err := time.ParseInLocation(FromLayout, strings.TrimSpace(c.From), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse from %q: %w", c.From, err)
	}
	return t, nil
}

// SMAWindow returns the configured moving average width, or 30 when unset.
func (c *Config) SMAWindow() int {
	if c.Window == nil {
		return 30
	}
	return *c.Window
}

// TelegramEnabled reports whether batch reports should be pushed to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// SplitSymbols splits a comma-separated symbol list, dropping blanks.
func SplitSymbols(s string) []string {
	var out []string
	for _, sym := range strings.Split(s, ",") {
		if sym = strings.TrimSpace(sym); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
