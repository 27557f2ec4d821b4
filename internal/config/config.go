package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Trading struct {
		StoreFile         string `yaml:"store_file"`
		StartingCashCents int64  `yaml:"starting_cash_cents"`
	} `yaml:"trading"`
	Toolkit struct {
		StateFile string `yaml:"state_file"`
		Seed      int64  `yaml:"seed"`
	} `yaml:"toolkit"`
	Schedule struct {
		ValuationCron string `yaml:"valuation_cron"`
		AdviceCron    string `yaml:"advice_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	DebtRatio float64 `yaml:"debt_ratio"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

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

	// Environment variable overrides
	if v := os.Getenv("TRADING_STORE_FILE"); v != "" {
		cfg.Trading.StoreFile = v
	}
	if v := os.Getenv("STARTING_CASH_CENTS"); v != "" {
		var cash int64
		if _, err := fmt.Sscanf(v, "%d", &cash); err == nil {
			cfg.Trading.StartingCashCents = cash
		}
	}
	if v := os.Getenv("TOOLKIT_STATE_FILE"); v != "" {
		cfg.Toolkit.StateFile = v
	}
	if v := os.Getenv("SIMULATION_SEED"); v != "" {
		var seed int64
		if _, err := fmt.Sscanf(v, "%d", &seed); err == nil {
			cfg.Toolkit.Seed = seed
		}
	}
	if v := os.Getenv("CRON_VALUATION"); v != "" {
		cfg.Schedule.ValuationCron = v
	}
	if v := os.Getenv("CRON_ADVICE"); v != "" {
		cfg.Schedule.AdviceCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DEBT_RATIO"); v != "" {
		var ratio float64
		if _, err := fmt.Sscanf(v, "%f", &ratio); err == nil {
			cfg.DebtRatio = ratio
		}
	}

	// Defaults
	if cfg.Trading.StoreFile == "" {
		cfg.Trading.StoreFile = "data/trading_paper.json"
	}
	if cfg.Trading.StartingCashCents == 0 {
		cfg.Trading.StartingCashCents = 10_000_000
	}
	if cfg.Toolkit.StateFile == "" {
		cfg.Toolkit.StateFile = "data/growth_toolkit.json"
	}
	if cfg.Toolkit.Seed == 0 {
		cfg.Toolkit.Seed = 42
	}
	if cfg.Schedule.ValuationCron == "" {
		cfg.Schedule.ValuationCron = "0 0 18 * * 1-5"
	}
	if cfg.Schedule.AdviceCron == "" {
		cfg.Schedule.AdviceCron = "0 0 8 * * 1"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/novaquant.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Trading.StoreFile == "" {
		return fmt.Errorf("trading.store_file is required")
	}
	if c.Trading.StartingCashCents < 0 {
		return fmt.Errorf("trading.starting_cash_cents must not be negative")
	}
	if c.Toolkit.StateFile == "" {
		return fmt.Errorf("toolkit.state_file is required")
	}
	if c.DebtRatio < 0 || c.DebtRatio > 1 {
		return fmt.Errorf("debt_ratio must be between 0 and 1")
	}
	return nil
}
