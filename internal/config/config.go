package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fintrack-dev/fintrack/internal/budget"
	"github.com/fintrack-dev/fintrack/internal/currency"
)

// Config represents the top-level fintrack.yaml configuration: the base
// currency, the static rate table, and the budget category aliases. The
// engine itself has no network dependency for rates; whatever is in
// here is the truth.
type Config struct {
	BaseCurrency string          `yaml:"base_currency"`
	Rates        RatesConfig     `yaml:"rates"`
	Aliases      map[string][]string `yaml:"category_aliases,omitempty"`
}

// RatesConfig defines the pivot currency and the units-per-pivot table.
type RatesConfig struct {
	Pivot string             `yaml:"pivot"`
	Table map[string]float64 `yaml:"table"`
}

// Load reads a fintrack.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to disk.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a starter configuration.
func Default() *Config {
	return &Config{
		BaseCurrency: "USD",
		Rates: RatesConfig{
			Pivot: "USD",
			Table: map[string]float64{
				"USD": 1,
				"EUR": 0.92,
				"GBP": 0.79,
				"JPY": 149.5,
			},
		},
		Aliases: map[string][]string{
			"Food": {"Groceries", "Restaurants", "Coffee"},
		},
	}
}

// RateTable converts the configured rates into the engine's table.
func (c *Config) RateTable() currency.RateTable {
	rates := make(map[string]decimal.Decimal, len(c.Rates.Table))
	for code, rate := range c.Rates.Table {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return currency.RateTable{Pivot: c.Rates.Pivot, Rates: rates}
}

// BudgetAliases converts the configured aliases into the aggregator's
// lookup table.
func (c *Config) BudgetAliases() budget.Aliases {
	return budget.Aliases(c.Aliases)
}
