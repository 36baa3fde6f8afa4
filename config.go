package stockpile

import (
	"errors"
	"fmt"

	"github.com/evdv/stockpile/date"
	"github.com/spf13/viper"
)

// Config carries the settings every component needs: the date layout and the
// ledger file locations. It is an explicit value threaded through the
// engines; there is no process-wide configuration state.
type Config struct {
	DateFormat      string // Go time layout, dash separated, year first
	BoughtFile      string // bought ledger path
	SoldFile        string // sold ledger path
	CurrentDateFile string // one-row ledger holding the simulated current date
	Currency        string // display currency for rendered amounts
}

// DefaultConfig returns the built-in settings, used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DateFormat:      date.ISOFormat,
		BoughtFile:      "data/bought.csv",
		SoldFile:        "data/sold.csv",
		CurrentDateFile: "data/current_date.csv",
		Currency:        "EUR",
	}
}

// Format returns the configured date layout as a granularity-aware format.
func (c Config) Format() date.Format { return date.Format(c.DateFormat) }

// LoadConfig reads the configuration from a JSON file, the environment
// (STOCKPILE_* variables) and the defaults, in that order of precedence.
// With an empty file argument it looks for config.json in the working
// directory and silently falls back to the defaults when there is none.
func LoadConfig(file string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("date_format", def.DateFormat)
	v.SetDefault("files.bought", def.BoughtFile)
	v.SetDefault("files.sold", def.SoldFile)
	v.SetDefault("files.current_date", def.CurrentDateFile)
	v.SetDefault("currency", def.Currency)

	v.SetEnvPrefix("stockpile")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %q: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("could not read config file: %w", err)
			}
		}
	}

	return Config{
		DateFormat:      v.GetString("date_format"),
		BoughtFile:      v.GetString("files.bought"),
		SoldFile:        v.GetString("files.sold"),
		CurrentDateFile: v.GetString("files.current_date"),
		Currency:        v.GetString("currency"),
	}, nil
}
