package stockpile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// run from a directory without a config.json
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig without a file = %+v, want the defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	content := `{
	  "date_format": "2006-01-02",
	  "currency": "USD",
	  "files": {
	    "bought": "ledgers/in.csv",
	    "sold": "ledgers/out.csv",
	    "current_date": "ledgers/now.csv"
	  }
	}`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.BoughtFile != "ledgers/in.csv" || cfg.SoldFile != "ledgers/out.csv" || cfg.CurrentDateFile != "ledgers/now.csv" {
		t.Errorf("file paths not taken from the config: %+v", cfg)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(file, []byte(`{"currency": "GBP"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", cfg.Currency)
	}
	if cfg.BoughtFile != DefaultConfig().BoughtFile {
		t.Errorf("BoughtFile = %q, want the default", cfg.BoughtFile)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("an explicit but missing config file should fail")
	}
}
