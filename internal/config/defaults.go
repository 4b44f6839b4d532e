package config

import "github.com/runnerr0/hindsight/internal/classify"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SessionGapMinutes: 30,
			TopDomains:        15,
			PeakHours:         5,
			BusiestDays:       5,
		},
		Categories: classify.DefaultRules(),
		Storage: StorageConfig{
			Path:       "~/.config/hindsight",
			SQLiteFile: "hindsight.db",
		},
		Charts: ChartsConfig{
			Dir:    "images",
			Width:  1200,
			Height: 600,
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
