// Package config defines run configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Course is the pool course the exports were generated in: S or L.
	Course string `koanf:"course"`

	// SheetRows and SheetColumns describe the label grid of the physical
	// sheet product. Defaults match Avery 8160 (3 across, 10 down).
	SheetRows    int `koanf:"sheet_rows"`
	SheetColumns int `koanf:"sheet_columns"`

	// ReportTitle heads the best-times report pages.
	ReportTitle string `koanf:"report_title"`

	// RibbonsOutput is the default output path for the label sheet PDF.
	RibbonsOutput string `koanf:"ribbons_output"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Course:        "S",
		SheetRows:     10,
		SheetColumns:  3,
		ReportTitle:   "Flower Hill Dolphins Top Times",
		RibbonsOutput: "black_ribbons.pdf",
	}
}
