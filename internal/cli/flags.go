package cli

import "database/sql"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// IngestCommand — parse, clean, and store a browser-history export.
type IngestCommand struct {
	File string `long:"file" short:"f" description:"Path to the export CSV (required)"`

	globals *GlobalFlags
	version string
}

// ReportCommand — run the full analysis and print the console report.
type ReportCommand struct {
	File      string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Top       int    `long:"top" description:"Number of top domains to rank" default:"0"`
	Gap       string `long:"gap" description:"Session inactivity gap (e.g., 30m, 1h)"`
	Charts    bool   `long:"charts" description:"Also render chart PNGs"`
	Export    bool   `long:"export" description:"Also write CSV summary exports"`
	ChartsDir string `long:"charts-dir" description:"Override charts output directory"`
	ExportDir string `long:"export-dir" description:"Override export output directory"`

	globals *GlobalFlags
	version string
}

// DomainsCommand — print the top-domains ranking.
type DomainsCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Top  int    `long:"top" description:"Number of domains to rank" default:"0"`

	globals *GlobalFlags
	version string
}

// TimesCommand — print hourly, daily, and weekday patterns.
type TimesCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Peak int    `long:"peak" description:"Number of peak hours to show" default:"0"`
	Days int    `long:"days" description:"Number of busiest days to show" default:"0"`

	globals *GlobalFlags
	version string
}

// CategoriesCommand — print the website category breakdown.
type CategoriesCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`

	globals *GlobalFlags
	version string
}

// TransitionsCommand — print the navigation transition breakdown.
type TransitionsCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`

	globals *GlobalFlags
	version string
}

// SessionsCommand — print session segmentation statistics.
type SessionsCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Gap  string `long:"gap" description:"Session inactivity gap (e.g., 30m, 1h)"`
	List bool   `long:"list" description:"List individual sessions"`

	globals *GlobalFlags
	version string
}

// ChartsCommand — render all chart PNGs.
type ChartsCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Dir  string `long:"dir" description:"Override charts output directory"`

	globals *GlobalFlags
	version string
}

// ExportCommand — write all CSV summary exports.
type ExportCommand struct {
	File string `long:"file" short:"f" description:"Analyze a CSV export directly instead of the store"`
	Dir  string `long:"dir" description:"Override export output directory"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show database statistics and configuration summary.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// PurgeCommand — delete ALL hindsight data with safety confirmation.
type PurgeCommand struct {
	All   bool `long:"all" description:"Required flag to confirm purge intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
	db      *sql.DB // injectable for testing; nil means open default DB
}
