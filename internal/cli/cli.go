package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Ingest      *IngestCommand
	Report      *ReportCommand
	Domains     *DomainsCommand
	Times       *TimesCommand
	Categories  *CategoriesCommand
	Transitions *TransitionsCommand
	Sessions    *SessionsCommand
	Charts      *ChartsCommand
	Export      *ExportCommand
	Status      *StatusCommand
	Purge       *PurgeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "hindsight"
	parser.LongDescription = "Batch analytics and reporting over a local browser-history export."

	cmds := &commands{
		Ingest:      &IngestCommand{globals: &globals, version: version},
		Report:      &ReportCommand{globals: &globals, version: version},
		Domains:     &DomainsCommand{globals: &globals, version: version},
		Times:       &TimesCommand{globals: &globals, version: version},
		Categories:  &CategoriesCommand{globals: &globals, version: version},
		Transitions: &TransitionsCommand{globals: &globals, version: version},
		Sessions:    &SessionsCommand{globals: &globals, version: version},
		Charts:      &ChartsCommand{globals: &globals, version: version},
		Export:      &ExportCommand{globals: &globals, version: version},
		Status:      &StatusCommand{globals: &globals, version: version},
		Purge:       &PurgeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("ingest", "Ingest a history export", "Parse, clean, and store a browser-history export CSV.", cmds.Ingest)
	parser.AddCommand("report", "Run the full analysis report", "Run every analysis and print the console report; optionally render charts and exports.", cmds.Report)
	parser.AddCommand("domains", "Show top visited domains", "Rank domains by visit count with share of total.", cmds.Domains)
	parser.AddCommand("times", "Show time-of-day patterns", "Show hourly, daily, and weekday browsing patterns.", cmds.Times)
	parser.AddCommand("categories", "Show category breakdown", "Show visit counts per website category.", cmds.Categories)
	parser.AddCommand("transitions", "Show navigation transitions", "Show visit counts per navigation transition type.", cmds.Transitions)
	parser.AddCommand("sessions", "Show session statistics", "Segment visits into sessions by inactivity gap and summarize them.", cmds.Sessions)
	parser.AddCommand("charts", "Render chart images", "Render all chart PNGs to the output directory.", cmds.Charts)
	parser.AddCommand("export", "Write CSV summaries", "Write all CSV summary exports to the output directory.", cmds.Export)
	parser.AddCommand("status", "Show database statistics", "Show stored visit statistics and configuration summary.", cmds.Status)
	parser.AddCommand("purge", "Delete ALL hindsight data", "Delete ALL hindsight data. Destructive operation with safety prompt.", cmds.Purge)

	return parser, &globals, cmds
}

// Run is the main entry point for the hindsight CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("hindsight %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
