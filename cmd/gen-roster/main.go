package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sharzhou/headcount/internal/rostergen"
)

// Default configuration constants.
const (
	defaultEmployees = 40
	defaultDirtyRows = 2
	defaultTimeout   = 1 * time.Minute
)

func main() {
	var (
		output    = flag.String("output", "people_headcount.csv", "Output CSV file")
		employees = flag.Int("employees", defaultEmployees, "Number of clean employee rows to generate")
		dirty     = flag.Int("dirty", defaultDirtyRows, "Number of rows with unparsable compensation")
		footers   = flag.Bool("footers", true, "Append TOTAL/AVERAGE footer rows")
		prefix    = flag.String("prefix", "E", "Employee id prefix")
		seed      = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
		verify    = flag.Bool("verify", false, "Re-parse the output and check row accounting")
		serverURL = flag.String("url", "", "Base URL of a running service to verify end to end (optional)")
		headcount = flag.Int("headcount", 10, "Headcount used for server verification")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		rostergen.ShowHelp()
		return
	}

	if err := rostergen.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cfg := &rostergen.Config{
		OutputFile:   *output,
		NumEmployees: *employees,
		DirtyRows:    *dirty,
		FooterRows:   *footers,
		IDPrefix:     *prefix,
		Seed:         *seed,
		Verify:       *verify,
		Verbose:      *verbose,
	}

	if err := rostergen.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	if *serverURL != "" {
		if err := rostergen.VerifyServer(ctx, *serverURL, *headcount); err != nil {
			os.Stderr.WriteString("Server verification failed: " + err.Error() + "\n")
			os.Exit(1)
		}
	}
}
