// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/coauthor-engine/internal/coauthor"
	"github.com/pdiddy/coauthor-engine/internal/scholar"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Documented defaults. The fallback scholar ID points at a known public
// profile so the tool works out of the box.
const (
	defaultScholarID = "lHBjgLsAAAAJ"
	defaultYearsBack = 2
	defaultOutput    = "coauthors.csv"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "coauthor-engine/0.1"
)

var reportCmd = &cobra.Command{
	Use:   "report [scholar-id]",
	Short: "Generate the coauthor report for a scholar profile",
	Long: `Report resolves a scholar ID to a profile, fetches the full author list
of every publication inside the collaboration window, and writes one
"Surname, Given Middle, year" line per distinct coauthor, sorted by name.
The primary author's own name is removed.

Publications without a recorded year count as current-year publications.
Pass --years-back 0 to consider the entire publication list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().Int("years-back", defaultYearsBack, "collaboration window in years (0 = unbounded)")
	reportCmd.Flags().String("output", defaultOutput, "report file path")
	reportCmd.Flags().Bool("names-only", false, "write one name per line without years")
	reportCmd.Flags().Bool("no-write", false, "skip the file write, print to stdout only")
	reportCmd.Flags().Bool("json", false, "print the report rows as JSON to stdout")
	reportCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	scholarID := defaultScholarID
	if len(args) == 1 {
		scholarID = args[0]
	} else if id := viper.GetString("report.scholar_id"); id != "" {
		scholarID = id
	}

	yearsBack, _ := cmd.Flags().GetInt("years-back")
	output, _ := cmd.Flags().GetString("output")
	namesOnly, _ := cmd.Flags().GetBool("names-only")
	noWrite, _ := cmd.Flags().GetBool("no-write")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	svc := scholar.NewClient(scholarClientConfig(cmd))

	ctx := context.Background()
	profile, err := svc.ResolveAuthor(ctx, scholarID)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Resolved %s (%d publications)\n", profile.Name, len(profile.Publications))

	opts := coauthor.Options{}
	if yearsBack > 0 {
		opts.YearCutoff = time.Now().Year() - yearsBack
	}

	report, err := coauthor.Collect(ctx, svc, profile, opts, os.Stderr)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Rows()); err != nil {
			return err
		}
	}

	if !noWrite && output != "" {
		if err := report.WriteFile(output, namesOnly); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d coauthor(s) to %s\n", len(report), output)
	} else {
		fmt.Fprintf(os.Stderr, "%d coauthor(s), no file written\n", len(report))
	}
	return nil
}

// scholarClientConfig assembles the client configuration from flags,
// config file values, and loaded secrets, in that precedence order.
func scholarClientConfig(cmd *cobra.Command) types.ScholarConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return types.ScholarConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:            secretDefault("scholar-api-key", viper.GetString("scholar.api_key")),
		Email:             secretDefault("scholar-email", viper.GetString("scholar.email")),
		RequestsPerSecond: viper.GetFloat64("scholar.requests_per_second"),
		MaxRetries:        viper.GetInt("scholar.max_retries"),
	}
}
