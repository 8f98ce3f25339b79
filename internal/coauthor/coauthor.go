// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coauthor aggregates a researcher's recent coauthors from their
// publication list and formats them for NSF-style collaborator reports.
// See docs/ARCHITECTURE.md § Coauthor Pipeline.
package coauthor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/coauthor-engine/internal/scholar"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Options holds the aggregation parameters.
type Options struct {
	// YearCutoff is the earliest publication year to include. 0 means
	// unbounded: every publication is considered.
	YearCutoff int
}

// Collect walks the profile's publication list, hydrates each qualifying
// publication with its full author string, and reduces the result into a
// Report mapping each formatted coauthor name to the most recent
// collaboration year.
//
// Publications are filtered before any service call: one FillPublication
// request per qualifying publication, in profile order, none for excluded
// ones. A publication with no recorded year is treated as published in
// the current calendar year, so it always qualifies. The primary author's
// own formatted name is removed from the result after reduction (exact
// match only). Per-item progress is written to w; service errors abort
// the run and propagate unchanged.
func Collect(ctx context.Context, svc scholar.Service, profile *types.AuthorProfile, opts Options, w io.Writer) (Report, error) {
	currentYear := time.Now().Year()

	var included []types.PublicationStub
	for _, stub := range profile.Publications {
		year := stub.Year
		if year == 0 {
			year = currentYear
		}
		if opts.YearCutoff > 0 && year < opts.YearCutoff {
			continue
		}
		included = append(included, stub)
	}

	report := make(Report)
	for i := range included {
		stub := &included[i]
		if err := svc.FillPublication(ctx, stub, []string{scholar.SectionAuthors}); err != nil {
			return nil, fmt.Errorf("filling publication %s: %w", stub.ID, err)
		}
		fmt.Fprintf(w, "fetched %d/%d: %s\n", i+1, len(included), stub.Title)

		year := stub.Year
		if year == 0 {
			year = currentYear
		}
		for _, raw := range SplitAuthors(stub.AuthorString) {
			name := FormatNSF(raw)
			if prev, ok := report[name]; !ok || year > prev {
				report[name] = year
			}
		}
	}

	delete(report, FormatNSF(profile.Name))
	return report, nil
}
