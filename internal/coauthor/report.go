// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coauthor

import (
	"fmt"
	"os"
	"sort"
)

// Report maps each formatted coauthor name to the most recent
// collaboration year. It is returned to callers directly so they can
// assert on the mapping without re-reading the output file.
type Report map[string]int

// Row is one line of the written report.
type Row struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Rows returns the report entries sorted lexicographically ascending by
// formatted name.
func (r Report) Rows() []Row {
	rows := make([]Row, 0, len(r))
	for name, year := range r {
		rows = append(rows, Row{Name: name, Year: year})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// WriteFile writes the report to path, one coauthor per line, overwriting
// any existing file. The rich form is "{name}, {year}"; namesOnly selects
// the reduced one-name-per-line projection. Commas embedded in names are
// written literally, so the output is not a strict CSV. A failure mid-write
// leaves a truncated file; there is no partial-write recovery.
func (r Report) WriteFile(path string, namesOnly bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	for _, row := range r.Rows() {
		var writeErr error
		if namesOnly {
			_, writeErr = fmt.Fprintf(f, "%s\n", row.Name)
		} else {
			_, writeErr = fmt.Fprintf(f, "%s, %d\n", row.Name, row.Year)
		}
		if writeErr != nil {
			f.Close()
			return fmt.Errorf("writing report: %w", writeErr)
		}
	}

	return f.Close()
}
