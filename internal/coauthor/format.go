// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coauthor

import "strings"

// authorSeparator is the literal separator between names in the raw
// author string returned by the profile service.
const authorSeparator = " and "

// SplitAuthors splits a raw "A and B and C" author string into individual
// name tokens. No trimming beyond what the service returns.
func SplitAuthors(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, authorSeparator)
}

// FormatNSF reorders a raw name into the NSF "Surname, Given Middle"
// convention: the last space-separated token becomes the surname, the
// remaining tokens the given/middle part.
//
// A single-token name yields "{token}, " with an empty given-name
// segment. That degenerate form matches the upstream reporting behavior
// and is preserved rather than fixed. The function is not idempotent;
// apply it to raw names only, never to its own output.
func FormatNSF(raw string) string {
	parts := strings.Split(raw, " ")
	last := parts[len(parts)-1]
	return last + ", " + strings.Join(parts[:len(parts)-1], " ")
}
