// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar talks to the academic profile service: it resolves an
// author identifier to a profile summary and hydrates records with
// additional sections on demand.
// See docs/ARCHITECTURE.md § Profile Service.
package scholar

import (
	"context"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Section names accepted by the hydration operations. The service returns
// a summary record by default; requesting a section fills in the
// corresponding fields.
const (
	SectionBasics       = "basics"
	SectionIndices      = "indices"
	SectionCounts       = "counts"
	SectionPublications = "publications"
	SectionAuthors      = "authors"
)

// Service is the upstream profile-lookup contract: resolve an author by
// identifier, and hydrate a record (author or publication) with a named
// set of additional sections. Both operations are synchronous and fail on
// invalid identifiers or connectivity problems. The pipeline depends on
// this interface so tests can substitute a fake instead of the network.
type Service interface {
	// ResolveAuthor fetches the profile summary for a scholar ID,
	// including the publication stub list.
	ResolveAuthor(ctx context.Context, scholarID string) (*types.AuthorProfile, error)

	// FillAuthor hydrates an already-resolved profile with the named
	// sections, updating it in place.
	FillAuthor(ctx context.Context, profile *types.AuthorProfile, sections []string) error

	// FillPublication hydrates a publication stub with the named
	// sections, updating it in place. Requesting SectionAuthors
	// populates the raw "A and B and C" author string.
	FillPublication(ctx context.Context, stub *types.PublicationStub, sections []string) error
}
