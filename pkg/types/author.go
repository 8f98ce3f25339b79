// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AuthorProfile holds a researcher's profile as returned by the scholar
// profile service: identity, summary statistics, and the publication list.
// The profile is fetched once per run and not mutated afterwards except
// for hydration of its publication stubs.
type AuthorProfile struct {
	// ID is the service-specific author identifier. For Google Scholar
	// profiles this is the string after "user=" in the profile URL.
	ID string `json:"scholar_id" yaml:"scholar_id"`

	// Name is the author's display name as registered on the profile.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text affiliation line, if any.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// Interests lists the research interest tags on the profile.
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty"`

	// CitedBy is the total citation count across all publications.
	CitedBy int `json:"citedby,omitempty" yaml:"citedby,omitempty"`

	// Publications lists the publication stubs in profile order.
	Publications []PublicationStub `json:"publications" yaml:"publications"`
}

// PublicationStub is one entry of an author's publication list. The
// summary fetch populates title and year only; AuthorString stays empty
// until the stub is hydrated with the "authors" section.
type PublicationStub struct {
	// ID is the service-specific publication identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// AuthorString is the raw author list in "A and B and C" form.
	// Empty until the stub is filled.
	AuthorString string `json:"author_string,omitempty" yaml:"author_string,omitempty"`

	// Year is the recorded publication year, or 0 when the service has
	// no year on record.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// CitedBy is the citation count for this publication.
	CitedBy int `json:"num_citations,omitempty" yaml:"num_citations,omitempty"`

	// Filled reports whether the stub has been hydrated with its full
	// record.
	Filled bool `json:"filled,omitempty" yaml:"filled,omitempty"`
}
