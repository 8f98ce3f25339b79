// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/coauthor-engine/internal/httputil"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// scholarAPIBase is the profile service base URL. Declared as a var so
// tests can substitute an httptest server.
var scholarAPIBase = "https://api.scholarproxy.org/v1"

// defaultRequestsPerSecond keeps the client inside the service's polite
// rate limit when no rate is configured.
const defaultRequestsPerSecond = 2.0

// Client is a rate-limited HTTP client for the profile service.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        types.ScholarConfig
}

// NewClient builds a Client from the given configuration.
func NewClient(cfg types.ScholarConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &Client{
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cfg:        cfg,
	}
}

// ResolveAuthor fetches the profile summary for a scholar ID.
func (c *Client) ResolveAuthor(ctx context.Context, scholarID string) (*types.AuthorProfile, error) {
	if scholarID == "" {
		return nil, fmt.Errorf("empty scholar ID")
	}

	var aj authorJSON
	if err := c.get(ctx, "/authors/"+url.PathEscape(scholarID), nil, &aj); err != nil {
		return nil, err
	}

	profile := aj.toProfile()
	if profile.ID == "" {
		profile.ID = scholarID
	}
	return profile, nil
}

// FillAuthor hydrates a profile with the named sections, updating it in
// place. Fields absent from the response keep their current values.
func (c *Client) FillAuthor(ctx context.Context, profile *types.AuthorProfile, sections []string) error {
	if profile.ID == "" {
		return fmt.Errorf("profile has no scholar ID")
	}

	var aj authorJSON
	if err := c.get(ctx, "/authors/"+url.PathEscape(profile.ID), sections, &aj); err != nil {
		return err
	}

	filled := aj.toProfile()
	if filled.Name != "" {
		profile.Name = filled.Name
	}
	if filled.Affiliation != "" {
		profile.Affiliation = filled.Affiliation
	}
	if len(filled.Interests) > 0 {
		profile.Interests = filled.Interests
	}
	if filled.CitedBy > 0 {
		profile.CitedBy = filled.CitedBy
	}
	if len(filled.Publications) > 0 {
		profile.Publications = filled.Publications
	}
	return nil
}

// FillPublication hydrates a publication stub with the named sections,
// updating it in place.
func (c *Client) FillPublication(ctx context.Context, stub *types.PublicationStub, sections []string) error {
	if stub.ID == "" {
		return fmt.Errorf("publication has no identifier")
	}

	var pj publicationJSON
	if err := c.get(ctx, "/publications/"+url.PathEscape(stub.ID), sections, &pj); err != nil {
		return err
	}

	if pj.Bib.Title != "" {
		stub.Title = pj.Bib.Title
	}
	if pj.Bib.Author != "" {
		stub.AuthorString = pj.Bib.Author
	}
	if year := parseYear(pj.Bib.PubYear); year > 0 {
		stub.Year = year
	}
	if pj.NumCitations > 0 {
		stub.CitedBy = pj.NumCitations
	}
	stub.Filled = true
	return nil
}

// get performs one rate-limited request and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, sections []string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params := url.Values{}
	if len(sections) > 0 {
		params.Set("sections", strings.Join(sections, ","))
	}
	if c.cfg.Email != "" {
		params.Set("mailto", c.cfg.Email)
	}

	reqURL := scholarAPIBase + path
	if enc := params.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return &APIError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// Profile service JSON structures. The bib sub-object mirrors the
// upstream record layout; pub_year arrives as a string and is parsed
// leniently (unparseable or absent years become 0).
type authorJSON struct {
	ScholarID    string            `json:"scholar_id"`
	Name         string            `json:"name"`
	Affiliation  string            `json:"affiliation"`
	Interests    []string          `json:"interests"`
	CitedBy      int               `json:"citedby"`
	Publications []publicationJSON `json:"publications"`
}

type publicationJSON struct {
	ID           string  `json:"id"`
	Bib          bibJSON `json:"bib"`
	NumCitations int     `json:"num_citations"`
}

type bibJSON struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	PubYear string `json:"pub_year"`
}

func (aj authorJSON) toProfile() *types.AuthorProfile {
	profile := &types.AuthorProfile{
		ID:          aj.ScholarID,
		Name:        aj.Name,
		Affiliation: aj.Affiliation,
		Interests:   aj.Interests,
		CitedBy:     aj.CitedBy,
	}
	for _, pj := range aj.Publications {
		profile.Publications = append(profile.Publications, types.PublicationStub{
			ID:           pj.ID,
			Title:        pj.Bib.Title,
			AuthorString: pj.Bib.Author,
			Year:         parseYear(pj.Bib.PubYear),
			CitedBy:      pj.NumCitations,
		})
	}
	return profile
}

func parseYear(s string) int {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 0 {
		return 0
	}
	return year
}
