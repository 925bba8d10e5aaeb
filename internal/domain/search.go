package domain

import "strings"

// SearchQuery is a parsed search term.
// With ByArea set, City and State must both match; otherwise Term is matched
// against name, state or city. All matching is case-insensitive substring matching.
type SearchQuery struct {
	Term   string
	ByArea bool
	City   string
	State  string
}

// ParseSearchTerm interprets a raw search box value. A term containing a comma
// is read as "city, state"; anything after a second comma is ignored.
func ParseSearchTerm(term string) SearchQuery {
	parts := strings.Split(term, ",")
	if len(parts) > 1 {
		return SearchQuery{
			ByArea: true,
			City:   strings.TrimSpace(parts[0]),
			State:  strings.TrimSpace(parts[1]),
		}
	}
	return SearchQuery{Term: term}
}

// ListingItem is a venue or artist entry in lists and search results.
// swagger:model ListingItem
type ListingItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the response of a venue or artist search.
// swagger:model SearchResult
type SearchResult struct {
	SearchTerm string         `json:"search_term"`
	Count      int            `json:"count"`
	Data       []*ListingItem `json:"data"`
}
