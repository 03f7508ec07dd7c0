package models

// GeneratedLink pairs a site with the deep link produced for one search.
type GeneratedLink struct {
	Site string `json:"site"`
	URL  string `json:"url"`
}

// LinkSet is an ordered mapping from site to URL. Order follows the
// requested-site list, not registry order.
type LinkSet []GeneratedLink

// URLFor returns the URL generated for site, if present in the set.
func (s LinkSet) URLFor(site string) (string, bool) {
	for _, l := range s {
		if l.Site == site {
			return l.URL, true
		}
	}
	return "", false
}

// Sites lists the site names in set order.
func (s LinkSet) Sites() []string {
	names := make([]string, len(s))
	for i, l := range s {
		names[i] = l.Site
	}
	return names
}

type GenerateMetadata struct {
	SitesRequested int      `json:"sites_requested"`
	SitesGenerated int      `json:"sites_generated"`
	SitesSkipped   int      `json:"sites_skipped"`
	SkippedSites   []string `json:"skipped_sites,omitempty"`
	GenerateTimeMs int64    `json:"generate_time_ms"`
	CacheHit       bool     `json:"cache_hit"`
}

type GenerateResponse struct {
	SearchCriteria SearchRequest    `json:"search_criteria"`
	Metadata       GenerateMetadata `json:"metadata"`
	Links          LinkSet          `json:"links"`
}

// LaunchResult reports one browser-window launch attempt.
type LaunchResult struct {
	Site    string `json:"site"`
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LaunchResponse struct {
	SearchCriteria SearchRequest  `json:"search_criteria"`
	Browser        string         `json:"browser"`
	Summary        string         `json:"summary"`
	Launched       int            `json:"launched"`
	Failed         int            `json:"failed"`
	Results        []LaunchResult `json:"results"`
	HistoryID      *int64         `json:"history_id,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
