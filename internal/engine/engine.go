package engine

import (
	"sync"

	"github.com/dharmasatrya/flightincognito/internal/models"
	"github.com/dharmasatrya/flightincognito/internal/sites"
)

// Config pins down the two registry behaviors that are otherwise
// ambiguous: whether an empty site list means "all known sites", and
// whether unknown site ids are an error or are silently skipped.
type Config struct {
	DefaultToAll  bool
	StrictSiteIDs bool
}

func DefaultConfig() Config {
	return Config{
		DefaultToAll:  true,
		StrictSiteIDs: false,
	}
}

type Engine struct {
	config Config
}

func New(config Config) *Engine {
	return &Engine{config: config}
}

// Result carries the ordered link set plus any requested ids that were
// skipped as unknown.
type Result struct {
	Links   models.LinkSet
	Skipped []sites.ID
}

// GenerateAll encodes req for each requested site. Output order follows
// the requested-site order. Encoders are pure and independent, so they
// run concurrently and results are slotted back by index.
func (e *Engine) GenerateAll(req models.SearchRequest, siteIDs []sites.ID) (*Result, error) {
	if len(siteIDs) == 0 && e.config.DefaultToAll {
		siteIDs = sites.All
	}

	known := make([]sites.ID, 0, len(siteIDs))
	var skipped []sites.ID
	for _, id := range siteIDs {
		if _, ok := sites.Lookup(id); !ok {
			if e.config.StrictSiteIDs {
				return nil, &sites.EncodingError{Site: id, Err: sites.ErrUnknownSite}
			}
			skipped = append(skipped, id)
			continue
		}
		known = append(known, id)
	}

	type encoded struct {
		idx int
		url string
		err error
	}

	resultCh := make(chan encoded, len(known))
	var wg sync.WaitGroup

	for i, id := range known {
		wg.Add(1)
		go func(idx int, site sites.ID) {
			defer wg.Done()
			url, err := sites.Encode(site, req)
			resultCh <- encoded{idx: idx, url: url, err: err}
		}(i, id)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	links := make(models.LinkSet, len(known))
	for enc := range resultCh {
		if enc.err != nil {
			return nil, enc.err
		}
		links[enc.idx] = models.GeneratedLink{Site: string(known[enc.idx]), URL: enc.url}
	}

	return &Result{Links: links, Skipped: skipped}, nil
}
