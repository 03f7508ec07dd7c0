package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightincognito/internal/airports"
	"github.com/dharmasatrya/flightincognito/internal/cache"
	"github.com/dharmasatrya/flightincognito/internal/engine"
	"github.com/dharmasatrya/flightincognito/internal/launcher"
	"github.com/dharmasatrya/flightincognito/internal/models"
	"github.com/dharmasatrya/flightincognito/internal/sites"
	"github.com/dharmasatrya/flightincognito/pkg/format"
)

const dateLayout = "2006-01-02"

// Generator produces ordered link sets for normalized requests.
type Generator interface {
	GenerateAll(req models.SearchRequest, siteIDs []sites.ID) (*engine.Result, error)
}

// BrowserLauncher opens generated links in private browser windows.
type BrowserLauncher interface {
	LaunchAll(ctx context.Context, links models.LinkSet, browser launcher.Browser) []models.LaunchResult
}

type LinksHandler struct {
	engine   Generator
	cache    cache.Cache
	launcher BrowserLauncher
	history  HistoryStore
}

func NewLinksHandler(eng Generator, c cache.Cache, l BrowserLauncher, h HistoryStore) *LinksHandler {
	return &LinksHandler{
		engine:   eng,
		cache:    c,
		launcher: l,
		history:  h,
	}
}

// generateRequest is the JSON body for generate and launch calls.
// Dates are ISO date strings; sites and browser are optional.
type generateRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DepartDate  string   `json:"depart_date"`
	ReturnDate  string   `json:"return_date,omitempty"`
	TripType    string   `json:"trip_type,omitempty"`
	Adults      int      `json:"adults,omitempty"`
	Children    int      `json:"children,omitempty"`
	Infants     int      `json:"infants,omitempty"`
	Cabin       string   `json:"cabin,omitempty"`
	Sites       []string `json:"sites,omitempty"`
	Browser     string   `json:"browser,omitempty"`
}

func (r generateRequest) toRaw() (models.RawSearch, error) {
	depart, err := time.Parse(dateLayout, r.DepartDate)
	if err != nil {
		return models.RawSearch{}, fmt.Errorf("invalid depart_date %q: expected YYYY-MM-DD", r.DepartDate)
	}

	var returnDate *time.Time
	if r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return models.RawSearch{}, fmt.Errorf("invalid return_date %q: expected YYYY-MM-DD", r.ReturnDate)
		}
		returnDate = &ret
	}

	return models.RawSearch{
		Origin:      r.Origin,
		Destination: r.Destination,
		DepartDate:  depart,
		ReturnDate:  returnDate,
		TripType:    models.TripType(r.TripType),
		Adults:      r.Adults,
		Children:    r.Children,
		Infants:     r.Infants,
		Cabin:       models.CabinClass(r.Cabin),
	}, nil
}

func (r generateRequest) siteIDs() []sites.ID {
	ids := make([]sites.ID, 0, len(r.Sites))
	for _, s := range r.Sites {
		ids = append(ids, sites.ID(s))
	}
	return ids
}

// bindAndNormalize parses the JSON body and runs it through the
// normalizer. A non-nil ErrorResponse is ready to send as-is.
func bindAndNormalize(c echo.Context) (models.SearchRequest, generateRequest, *models.ErrorResponse) {
	var body generateRequest
	if err := c.Bind(&body); err != nil {
		return models.SearchRequest{}, body, &models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		}
	}

	raw, err := body.toRaw()
	if err != nil {
		return models.SearchRequest{}, body, &models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		}
	}

	req, err := models.Normalize(raw)
	if err != nil {
		return models.SearchRequest{}, body, &models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		}
	}

	return req, body, nil
}

func (h *LinksHandler) Generate(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	req, body, errResp := bindAndNormalize(c)
	if errResp != nil {
		return c.JSON(errResp.Code, errResp)
	}

	siteIDs := body.siteIDs()

	cacheHit := false
	var links models.LinkSet
	var skipped []sites.ID

	if cached, found := h.cache.Get(ctx, req, siteIDs); found {
		cacheHit = true
		links = cached
	} else {
		result, err := h.engine.GenerateAll(req, siteIDs)
		if err != nil {
			return h.encodingErrorResponse(c, err)
		}
		links = result.Links
		skipped = result.Skipped
		_ = h.cache.Set(ctx, req, siteIDs, links)
	}

	requested := len(siteIDs)
	if requested == 0 {
		requested = len(links) + len(skipped)
	}

	return c.JSON(http.StatusOK, models.GenerateResponse{
		SearchCriteria: req,
		Metadata: models.GenerateMetadata{
			SitesRequested: requested,
			SitesGenerated: len(links),
			SitesSkipped:   len(skipped),
			SkippedSites:   siteNames(skipped),
			GenerateTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:       cacheHit,
		},
		Links: links,
	})
}

func (h *LinksHandler) Launch(c echo.Context) error {
	ctx := c.Request().Context()

	req, body, errResp := bindAndNormalize(c)
	if errResp != nil {
		return c.JSON(errResp.Code, errResp)
	}

	browser := launcher.Chrome
	if body.Browser != "" {
		b, ok := launcher.ParseBrowser(body.Browser)
		if !ok {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_request",
				Message: fmt.Sprintf("unsupported browser %q", body.Browser),
				Code:    http.StatusBadRequest,
			})
		}
		browser = b
	}

	result, err := h.engine.GenerateAll(req, body.siteIDs())
	if err != nil {
		return h.encodingErrorResponse(c, err)
	}

	results := h.launcher.LaunchAll(ctx, result.Links, browser)

	launched, failed := 0, 0
	for _, r := range results {
		if r.Success {
			launched++
		} else {
			failed++
		}
	}

	var historyID *int64
	if id, err := h.history.Save(ctx, req); err != nil {
		log.Printf("Failed to save search history: %v", err)
	} else {
		historyID = &id
	}

	summary := fmt.Sprintf("%s departing %s (%s)",
		format.Route(airports.CityOrCode(req.Origin), airports.CityOrCode(req.Destination)),
		format.LongDate(req.DepartDate),
		format.Passengers(req.Adults, req.Children, req.Infants))

	return c.JSON(http.StatusOK, models.LaunchResponse{
		SearchCriteria: req,
		Browser:        string(browser),
		Summary:        summary,
		Launched:       launched,
		Failed:         failed,
		Results:        results,
		HistoryID:      historyID,
	})
}

func (h *LinksHandler) encodingErrorResponse(c echo.Context, err error) error {
	if errors.Is(err, sites.ErrUnknownSite) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unknown_site",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "encoding_error",
		Message: "Failed to generate links: " + err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func siteNames(ids []sites.ID) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
