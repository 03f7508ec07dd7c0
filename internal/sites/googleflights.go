package sites

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const googleFlightsBase = "https://www.google.com/travel/flights"

// EncodeGoogleFlights embeds the whole search as a percent-encoded
// free-text query. Passengers and cabin have no URL slot; Google parses
// them from the query text it receives, so only the route and dates are
// carried.
func EncodeGoogleFlights(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "2006-01-02")
	if err != nil {
		return "", &EncodingError{Site: GoogleFlights, Err: err}
	}

	query := fmt.Sprintf("Flights from %s to %s on %s", req.Origin, req.Destination, depart)
	if ret != "" {
		query += " through " + ret
	}

	return googleFlightsBase + "?q=" + escapeQuery(query), nil
}

// escapeQuery percent-encodes a free-text query using %20 for spaces
// rather than the form-encoding plus sign.
func escapeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}
