package sites

import (
	"errors"
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

// ID identifies a supported flight-aggregator site.
type ID string

const (
	GoogleFlights ID = "Google Flights"
	Kayak         ID = "Kayak"
	Momondo       ID = "Momondo"
	Skyscanner    ID = "Skyscanner"
	Expedia       ID = "Expedia"
	Priceline     ID = "Priceline"
	Hopper        ID = "Hopper"
	CheapOair     ID = "CheapOair"
)

// All lists every supported site in display order.
var All = []ID{GoogleFlights, Kayak, Momondo, Skyscanner, Expedia, Priceline, Hopper, CheapOair}

// EncodeFunc maps a normalized search request to a site deep link.
// Encoders are pure: equal requests yield byte-identical URLs.
type EncodeFunc func(req models.SearchRequest) (string, error)

var registry = map[ID]EncodeFunc{
	GoogleFlights: EncodeGoogleFlights,
	Kayak:         EncodeKayak,
	Momondo:       EncodeMomondo,
	Skyscanner:    EncodeSkyscanner,
	Expedia:       EncodeExpedia,
	Priceline:     EncodePriceline,
	Hopper:        EncodeHopper,
	CheapOair:     EncodeCheapOair,
}

// Lookup returns the encoder registered for id.
func Lookup(id ID) (EncodeFunc, bool) {
	f, ok := registry[id]
	return f, ok
}

// Encode runs the encoder registered for id.
func Encode(id ID, req models.SearchRequest) (string, error) {
	f, ok := registry[id]
	if !ok {
		return "", &EncodingError{Site: id, Err: ErrUnknownSite}
	}
	return f(req)
}

var (
	ErrUnknownSite = errors.New("unknown site")

	// ErrMissingReturnDate signals a round-trip request that reached an
	// encoder without a return date. The normalizer rejects those, so
	// hitting this means a caller bypassed normalization.
	ErrMissingReturnDate = errors.New("round trip request has no return date")
)

type EncodingError struct {
	Site ID
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Site, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// tripDates formats the depart date and, for round trips, the return
// date using a time.Format reference layout.
func tripDates(req models.SearchRequest, layout string) (depart, ret string, err error) {
	depart = req.DepartDate.Format(layout)
	if req.TripType != models.RoundTrip {
		return depart, "", nil
	}
	if req.ReturnDate == nil {
		return "", "", ErrMissingReturnDate
	}
	return depart, req.ReturnDate.Format(layout), nil
}
