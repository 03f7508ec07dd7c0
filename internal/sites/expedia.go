package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const expediaBase = "https://www.expedia.com/go/flight/search"

// EncodeExpedia uses the deeplink route. One-way searches duplicate the
// departure date into both date slots; that is how the route works, not
// a bug. Each child gets a fixed Child{i}Age=10 param.
func EncodeExpedia(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "2006-01-02")
	if err != nil {
		return "", &EncodingError{Site: Expedia, Err: err}
	}

	var u string
	if ret != "" {
		u = fmt.Sprintf("%s/Roundtrip/%s/%s", expediaBase, depart, ret)
	} else {
		u = fmt.Sprintf("%s/oneway/%s/%s", expediaBase, depart, depart)
	}

	u += fmt.Sprintf("?load=1&FromAirport=%s&ToAirport=%s&FromTime=362&NumAdult=%d",
		req.Origin, req.Destination, req.Adults)

	if req.Children > 0 {
		u += fmt.Sprintf("&NumChild=%d", req.Children)
		for i := 1; i <= req.Children; i++ {
			u += fmt.Sprintf("&Child%dAge=10", i)
		}
	}
	if req.Infants > 0 {
		u += fmt.Sprintf("&InfantInSeat=%d", req.Infants)
	}

	return u, nil
}
