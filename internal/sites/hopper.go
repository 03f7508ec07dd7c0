package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const hopperBase = "https://www.hopper.com/flights/shop/"

// Hopper caps maxPrice at JavaScript's Number.MAX_SAFE_INTEGER.
const hopperMaxPrice = "9007199254740991"

// EncodeHopper is all query params: tripCategory selects round_trip or
// one_way, infantsOnLapCount is pinned at 0, and the shop-progress
// constants are required for the deep link to land on results.
func EncodeHopper(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "2006-01-02")
	if err != nil {
		return "", &EncodingError{Site: Hopper, Err: err}
	}

	u := fmt.Sprintf("%s?origin=%s&destination=%s&departureDate=%s",
		hopperBase, req.Origin, req.Destination, depart)
	if ret != "" {
		u += "&returnDate=" + ret + "&tripCategory=round_trip"
	} else {
		u += "&tripCategory=one_way"
	}

	u += fmt.Sprintf("&adultsCount=%d&childrenCount=%d&infantsInSeatCount=%d&infantsOnLapCount=0",
		req.Adults, req.Children, req.Infants)
	u += "&flightShopProgress=1&flightShopType=default&maxPrice=" + hopperMaxPrice +
		"&noLCC=false&stopsOption=ANY_NUMBER"

	return u, nil
}
