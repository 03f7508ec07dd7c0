package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const pricelineBase = "https://www.priceline.com/m/fly/search"

var pricelineCabins = map[models.CabinClass]string{
	models.Economy:        "ECO",
	models.PremiumEconomy: "PEC",
	models.Business:       "BUS",
	models.First:          "FST",
}

// EncodePriceline uses compact YYYYMMDD dates and swaps destination and
// origin on the return leg. num-adults and num-children are always
// present; num-infants only when non-zero.
func EncodePriceline(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "20060102")
	if err != nil {
		return "", &EncodingError{Site: Priceline, Err: err}
	}

	var u string
	if ret != "" {
		u = fmt.Sprintf("%s/%s-%s-%s/%s-%s-%s/", pricelineBase,
			req.Origin, req.Destination, depart,
			req.Destination, req.Origin, ret)
	} else {
		u = fmt.Sprintf("%s/%s-%s-%s/", pricelineBase, req.Origin, req.Destination, depart)
	}

	cabin, ok := pricelineCabins[req.Cabin]
	if !ok {
		cabin = "ECO"
	}

	u += fmt.Sprintf("?cabin-class=%s&no-date-search=false&search-type=0110&num-adults=%d&num-children=%d",
		cabin, req.Adults, req.Children)
	if req.Infants > 0 {
		u += fmt.Sprintf("&num-infants=%d", req.Infants)
	}

	return u, nil
}
