package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const cheapOairBase = "https://www.cheapoair.com/air/listing"

var cheapOairCabins = map[models.CabinClass]string{
	models.Economy:        "1",
	models.PremiumEconomy: "2",
	models.Business:       "3",
	models.First:          "4",
}

// EncodeCheapOair uses US-style MM/DD/YYYY dates. The slashes are legal
// unencoded in a query string and the live site expects them raw.
// Seniors (se) and lap infants (infs) have no input here and stay 0.
func EncodeCheapOair(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "01/02/2006")
	if err != nil {
		return "", &EncodingError{Site: CheapOair, Err: err}
	}

	u := fmt.Sprintf("%s?from=%s&dtype1=City&to=%s&rtype1=City&fromDt=%s",
		cheapOairBase, req.Origin, req.Destination, depart)
	if ret != "" {
		u += "&toDt=" + ret + "&fromTm=1100&toTm=1100&rt=true"
	} else {
		u += "&fromTm=1100&rt=false"
	}

	cabin, ok := cheapOairCabins[req.Cabin]
	if !ok {
		cabin = "1"
	}

	u += fmt.Sprintf("&ad=%d&se=0&ch=%d&infl=%d&infs=0&class=%s",
		req.Adults, req.Children, req.Infants, cabin)
	u += "&airpref=&preftyp=1&daan=&raan=&dst=&rst=&IsNS=false&lang=en-US&searchInitiated=true"
	if req.Children > 0 {
		u += "&childAge=c0-10"
	}

	return u, nil
}
