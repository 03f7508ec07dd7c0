package sites

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const skyscannerBase = "https://www.skyscanner.com/transport/flights"

// Fixed age Skyscanner assigns each child when the real age is unknown.
const skyscannerChildAge = "10"

var skyscannerCabins = map[models.CabinClass]string{
	models.Economy:        "economy",
	models.PremiumEconomy: "premiumeconomy",
	models.Business:       "business",
	models.First:          "first",
}

// EncodeSkyscanner uses two-digit years (YYMMDD) and lowercased airport
// codes. Child ages are joined by a literal %7C (percent-encoded pipe);
// infants are not encoded.
func EncodeSkyscanner(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "060102")
	if err != nil {
		return "", &EncodingError{Site: Skyscanner, Err: err}
	}

	origin := strings.ToLower(req.Origin)
	destination := strings.ToLower(req.Destination)

	u := fmt.Sprintf("%s/%s/%s/%s/", skyscannerBase, origin, destination, depart)
	if ret != "" {
		u += ret + "/"
	}

	u += fmt.Sprintf("?adultsv2=%d", req.Adults)
	if req.Children > 0 {
		ages := make([]string, req.Children)
		for i := range ages {
			ages[i] = skyscannerChildAge
		}
		u += "&childrenv2=" + strings.Join(ages, "%7C")
	}

	cabin, ok := skyscannerCabins[req.Cabin]
	if !ok {
		cabin = "economy"
	}
	u += "&cabinclass=" + cabin + "&currency=USD&locale=en-US"

	return u, nil
}
