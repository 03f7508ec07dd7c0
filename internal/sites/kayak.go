package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const kayakBase = "https://www.kayak.com/flights"

// EncodeKayak uses the query-param passenger scheme (`fs=adults=N`).
// Infants are never encoded: Kayak has no URL slot for lap infants.
func EncodeKayak(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "2006-01-02")
	if err != nil {
		return "", &EncodingError{Site: Kayak, Err: err}
	}

	u := fmt.Sprintf("%s/%s-%s/%s", kayakBase, req.Origin, req.Destination, depart)
	if ret != "" {
		u += "/" + ret
	}

	u += fmt.Sprintf("?sort=bestflight_a&fs=adults=%d", req.Adults)
	if req.Children > 0 {
		u += fmt.Sprintf(";children=%d", req.Children)
	}

	return u, nil
}
