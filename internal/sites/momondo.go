package sites

import (
	"fmt"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const momondoBase = "https://www.momondo.com/flights"

// EncodeMomondo carries passengers as plain query params; children and
// infants appear only when non-zero.
func EncodeMomondo(req models.SearchRequest) (string, error) {
	depart, ret, err := tripDates(req, "2006-01-02")
	if err != nil {
		return "", &EncodingError{Site: Momondo, Err: err}
	}

	u := fmt.Sprintf("%s/%s-%s/%s", momondoBase, req.Origin, req.Destination, depart)
	if ret != "" {
		u += "/" + ret
	}

	u += fmt.Sprintf("?adults=%d", req.Adults)
	if req.Children > 0 {
		u += fmt.Sprintf("&children=%d", req.Children)
	}
	if req.Infants > 0 {
		u += fmt.Sprintf("&infants=%d", req.Infants)
	}

	return u, nil
}
