package airports

import "strings"

// Airport describes a known IATA airport. The list is advisory: codes
// outside it are still valid searches, they just display as bare codes.
type Airport struct {
	Code string
	City string
	Name string
}

var byCode = map[string]Airport{
	// US
	"SFO": {"SFO", "San Francisco", "San Francisco International"},
	"LAX": {"LAX", "Los Angeles", "Los Angeles International"},
	"JFK": {"JFK", "New York", "John F. Kennedy International"},
	"EWR": {"EWR", "Newark", "Newark Liberty International"},
	"ORD": {"ORD", "Chicago", "O'Hare International"},
	"ATL": {"ATL", "Atlanta", "Hartsfield-Jackson Atlanta International"},
	"SEA": {"SEA", "Seattle", "Seattle-Tacoma International"},
	"DEN": {"DEN", "Denver", "Denver International"},
	"BOS": {"BOS", "Boston", "Logan International"},
	"MIA": {"MIA", "Miami", "Miami International"},
	"DFW": {"DFW", "Dallas", "Dallas/Fort Worth International"},
	"IAH": {"IAH", "Houston", "George Bush Intercontinental"},
	"PHX": {"PHX", "Phoenix", "Sky Harbor International"},
	"LAS": {"LAS", "Las Vegas", "Harry Reid International"},
	"SAN": {"SAN", "San Diego", "San Diego International"},

	// Europe
	"LHR": {"LHR", "London", "Heathrow"},
	"CDG": {"CDG", "Paris", "Charles de Gaulle"},
	"AMS": {"AMS", "Amsterdam", "Schiphol"},
	"FRA": {"FRA", "Frankfurt", "Frankfurt am Main"},
	"MAD": {"MAD", "Madrid", "Adolfo Suarez Madrid-Barajas"},
	"FCO": {"FCO", "Rome", "Fiumicino"},

	// Asia-Pacific & Middle East
	"NRT": {"NRT", "Tokyo", "Narita International"},
	"HND": {"HND", "Tokyo", "Haneda"},
	"SIN": {"SIN", "Singapore", "Changi"},
	"HKG": {"HKG", "Hong Kong", "Hong Kong International"},
	"ICN": {"ICN", "Seoul", "Incheon International"},
	"SYD": {"SYD", "Sydney", "Kingsford Smith"},
	"DXB": {"DXB", "Dubai", "Dubai International"},
	"CGK": {"CGK", "Jakarta", "Soekarno-Hatta International"},
	"DPS": {"DPS", "Bali", "Ngurah Rai International"},
}

// Lookup returns metadata for a known code.
func Lookup(code string) (Airport, bool) {
	a, ok := byCode[strings.ToUpper(code)]
	return a, ok
}

// Known reports whether code is in the closed airport list.
func Known(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// CityOrCode returns the city name for display, falling back to the
// code itself for airports outside the list.
func CityOrCode(code string) string {
	if a, ok := Lookup(code); ok {
		return a.City
	}
	return strings.ToUpper(code)
}
