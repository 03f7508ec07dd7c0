package sites

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// roundTripRequest is the reference search: SFO-LAX, 2025-07-04 out,
// 2025-07-11 back, 2 adults, 1 child, business.
func roundTripRequest() models.SearchRequest {
	ret := date("2025-07-11")
	return models.SearchRequest{
		Origin:      "SFO",
		Destination: "LAX",
		DepartDate:  date("2025-07-04"),
		ReturnDate:  &ret,
		TripType:    models.RoundTrip,
		Adults:      2,
		Children:    1,
		Infants:     0,
		Cabin:       models.Business,
	}
}

func oneWayRequest() models.SearchRequest {
	req := roundTripRequest()
	req.TripType = models.OneWay
	req.ReturnDate = nil
	return req
}

func TestEncode_RoundTripURLs(t *testing.T) {
	req := roundTripRequest()

	tests := []struct {
		site ID
		want string
	}{
		{
			site: GoogleFlights,
			want: "https://www.google.com/travel/flights?q=Flights%20from%20SFO%20to%20LAX%20on%202025-07-04%20through%202025-07-11",
		},
		{
			site: Kayak,
			want: "https://www.kayak.com/flights/SFO-LAX/2025-07-04/2025-07-11?sort=bestflight_a&fs=adults=2;children=1",
		},
		{
			site: Momondo,
			want: "https://www.momondo.com/flights/SFO-LAX/2025-07-04/2025-07-11?adults=2&children=1",
		},
		{
			site: Skyscanner,
			want: "https://www.skyscanner.com/transport/flights/sfo/lax/250704/250711/?adultsv2=2&childrenv2=10&cabinclass=business&currency=USD&locale=en-US",
		},
		{
			site: Expedia,
			want: "https://www.expedia.com/go/flight/search/Roundtrip/2025-07-04/2025-07-11?load=1&FromAirport=SFO&ToAirport=LAX&FromTime=362&NumAdult=2&NumChild=1&Child1Age=10",
		},
		{
			site: Priceline,
			want: "https://www.priceline.com/m/fly/search/SFO-LAX-20250704/LAX-SFO-20250711/?cabin-class=BUS&no-date-search=false&search-type=0110&num-adults=2&num-children=1",
		},
		{
			site: Hopper,
			want: "https://www.hopper.com/flights/shop/?origin=SFO&destination=LAX&departureDate=2025-07-04&returnDate=2025-07-11&tripCategory=round_trip&adultsCount=2&childrenCount=1&infantsInSeatCount=0&infantsOnLapCount=0&flightShopProgress=1&flightShopType=default&maxPrice=9007199254740991&noLCC=false&stopsOption=ANY_NUMBER",
		},
		{
			site: CheapOair,
			want: "https://www.cheapoair.com/air/listing?from=SFO&dtype1=City&to=LAX&rtype1=City&fromDt=07/04/2025&toDt=07/11/2025&fromTm=1100&toTm=1100&rt=true&ad=2&se=0&ch=1&infl=0&infs=0&class=3&airpref=&preftyp=1&daan=&raan=&dst=&rst=&IsNS=false&lang=en-US&searchInitiated=true&childAge=c0-10",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.site), func(t *testing.T) {
			got, err := Encode(tt.site, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestEncode_OneWayDropsReturnTokens(t *testing.T) {
	req := oneWayRequest()

	// The return date in every format the eight sites use.
	returnTokens := []string{"2025-07-11", "250711", "20250711", "07/11/2025"}

	for _, site := range All {
		t.Run(string(site), func(t *testing.T) {
			got, err := Encode(site, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, token := range returnTokens {
				if strings.Contains(got, token) {
					t.Errorf("one-way URL contains return token %q: %s", token, got)
				}
			}
		})
	}
}

func TestEncodeExpedia_OneWayDuplicatesDepartDate(t *testing.T) {
	got, err := EncodeExpedia(oneWayRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "/oneway/2025-07-04/2025-07-04?") {
		t.Errorf("departure date not duplicated into both slots: %s", got)
	}
}

func TestEncodeCheapOair_OneWay(t *testing.T) {
	got, err := EncodeCheapOair(oneWayRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "rt=false") {
		t.Errorf("missing rt=false: %s", got)
	}
	if strings.Contains(got, "toDt=") {
		t.Errorf("one-way URL carries toDt: %s", got)
	}
	if !strings.Contains(got, "childAge=c0-10") {
		t.Errorf("missing childAge for 1 child: %s", got)
	}
}

func TestEncodeKayak_OneWayAdultsOnly(t *testing.T) {
	req := oneWayRequest()
	req.Children = 0
	req.Infants = 2

	got, err := EncodeKayak(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://www.kayak.com/flights/SFO-LAX/2025-07-04?sort=bestflight_a&fs=adults=2"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestEncodeSkyscanner_ChildAgesJoinedByEncodedPipe(t *testing.T) {
	req := roundTripRequest()
	req.Children = 3

	got, err := EncodeSkyscanner(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "childrenv2=10%7C10%7C10") {
		t.Errorf("child ages not pipe-joined: %s", got)
	}
}

func TestEncode_UnrecognizedCabinFallsBack(t *testing.T) {
	req := roundTripRequest()
	req.Cabin = models.CabinClass("Suite")

	tests := []struct {
		site ID
		want string
	}{
		{Skyscanner, "cabinclass=economy"},
		{Priceline, "cabin-class=ECO"},
		{CheapOair, "class=1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.site), func(t *testing.T) {
			got, err := Encode(tt.site, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected default cabin token %q in %s", tt.want, got)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	req := roundTripRequest()

	for _, site := range All {
		first, err := Encode(site, req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", site, err)
		}
		second, err := Encode(site, req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", site, err)
		}
		if first != second {
			t.Errorf("%s: encoding not deterministic:\n%s\n%s", site, first, second)
		}
	}
}

func TestEncode_RoundTripWithoutReturnDateFailsFast(t *testing.T) {
	req := roundTripRequest()
	req.ReturnDate = nil

	for _, site := range All {
		t.Run(string(site), func(t *testing.T) {
			_, err := Encode(site, req)
			if !errors.Is(err, ErrMissingReturnDate) {
				t.Errorf("got %v, want ErrMissingReturnDate", err)
			}

			var encErr *EncodingError
			if !errors.As(err, &encErr) || encErr.Site != site {
				t.Errorf("error not attributed to site %s: %v", site, err)
			}
		})
	}
}

func TestEncode_UnknownSite(t *testing.T) {
	_, err := Encode(ID("Orbitz"), roundTripRequest())
	if !errors.Is(err, ErrUnknownSite) {
		t.Errorf("got %v, want ErrUnknownSite", err)
	}
}
