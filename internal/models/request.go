package models

import (
	"strings"
	"time"
)

type TripType string

const (
	RoundTrip TripType = "Round Trip"
	OneWay    TripType = "One Way"
)

type CabinClass string

const (
	Economy        CabinClass = "Economy"
	PremiumEconomy CabinClass = "Premium Economy"
	Business       CabinClass = "Business"
	First          CabinClass = "First"
)

// RawSearch carries form-level field values before normalization.
// Airport codes may be mixed case or padded, and a return date may be
// set even for one-way trips.
type RawSearch struct {
	Origin      string
	Destination string
	DepartDate  time.Time
	ReturnDate  *time.Time
	TripType    TripType
	Adults      int
	Children    int
	Infants     int
	Cabin       CabinClass
}

// SearchRequest is the normalized, validated search. Everything
// downstream works from this value and never re-validates it.
type SearchRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartDate  time.Time  `json:"depart_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	TripType    TripType   `json:"trip_type"`
	Adults      int        `json:"adults"`
	Children    int        `json:"children"`
	Infants     int        `json:"infants"`
	Cabin       CabinClass `json:"cabin"`
}

// Normalize canonicalizes a raw search into a SearchRequest. Airport
// codes are trimmed and uppercased; one-way requests drop any supplied
// return date so it never reaches an encoder.
func Normalize(raw RawSearch) (SearchRequest, error) {
	origin := strings.ToUpper(strings.TrimSpace(raw.Origin))
	destination := strings.ToUpper(strings.TrimSpace(raw.Destination))

	if origin == "" || destination == "" {
		return SearchRequest{}, ErrEmptyField
	}
	if len(origin) != 3 || len(destination) != 3 {
		return SearchRequest{}, ErrInvalidCodeLength
	}
	if origin == destination {
		return SearchRequest{}, ErrSameAirport
	}

	adults := raw.Adults
	if adults < 1 {
		adults = 1
	}
	children := raw.Children
	if children < 0 {
		children = 0
	}
	infants := raw.Infants
	if infants < 0 {
		infants = 0
	}
	cabin := raw.Cabin
	if cabin == "" {
		cabin = Economy
	}

	tripType := raw.TripType
	var returnDate *time.Time
	if tripType == OneWay {
		returnDate = nil
	} else {
		tripType = RoundTrip
		if raw.ReturnDate == nil || !raw.ReturnDate.After(raw.DepartDate) {
			return SearchRequest{}, ErrInvalidReturnDate
		}
		d := *raw.ReturnDate
		returnDate = &d
	}

	return SearchRequest{
		Origin:      origin,
		Destination: destination,
		DepartDate:  raw.DepartDate,
		ReturnDate:  returnDate,
		TripType:    tripType,
		Adults:      adults,
		Children:    children,
		Infants:     infants,
		Cabin:       cabin,
	}, nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrEmptyField        ValidationError = "origin and destination are required"
	ErrInvalidCodeLength ValidationError = "airport codes must be exactly 3 letters"
	ErrSameAirport       ValidationError = "origin and destination must be different"
	ErrInvalidReturnDate ValidationError = "return date must be after departure date"
)
