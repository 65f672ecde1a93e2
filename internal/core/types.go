package core

import (
	"time"
)

type TripType string

const (
	TripOneWay TripType = "oneway"
	TripReturn TripType = "round"
)

type SortPreference string

const (
	SortCheapest SortPreference = "cheapest"
	SortFastest  SortPreference = "fastest"
)

// SearchRequest is the normalized search intent built from CLI flags.
// IATA codes are upper-cased before validation.
type SearchRequest struct {
	DepartDate   time.Time      `json:"departDate"`
	Origin       string         `json:"flyFrom" validate:"required,len=3,alpha,uppercase"`
	Destination  string         `json:"to" validate:"required,len=3,alpha,uppercase"`
	TripType     TripType       `json:"tripType"`
	ReturnNights int            `json:"returnNights,omitempty" validate:"omitempty,gte=1"`
	Sort         SortPreference `json:"sort"`
	DirectOnly   bool           `json:"directOnly"`
	Bags         int            `json:"bags" validate:"gte=0"`
}

type Leg struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Airline  string `json:"airline,omitempty"`
	FlightNo int    `json:"flightNo,omitempty"`
	IsReturn bool   `json:"isReturn,omitempty"`
}

// FlightOption is one itinerary as returned by the search provider.
// Immutable once parsed; the booking token is an opaque provider handle.
type FlightOption struct {
	ID              string        `json:"id"`
	Origin          string        `json:"from"`
	Destination     string        `json:"to"`
	CityFrom        string        `json:"cityFrom,omitempty"`
	CityTo          string        `json:"cityTo,omitempty"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	Duration        time.Duration `json:"-"`
	DurationMinutes int           `json:"durationMinutes"`
	FlyDuration     string        `json:"flyDuration,omitempty"`
	ReturnDuration  string        `json:"returnDuration,omitempty"`
	Legs            []Leg         `json:"legs,omitempty"`
	BookingToken    string        `json:"-"`
}

type SearchResult struct {
	Request    SearchRequest  `json:"query"`
	Options    []FlightOption `json:"options"`
	Chosen     FlightOption   `json:"chosen"`
	TotalFound int            `json:"totalFound"`
	FetchedAt  time.Time      `json:"fetchedAt"`
}

type BookingConfirmation struct {
	BookingID     string `json:"bookingId"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

type DoctorReport struct {
	SearchURL        string   `json:"searchUrl"`
	BookingURL       string   `json:"bookingUrl"`
	MockBooking      bool     `json:"mockBooking"`
	Currency         string   `json:"currency"`
	MissingPassenger []string `json:"missingPassengerFields,omitempty"`
	Healthy          bool     `json:"healthy"`
	Summary          string   `json:"summary"`
}
