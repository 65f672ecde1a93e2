package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/skybooker/flight-cli/internal/core"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := Writer
	var buf bytes.Buffer
	Writer = &buf
	defer func() { Writer = old }()
	fn()
	return buf.String()
}

func TestSearchBanner(t *testing.T) {
	req := core.SearchRequest{
		Origin:      "PRG",
		Destination: "LGW",
		TripType:    core.TripOneWay,
		Sort:        core.SortCheapest,
	}

	got := capture(t, func() { SearchBanner(req) })

	want := "Searching for cheapest, oneway flight, from PRG to LGW\n"
	if got != want {
		t.Errorf("banner = %q, want %q", got, want)
	}
}

func TestFlightDetails_OneWay(t *testing.T) {
	opt := core.FlightOption{
		Origin:      "PRG",
		Destination: "LGW",
		CityFrom:    "Prague",
		CityTo:      "London",
		Price:       104,
		Currency:    "EUR",
		FlyDuration: "2h 05m",
	}

	got := capture(t, func() { FlightDetails(opt, false) })

	for _, line := range []string{
		"Flight from: PRG (Prague)",
		"To: LGW (London)",
		"Price: 104 EUR",
		"Flight duration: 2h 05m",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("output missing %q:\n%s", line, got)
		}
	}
	if strings.Contains(got, "Return duration") {
		t.Errorf("one-way output must not show return duration:\n%s", got)
	}
}

func TestFlightDetails_RoundTrip(t *testing.T) {
	opt := core.FlightOption{
		Origin:         "PRG",
		Destination:    "LGW",
		Price:          210,
		Currency:       "EUR",
		FlyDuration:    "2h 05m",
		ReturnDuration: "2h 20m",
	}

	got := capture(t, func() { FlightDetails(opt, true) })

	if !strings.Contains(got, "Return duration: 2h 20m") {
		t.Errorf("round-trip output missing return duration:\n%s", got)
	}
}

func TestFlightDetails_DurationFallback(t *testing.T) {
	opt := core.FlightOption{
		Origin:      "PRG",
		Destination: "LGW",
		Price:       104,
		Currency:    "EUR",
		Duration:    125 * time.Minute,
	}

	got := capture(t, func() { FlightDetails(opt, false) })

	if !strings.Contains(got, "Flight duration: 2h 05m") {
		t.Errorf("fallback duration wrong:\n%s", got)
	}
}

func TestConfirmation(t *testing.T) {
	got := capture(t, func() {
		Confirmation(core.BookingConfirmation{BookingID: "12345", Status: "confirmed"})
	})

	if got != "Your flight was booked, booking id: 12345\n" {
		t.Errorf("confirmation = %q", got)
	}
}

func TestBookingBanner(t *testing.T) {
	got := capture(t, func() { BookingBanner(2) })

	if !strings.Contains(got, "Booking flight with 2 bags") {
		t.Errorf("banner = %q", got)
	}
}
