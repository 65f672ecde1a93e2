package output

import (
	"fmt"
	"time"

	"github.com/skybooker/flight-cli/internal/core"
)

// SearchBanner announces what is being searched, e.g.
// "Searching for cheapest, oneway flight, from PRG to LGW".
func SearchBanner(req core.SearchRequest) {
	fmt.Fprintf(Writer, "Searching for %s, %s flight, from %s to %s\n",
		req.Sort, req.TripType, req.Origin, req.Destination)
}

// FlightDetails prints the selected flight in the terminal layout.
func FlightDetails(opt core.FlightOption, roundTrip bool) {
	fmt.Fprintln(Writer)
	fmt.Fprintf(Writer, "Flight from: %s\n", placeLabel(opt.Origin, opt.CityFrom))
	fmt.Fprintf(Writer, "To: %s\n", placeLabel(opt.Destination, opt.CityTo))
	fmt.Fprintf(Writer, "Price: %.0f %s\n", opt.Price, opt.Currency)
	fmt.Fprintf(Writer, "Flight duration: %s\n", durationLabel(opt))
	if roundTrip && opt.ReturnDuration != "" {
		fmt.Fprintf(Writer, "Return duration: %s\n", opt.ReturnDuration)
	}
}

func BookingBanner(bags int) {
	fmt.Fprintln(Writer)
	fmt.Fprintf(Writer, "Booking flight with %d bags\n", bags)
}

func Confirmation(conf core.BookingConfirmation) {
	fmt.Fprintf(Writer, "Your flight was booked, booking id: %s\n", conf.BookingID)
}

func NotBooked() {
	fmt.Fprintln(Writer, "Flight wasn't booked")
}

func placeLabel(code, city string) string {
	if city == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, city)
}

// durationLabel prefers the provider-formatted duration string and
// falls back to formatting the parsed total.
func durationLabel(opt core.FlightOption) string {
	if opt.FlyDuration != "" {
		return opt.FlyDuration
	}
	d := opt.Duration.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, m)
}
