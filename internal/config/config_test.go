package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FLIGHT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	if cfg.SearchURL != DefaultSearchURL {
		t.Errorf("unexpected search url: %s", cfg.SearchURL)
	}
	if !cfg.MockBooking() {
		t.Error("default booking endpoint should be the mock")
	}
	if cfg.Currency != "gbp" {
		t.Errorf("unexpected currency: %s", cfg.Currency)
	}
	if missing := cfg.Passenger.MissingFields(); len(missing) != 0 {
		t.Errorf("default passenger profile incomplete: %v", missing)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FLIGHT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("FLIGHT_SEARCH_URL", "http://localhost:9090/flights")
	t.Setenv("FLIGHT_BOOKING_URL", "http://localhost:9090/book")
	t.Setenv("FLIGHT_CURRENCY", "EUR")
	t.Setenv("FLIGHT_TIMEOUT_SECONDS", "3")

	cfg := Load()

	if cfg.SearchURL != "http://localhost:9090/flights" {
		t.Errorf("search url override ignored: %s", cfg.SearchURL)
	}
	if cfg.BookingURL != "http://localhost:9090/book" {
		t.Errorf("booking url override ignored: %s", cfg.BookingURL)
	}
	if cfg.Currency != "eur" {
		t.Errorf("currency should be lower-cased: %s", cfg.Currency)
	}
	if cfg.Timeout().Seconds() != 3 {
		t.Errorf("timeout override ignored: %s", cfg.Timeout())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("searchUrl: http://example.test/flights\ncurrency: eur\npassenger:\n  name: Jane\n  surname: Doe\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FLIGHT_CONFIG", path)

	cfg := Load()

	if cfg.SearchURL != "http://example.test/flights" {
		t.Errorf("file value ignored: %s", cfg.SearchURL)
	}
	if cfg.Passenger.Name != "Jane" || cfg.Passenger.Surname != "Doe" {
		t.Errorf("passenger not merged from file: %+v", cfg.Passenger)
	}
	if cfg.BookingURL != DefaultBookingURL {
		t.Errorf("unset file field should keep default: %s", cfg.BookingURL)
	}
}
