package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Production Skypicker search endpoint.
	DefaultSearchURL = "https://api.skypicker.com/flights"
	// Apiary mock of the Skypicker booking API. Never reserves real
	// inventory; a production rollout would add a check_flights step
	// before switching this to the live endpoint.
	DefaultBookingURL = "https://private-anon-7a22d853a6-skypickerbookingapi1.apiary-mock.com/api/v0.1/save_booking?v=2"

	defaultTimeoutSeconds = 15
)

// Passenger is the traveler profile sent with a booking request. In a
// production setup this would come from a user profile, not config.
type Passenger struct {
	Name        string `yaml:"name" json:"name"`
	Surname     string `yaml:"surname" json:"surname"`
	Title       string `yaml:"title" json:"title"`
	Phone       string `yaml:"phone" json:"phone"`
	Birthday    int64  `yaml:"birthday" json:"birthday"`
	Expiration  int64  `yaml:"expiration" json:"expiration"`
	CardNo      string `yaml:"cardNo" json:"cardno"`
	Nationality string `yaml:"nationality" json:"nationality"`
	Email       string `yaml:"email" json:"email"`
	Category    string `yaml:"category" json:"category"`
}

// MissingFields lists the profile fields a booking cannot go out without.
func (p Passenger) MissingFields() []string {
	var missing []string
	checks := []struct {
		label string
		value string
	}{
		{"name", p.Name},
		{"surname", p.Surname},
		{"phone", p.Phone},
		{"nationality", p.Nationality},
		{"email", p.Email},
		{"category", p.Category},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			missing = append(missing, c.label)
		}
	}
	return missing
}

type Config struct {
	SearchURL      string    `yaml:"searchUrl"`
	BookingURL     string    `yaml:"bookingUrl"`
	Currency       string    `yaml:"currency"`
	Partner        string    `yaml:"partner"`
	TimeoutSeconds int       `yaml:"timeoutSeconds"`
	Passenger      Passenger `yaml:"passenger"`
}

func DefaultConfig() *Config {
	return &Config{
		SearchURL:      DefaultSearchURL,
		BookingURL:     DefaultBookingURL,
		Currency:       "gbp",
		Partner:        "picky",
		TimeoutSeconds: defaultTimeoutSeconds,
		Passenger: Passenger{
			Name:        "test",
			Surname:     "test",
			Title:       "ms",
			Phone:       "+44 45662344432",
			Birthday:    326246400,
			Expiration:  1760054400,
			CardNo:      "XXXXXXXX",
			Nationality: "CZ",
			Email:       "email.address@gmail.com",
			Category:    "adults",
		},
	}
}

// Load reads the config file if present, then applies env overrides.
func Load() *Config {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if v := os.Getenv("FLIGHT_SEARCH_URL"); v != "" {
		cfg.SearchURL = v
	}
	if v := os.Getenv("FLIGHT_BOOKING_URL"); v != "" {
		cfg.BookingURL = v
	}
	if v := os.Getenv("FLIGHT_CURRENCY"); v != "" {
		cfg.Currency = strings.ToLower(v)
	}
	if v := os.Getenv("FLIGHT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}

	return cfg
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MockBooking reports whether the booking endpoint is the
// non-authoritative mock rather than a live API.
func (c *Config) MockBooking() bool {
	return strings.Contains(c.BookingURL, "mock")
}

func configPath() string {
	if p := os.Getenv("FLIGHT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "flight-cli", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
