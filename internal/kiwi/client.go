// Package kiwi talks to the Skypicker flight-search API and its Apiary
// booking mock. The response schema is a third-party contract: it is
// parsed defensively, unknown fields are ignored, and entries missing
// required fields fail the whole response.
package kiwi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skybooker/flight-cli/internal/config"
)

type Client struct {
	httpClient *http.Client
	searchURL  string
	bookingURL string
	currency   string
	partner    string
	logger     *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  cfg.SearchURL,
		bookingURL: cfg.BookingURL,
		currency:   cfg.Currency,
		partner:    cfg.Partner,
		logger:     logger,
	}
}
