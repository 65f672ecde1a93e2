package kiwi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skybooker/flight-cli/internal/config"
	"github.com/skybooker/flight-cli/internal/core"
)

type bookingPayload struct {
	Lang              string             `json:"lang"`
	Bags              int                `json:"bags"`
	Passengers        []config.Passenger `json:"passengers"`
	Locale            string             `json:"locale"`
	Currency          string             `json:"currency"`
	CustomerLoginID   string             `json:"customerLoginID"`
	CustomerLoginName string             `json:"customerLoginName"`
	BookingToken      string             `json:"booking_token"`
	Affily            string             `json:"affily"`
	BookedAt          string             `json:"booked_at"`
	TransactionID     string             `json:"transaction_id"`
}

type bookingResponse struct {
	BookingID json.Number `json:"booking_id"`
	Status    string      `json:"status"`
}

// SaveBooking sends the selected flight to the booking endpoint. The
// default endpoint is a mock and never reserves real inventory.
func (c *Client) SaveBooking(ctx context.Context, opt core.FlightOption, req core.SearchRequest, passenger config.Passenger) (*core.BookingConfirmation, error) {
	txID := uuid.NewString()
	payload := bookingPayload{
		Lang:              "en",
		Bags:              req.Bags,
		Passengers:        []config.Passenger{passenger},
		Locale:            "en",
		Currency:          c.currency,
		CustomerLoginID:   "unknown",
		CustomerLoginName: "unknown",
		BookingToken:      opt.BookingToken,
		Affily:            "affil_id",
		BookedAt:          "affil_id",
		TransactionID:     txID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &core.BookingError{Reason: "encode payload: " + err.Error()}
	}

	c.logger.Debug("booking flight",
		zap.String("transactionId", txID),
		zap.Int("bags", req.Bags),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bookingURL, bytes.NewReader(body))
	if err != nil {
		return nil, &core.BookingError{Reason: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &core.NetworkError{Op: "booking", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &core.BookingError{Status: resp.StatusCode, Reason: "booking endpoint refused the request"}
	}

	var conf bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		return nil, &core.BookingError{Reason: "malformed confirmation body: " + err.Error()}
	}
	if conf.Status != "" && conf.Status != "confirmed" {
		return nil, &core.BookingError{Reason: "booking not confirmed: " + conf.Status}
	}
	if conf.BookingID.String() == "" {
		return nil, &core.BookingError{Reason: "confirmation without booking id"}
	}

	return &core.BookingConfirmation{
		BookingID:     conf.BookingID.String(),
		Status:        "confirmed",
		TransactionID: txID,
	}, nil
}
