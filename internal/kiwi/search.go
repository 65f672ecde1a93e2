package kiwi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skybooker/flight-cli/internal/core"
)

type searchResponse struct {
	Data []apiFlight `json:"data"`
}

type apiFlight struct {
	ID             string      `json:"id"`
	FlyFrom        string      `json:"flyFrom"`
	FlyTo          string      `json:"flyTo"`
	CityFrom       string      `json:"cityFrom"`
	CityTo         string      `json:"cityTo"`
	Price          *float64    `json:"price"`
	Duration       apiDuration `json:"duration"`
	FlyDuration    string      `json:"fly_duration"`
	ReturnDuration string      `json:"return_duration"`
	BookingToken   string      `json:"booking_token"`
	Route          []apiLeg    `json:"route"`
}

type apiDuration struct {
	Total *int64 `json:"total"` // seconds
}

type apiLeg struct {
	FlyFrom  string `json:"flyFrom"`
	FlyTo    string `json:"flyTo"`
	Airline  string `json:"airline"`
	FlightNo int    `json:"flight_no"`
	Return   int    `json:"return"`
}

// SearchFlights runs one search against the provider and returns the
// options ranked by the requested preference, with the top entry chosen.
func (c *Client) SearchFlights(ctx context.Context, req core.SearchRequest) (*core.SearchResult, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, &core.APIError{Op: "search", Msg: "bad search endpoint: " + err.Error()}
	}
	u.RawQuery = c.searchQuery(req).Encode()

	c.logger.Debug("searching flights",
		zap.String("flyFrom", req.Origin),
		zap.String("to", req.Destination),
		zap.String("typeFlight", string(req.TripType)),
		zap.String("sort", string(req.Sort)),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &core.APIError{Op: "search", Msg: err.Error()}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &core.NetworkError{Op: "search", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &core.APIError{Op: "search", Status: resp.StatusCode, Msg: "error payload from provider"}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &core.APIError{Op: "search", Msg: "malformed response body: " + err.Error()}
	}
	if len(body.Data) == 0 {
		return nil, &core.NoResultsError{Origin: req.Origin, Destination: req.Destination}
	}

	options := make([]core.FlightOption, 0, len(body.Data))
	for _, f := range body.Data {
		opt, err := f.toOption()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	core.Rank(options, req.Sort)

	return &core.SearchResult{
		Request:    req,
		Options:    options,
		Chosen:     options[0],
		TotalFound: len(options),
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func (c *Client) searchQuery(req core.SearchRequest) url.Values {
	date := req.DepartDate.Format(core.DateLayout)

	q := url.Values{}
	q.Set("flyFrom", req.Origin)
	q.Set("to", req.Destination)
	q.Set("dateFrom", date)
	q.Set("dateTo", date)
	q.Set("partner", c.partner)
	q.Set("typeFlight", string(req.TripType))

	if req.DirectOnly {
		q.Set("directFlights", "1")
	} else {
		q.Set("directFlights", "0")
	}
	// oneforcity narrows the result to one cheapest flight per city
	if req.Sort == core.SortCheapest {
		q.Set("oneforcity", "1")
	} else {
		q.Set("oneforcity", "0")
	}
	if req.TripType == core.TripReturn {
		q.Set("daysInDestinationFrom", strconv.Itoa(req.ReturnNights))
		q.Set("daysInDestinationTo", strconv.Itoa(req.ReturnNights))
	}
	return q
}

// Search prices come back in the provider default currency, EUR. The
// configured currency only applies to the booking payload.
const searchCurrency = "EUR"

func (f apiFlight) toOption() (core.FlightOption, error) {
	if f.BookingToken == "" {
		return core.FlightOption{}, &core.APIError{Op: "search", Msg: "flight entry without booking token"}
	}
	if f.Price == nil {
		return core.FlightOption{}, &core.APIError{Op: "search", Msg: "flight entry without price"}
	}
	if f.Duration.Total == nil {
		return core.FlightOption{}, &core.APIError{Op: "search", Msg: "flight entry without duration"}
	}

	duration := time.Duration(*f.Duration.Total) * time.Second
	legs := make([]core.Leg, 0, len(f.Route))
	for _, l := range f.Route {
		legs = append(legs, core.Leg{
			From:     l.FlyFrom,
			To:       l.FlyTo,
			Airline:  l.Airline,
			FlightNo: l.FlightNo,
			IsReturn: l.Return == 1,
		})
	}

	return core.FlightOption{
		ID:              f.ID,
		Origin:          f.FlyFrom,
		Destination:     f.FlyTo,
		CityFrom:        f.CityFrom,
		CityTo:          f.CityTo,
		Price:           *f.Price,
		Currency:        searchCurrency,
		Duration:        duration,
		DurationMinutes: int(duration.Minutes()),
		FlyDuration:     f.FlyDuration,
		ReturnDuration:  f.ReturnDuration,
		Legs:            legs,
		BookingToken:    f.BookingToken,
	}, nil
}
