package core

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire and CLI date format, DD/MM/YYYY.
const DateLayout = "02/01/2006"

var validate = validator.New(validator.WithRequiredStructEnabled())

// SearchOptions carries raw flag values plus whether the mutually
// exclusive flags were explicitly set on the command line.
type SearchOptions struct {
	Date         string
	From         string
	To           string
	OneWay       bool
	ReturnNights int
	ReturnSet    bool
	Cheapest     bool
	Fastest      bool
	Direct       bool
	Bags         int
}

// BuildSearchRequest normalizes and validates CLI input into a
// SearchRequest. All failures are ValidationError.
func BuildSearchRequest(opts SearchOptions) (SearchRequest, error) {
	if opts.OneWay && opts.ReturnSet {
		return SearchRequest{}, Validationf("--one_way and --returning are mutually exclusive")
	}
	if opts.Cheapest && opts.Fastest {
		return SearchRequest{}, Validationf("--cheapest and --fastest are mutually exclusive")
	}
	if opts.Date == "" {
		return SearchRequest{}, Validationf("--date is required")
	}
	depart, err := time.Parse(DateLayout, opts.Date)
	if err != nil {
		return SearchRequest{}, Validationf("--date %q is not a valid DD/MM/YYYY date", opts.Date)
	}

	req := SearchRequest{
		DepartDate:  depart,
		Origin:      strings.ToUpper(strings.TrimSpace(opts.From)),
		Destination: strings.ToUpper(strings.TrimSpace(opts.To)),
		TripType:    TripOneWay,
		Sort:        SortCheapest,
		DirectOnly:  opts.Direct,
		Bags:        opts.Bags,
	}
	if opts.ReturnSet {
		if opts.ReturnNights < 1 {
			return SearchRequest{}, Validationf("--returning must be at least 1 night")
		}
		req.TripType = TripReturn
		req.ReturnNights = opts.ReturnNights
	}
	if opts.Fastest {
		req.Sort = SortFastest
	}

	if err := validate.Struct(req); err != nil {
		return SearchRequest{}, asValidationError(err)
	}
	return req, nil
}

var fieldFlag = map[string]string{
	"Origin":       "flight_from",
	"Destination":  "to",
	"ReturnNights": "returning",
	"Bags":         "bags",
}

func asValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Msg: err.Error()}
	}
	fe := verrs[0]
	flag := fieldFlag[fe.Field()]
	if flag == "" {
		flag = strings.ToLower(fe.Field())
	}
	switch fe.Field() {
	case "Origin", "Destination":
		if fe.Tag() == "required" {
			return Validationf("--%s is required", flag)
		}
		return Validationf("--%s %q is not a 3-letter IATA code", flag, fe.Value())
	case "Bags":
		return Validationf("--bags must not be negative")
	case "ReturnNights":
		return Validationf("--returning must be at least 1 night")
	}
	return Validationf("--%s is invalid", flag)
}
