package core

import (
	"errors"
	"testing"
)

func TestBuildSearchRequest_Defaults(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{
		Date: "17/09/2018",
		From: "PRG",
		To:   "LGW",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.TripType != TripOneWay {
		t.Errorf("expected one-way by default, got %s", req.TripType)
	}
	if req.Sort != SortCheapest {
		t.Errorf("expected cheapest by default, got %s", req.Sort)
	}
	if req.DirectOnly {
		t.Error("expected direct filter off by default")
	}
	if req.Bags != 0 {
		t.Errorf("expected 0 bags by default, got %d", req.Bags)
	}
	if got := req.DepartDate.Format(DateLayout); got != "17/09/2018" {
		t.Errorf("departure date mangled: %s", got)
	}
}

func TestBuildSearchRequest_ReturnTrip(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{
		Date:         "17/09/2018",
		From:         "PRG",
		To:           "LGW",
		ReturnSet:    true,
		ReturnNights: 5,
		Fastest:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.TripType != TripReturn {
		t.Errorf("expected round trip, got %s", req.TripType)
	}
	if req.ReturnNights != 5 {
		t.Errorf("expected 5 nights, got %d", req.ReturnNights)
	}
	if req.Sort != SortFastest {
		t.Errorf("expected fastest, got %s", req.Sort)
	}
}

func TestBuildSearchRequest_TripTypeImpliesNights(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGW"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.TripType == TripReturn || req.ReturnNights != 0 {
		t.Errorf("one-way request must not carry return nights: %+v", req)
	}
}

func TestBuildSearchRequest_LowercaseIATANormalized(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{Date: "17/09/2018", From: "prg", To: "lgw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Origin != "PRG" || req.Destination != "LGW" {
		t.Errorf("IATA codes not normalized: %s %s", req.Origin, req.Destination)
	}
}

func TestBuildSearchRequest_Failures(t *testing.T) {
	cases := []struct {
		name string
		opts SearchOptions
	}{
		{"one_way and returning together", SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGW", OneWay: true, ReturnSet: true, ReturnNights: 5}},
		{"cheapest and fastest together", SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGW", Cheapest: true, Fastest: true}},
		{"missing date", SearchOptions{From: "PRG", To: "LGW"}},
		{"unparseable date", SearchOptions{Date: "2018-09-17", From: "PRG", To: "LGW"}},
		{"missing origin", SearchOptions{Date: "17/09/2018", To: "LGW"}},
		{"missing destination", SearchOptions{Date: "17/09/2018", From: "PRG"}},
		{"bad origin code", SearchOptions{Date: "17/09/2018", From: "PR1", To: "LGW"}},
		{"too long destination", SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGWX"}},
		{"negative bags", SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGW", Bags: -1}},
		{"zero return nights", SearchOptions{Date: "17/09/2018", From: "PRG", To: "LGW", ReturnSet: true, ReturnNights: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSearchRequest(tc.opts)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}
