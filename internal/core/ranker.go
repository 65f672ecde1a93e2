package core

import "sort"

// Rank orders options in place by the requested preference.
// Cheapest: ascending price, ties broken by duration.
// Fastest: ascending duration, ties broken by price.
func Rank(options []FlightOption, pref SortPreference) {
	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if pref == SortFastest {
			if a.Duration != b.Duration {
				return a.Duration < b.Duration
			}
			return a.Price < b.Price
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Duration < b.Duration
	})
}
