package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skybooker/flight-cli/internal/config"
	"github.com/skybooker/flight-cli/internal/core"
	"github.com/skybooker/flight-cli/internal/output"
)

func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate resolved configuration and passenger profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			missing := cfg.Passenger.MissingFields()

			healthy := cfg.SearchURL != "" && cfg.BookingURL != "" && len(missing) == 0
			summary := fmt.Sprintf("search=%s currency=%s", cfg.SearchURL, cfg.Currency)
			if cfg.MockBooking() {
				summary += " | booking endpoint is a mock, no real inventory is reserved"
			}
			if len(missing) > 0 {
				summary += " | incomplete passenger profile: " + strings.Join(missing, ", ")
			}

			report := core.DoctorReport{
				SearchURL:        cfg.SearchURL,
				BookingURL:       cfg.BookingURL,
				MockBooking:      cfg.MockBooking(),
				Currency:         cfg.Currency,
				MissingPassenger: missing,
				Healthy:          healthy,
				Summary:          summary,
			}

			return output.JSON(report)
		},
	}
	return cmd
}
