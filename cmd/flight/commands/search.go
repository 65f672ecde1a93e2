package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skybooker/flight-cli/internal/config"
	"github.com/skybooker/flight-cli/internal/core"
	"github.com/skybooker/flight-cli/internal/kiwi"
	"github.com/skybooker/flight-cli/internal/logging"
	"github.com/skybooker/flight-cli/internal/output"
)

func SearchCmd() *cobra.Command {
	var (
		opts   core.SearchOptions
		book   bool
		noBook bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for flights and optionally book the best match",
		Example: `  flight search --date 17/09/2018 --flight_from PRG --to LGW
  flight search --date 17/09/2018 --flight_from PRG --to LGW --returning 5 --fastest --bags 1 --book`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.OneWay = cmd.Flags().Changed("one_way")
			opts.ReturnSet = cmd.Flags().Changed("returning")
			opts.Cheapest = cmd.Flags().Changed("cheapest")
			opts.Fastest = cmd.Flags().Changed("fastest")

			req, err := core.BuildSearchRequest(opts)
			if err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			asJSON, _ := cmd.Flags().GetBool("json")
			cfg := config.Load()
			client := kiwi.NewClient(cfg, logger)

			if !asJSON {
				output.SearchBanner(req)
			}

			result, err := client.SearchFlights(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				if err := output.JSON(result); err != nil {
					return err
				}
			} else {
				output.FlightDetails(result.Chosen, req.TripType == core.TripReturn)
			}

			if noBook {
				return nil
			}
			if !book {
				if !confirmBooking(cmd.InOrStdin()) {
					output.NotBooked()
					return nil
				}
			}

			if !asJSON {
				output.BookingBanner(req.Bags)
			}

			conf, err := client.SaveBooking(cmd.Context(), result.Chosen, req, cfg.Passenger)
			if err != nil {
				return err
			}

			if asJSON {
				return output.JSON(conf)
			}
			output.Confirmation(*conf)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Departure date in DD/MM/YYYY format (required)")
	cmd.Flags().StringVar(&opts.From, "flight_from", "", "Departure airport IATA code (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Destination airport IATA code (required)")
	cmd.Flags().Bool("one_way", false, "Search only for a one-way ticket (default)")
	cmd.Flags().IntVar(&opts.ReturnNights, "returning", 0, "Number of nights to stay in destination")
	cmd.Flags().Bool("cheapest", false, "Pick the cheapest flight (default)")
	cmd.Flags().Bool("fastest", false, "Pick the fastest flight")
	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "Search only for direct flights")
	cmd.Flags().IntVar(&opts.Bags, "bags", 0, "Number of big luggage pieces to carry")
	cmd.Flags().BoolVar(&book, "book", false, "Book the selected flight without asking")
	cmd.Flags().BoolVar(&noBook, "no-book", false, "Search only, never book")

	return cmd
}

// confirmBooking asks for a y/n answer, repeating until it gets one.
// EOF counts as no.
func confirmBooking(in io.Reader) bool {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(output.Writer, "Do you wish to book the flight? y/n: ")
		if !scanner.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true
		case "n":
			return false
		}
	}
}
