package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skybooker/flight-cli/cmd/flight/commands"
)

func main() {
	root := &cobra.Command{
		Use:           "flight",
		Short:         "Flight search and booking CLI",
		Long:          "A single-shot CLI that searches the Skypicker flight API and optionally books the selected flight against the mock booking endpoint.",
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("json", false, "Output results as JSON instead of text")
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")

	root.AddCommand(commands.SearchCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print flight CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("flight v0.1.0")
		},
	}
}
