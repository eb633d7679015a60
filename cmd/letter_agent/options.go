package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/catalog"
	"github.com/jonathan/letter-studio/internal/observability"
)

var optionsJSON bool

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List supported tones and language registers",
	RunE:  runOptions,
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	if optionsJSON {
		data, err := marshalJSON(catalog.All())
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", data)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintOptions(catalog.All())
	return nil
}
