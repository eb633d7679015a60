package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/types"
)

var (
	sampleDate    string
	sampleOutFile string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the sample letter inputs as JSON",
	Long:  "Writes a ready-to-edit LetterInputs document, dated today unless --date is given.",
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleDate, "date", "", "Letter date text (default: today, e.g. \"October 17th, 2026\")")
	sampleCmd.Flags().StringVarP(&sampleOutFile, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	date := sampleDate
	if date == "" {
		date = types.FormatLetterDate(time.Now())
	}

	data, err := marshalJSON(types.SampleInputs(date))
	if err != nil {
		return err
	}
	return writeOutput(cmd, sampleOutFile, data)
}
