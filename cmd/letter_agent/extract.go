package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/rendering"
)

var (
	extractInputFile string
	extractFormat    string
	extractOutFile   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Read a rendered HTML letter back into text or JSON",
	Long: `Reads a page produced by "render --format html" (possibly edited by hand
in a browser or editor) and recovers the letter from it.

--format text prints the flattened letter; --format json prints every section.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "input", "i", "", "Path to the HTML page (\"-\" for stdin)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "text", "Output format: text or json")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Output file (default: stdout)")

	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractFormat != "text" && extractFormat != "json" {
		return fmt.Errorf("unsupported format %q (want text or json)", extractFormat)
	}

	data, err := readDocument(cmd, extractInputFile)
	if err != nil {
		return err
	}

	var out []byte
	if extractFormat == "json" {
		content, err := rendering.ContentFromHTML(string(data))
		if err != nil {
			return fmt.Errorf("failed to extract letter from %s: %w", extractInputFile, err)
		}
		out, err = marshalJSON(content)
		if err != nil {
			return err
		}
	} else {
		text, err := rendering.PlainTextFromHTML(string(data))
		if err != nil {
			return fmt.Errorf("failed to extract letter from %s: %w", extractInputFile, err)
		}
		out = []byte(text + "\n")
	}

	return writeOutput(cmd, extractOutFile, out)
}
