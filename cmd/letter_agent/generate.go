package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/observability"
	"github.com/jonathan/letter-studio/internal/types"
)

var (
	generateInputFile string
	generateFormat    string
	generateOutFile   string
	generateSets      []string
	generatePoints    []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compose one letter",
	Long: `Composes a letter from a LetterInputs JSON document.

--format text prints the flattened letter; --format json prints every section.
--set and --point override fields of the input before composing.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInputFile, "input", "i", "", "Path to LetterInputs JSON (\"-\" for stdin)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Output format: text or json (default from config)")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringArrayVar(&generateSets, "set", nil, "Override a field, e.g. --set tone=casual (repeatable)")
	generateCmd.Flags().StringArrayVar(&generatePoints, "point", nil, "Replace a point by index, e.g. --point 0=\"text\" (repeatable)")

	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	format := generateFormat
	if format == "" {
		format = appConfig.Letter.Format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (want text or json; use render for html and latex)", format)
	}

	in, err := loadInputs(cmd, generateInputFile)
	if err != nil {
		return err
	}
	in, err = applyEdits(in, generateSets, generatePoints)
	if err != nil {
		return err
	}

	content, err := composer.Generate(in)
	if err != nil {
		return fmt.Errorf("failed to generate letter: %w", err)
	}
	logger.Debug("letter generated",
		zap.String("tone", in.Tone),
		zap.String("language", in.Language),
		zap.Int("paragraphs", len(content.BodyParagraphs)))

	if verbose {
		observability.NewPrinter(os.Stderr).PrintLetter(in, content)
	}

	data, err := formatLetter(content, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, generateOutFile, data)
}

func formatLetter(content *types.LetterContent, format string) ([]byte, error) {
	if format == "json" {
		return marshalJSON(content)
	}
	return []byte(content.FullText + "\n"), nil
}
