package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/export"
	"github.com/jonathan/letter-studio/internal/rendering"
)

var (
	printInputFile string
	printOutFile   string
	printTimeout   time.Duration
	printLandscape bool
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a letter to PDF through headless Chrome",
	Long: `Composes a letter, renders the HTML page and hands it to the browser's
print-to-PDF. Requires Chrome or Chromium (see print.exec_path in the config).`,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&printInputFile, "input", "i", "", "Path to LetterInputs JSON (\"-\" for stdin)")
	printCmd.Flags().StringVarP(&printOutFile, "out", "o", "letter.pdf", "Output PDF file")
	printCmd.Flags().DurationVar(&printTimeout, "timeout", 0, "Print timeout (default from config)")
	printCmd.Flags().BoolVar(&printLandscape, "landscape", false, "Landscape orientation")

	_ = printCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd, printInputFile)
	if err != nil {
		return err
	}

	content, err := composer.Generate(in)
	if err != nil {
		return fmt.Errorf("failed to generate letter: %w", err)
	}

	html, err := rendering.RenderHTML(content, rendering.Options{
		TemplatePath: appConfig.Letter.HTMLTemplate,
		Language:     in.Language,
	})
	if err != nil {
		return fmt.Errorf("failed to render letter: %w", err)
	}

	timeout := printTimeout
	if timeout <= 0 {
		timeout = appConfig.Print.Timeout
	}

	printer := export.NewChromePrinter(export.PrintOptions{
		Timeout:   timeout,
		Landscape: printLandscape,
		ExecPath:  appConfig.Print.ExecPath,
	}, logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pdf, err := printer.PrintPDF(ctx, html)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, printOutFile, pdf); err != nil {
		return err
	}
	logger.Info("letter printed", zap.String("path", printOutFile), zap.Int("bytes", len(pdf)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", printOutFile)
	return nil
}
