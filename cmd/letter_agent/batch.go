package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/observability"
	"github.com/jonathan/letter-studio/internal/schemas"
	"github.com/jonathan/letter-studio/internal/types"
)

var (
	batchInputFile string
	batchOutDir    string
	batchFormat    string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compose many letters concurrently",
	Long: `Composes every letter of a {"letters": [...]} document concurrently.

With --out-dir each letter is written to letter-NNN.txt (or .json); without
it the whole batch is printed as JSON in input order.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputFile, "input", "i", "", "Path to batch JSON (\"-\" for stdin)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "d", "", "Directory for one file per letter")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "text", "Per-letter file format with --out-dir: text or json")

	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchFormat != "text" && batchFormat != "json" {
		return fmt.Errorf("unsupported format %q (want text or json)", batchFormat)
	}

	data, err := readDocument(cmd, batchInputFile)
	if err != nil {
		return err
	}
	batch, err := schemas.DecodeLetterBatch(data)
	if err != nil {
		return fmt.Errorf("invalid batch in %s: %w", batchInputFile, err)
	}
	if limit := appConfig.Letter.BatchLimit; limit > 0 && len(batch.Letters) > limit {
		return fmt.Errorf("batch has %d letters, limit is %d", len(batch.Letters), limit)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	letters, err := composer.GenerateBatch(ctx, batch.Letters)
	if err != nil {
		return fmt.Errorf("failed to generate batch: %w", err)
	}
	logger.Debug("batch generated", zap.Int("letters", len(letters)))

	if verbose {
		observability.NewPrinter(os.Stderr).PrintBatch(batch.Letters, letters)
	}

	if batchOutDir == "" {
		out, err := marshalJSON(types.LetterContents{Letters: letters})
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", out)
	}

	ext := ".txt"
	if batchFormat == "json" {
		ext = ".json"
	}
	for i := range letters {
		out, err := formatLetter(&letters[i], batchFormat)
		if err != nil {
			return err
		}
		path := filepath.Join(batchOutDir, fmt.Sprintf("letter-%03d%s", i+1, ext))
		if err := writeOutput(cmd, path, out); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d letters to %s\n", len(letters), batchOutDir)
	return nil
}
