package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/types"
)

var (
	editInputFile   string
	editOutFile     string
	editSets        []string
	editPoints      []string
	editAddPoints   int
	editRemovePoint []int
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit fields and points of a letter inputs document",
	Long: `Applies edits to a LetterInputs JSON document and writes the result.

Edits run in this order: --set, --point, --remove-point, --add-point.
Removing the only remaining point clears it instead.

Example:
  letter_agent edit -i letter.json --set tone=casual --point 0="I got selected" --add-point 1`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editInputFile, "input", "i", "", "Path to LetterInputs JSON (\"-\" for stdin)")
	editCmd.Flags().StringVarP(&editOutFile, "out", "o", "", "Output file (default: stdout)")
	editCmd.Flags().StringArrayVar(&editSets, "set", nil, "Set a field, e.g. --set subject=\"Leave request\" (repeatable)")
	editCmd.Flags().StringArrayVar(&editPoints, "point", nil, "Replace a point by index, e.g. --point 1=\"text\" (repeatable)")
	editCmd.Flags().IntVar(&editAddPoints, "add-point", 0, "Append this many empty points")
	editCmd.Flags().IntSliceVar(&editRemovePoint, "remove-point", nil, "Remove points by index, applied in order given")

	_ = editCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd, editInputFile)
	if err != nil {
		return err
	}

	in, err = applyEdits(in, editSets, editPoints)
	if err != nil {
		return err
	}

	points := in.ContextPoints
	for _, idx := range editRemovePoint {
		points, err = types.RemovePoint(points, idx)
		if err != nil {
			return fmt.Errorf("--remove-point: %w", err)
		}
	}
	for i := 0; i < editAddPoints; i++ {
		points = types.AppendPoint(points)
	}
	in = in.WithPoints(points)

	data, err := marshalJSON(in)
	if err != nil {
		return err
	}
	return writeOutput(cmd, editOutFile, data)
}
