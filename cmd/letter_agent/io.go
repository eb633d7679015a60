package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/schemas"
	"github.com/jonathan/letter-studio/internal/types"
)

// readDocument reads path, or stdin when path is "-".
func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--input is required")
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// loadInputs reads and schema-validates one LetterInputs document.
func loadInputs(cmd *cobra.Command, path string) (types.LetterInputs, error) {
	data, err := readDocument(cmd, path)
	if err != nil {
		return types.LetterInputs{}, err
	}
	in, err := schemas.DecodeLetterInputs(data)
	if err != nil {
		return types.LetterInputs{}, fmt.Errorf("invalid letter inputs in %s: %w", path, err)
	}
	return in, nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// splitAssignment splits "key=value" at the first "=".
func splitAssignment(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return key, value, nil
}

// applyEdits applies --set field=value and --point index=text edits in order.
// Escaped "\n" in values becomes a newline so sign-offs can span lines.
func applyEdits(in types.LetterInputs, sets, points []string) (types.LetterInputs, error) {
	for _, s := range sets {
		name, value, err := splitAssignment(s)
		if err != nil {
			return in, fmt.Errorf("--set: %w", err)
		}
		field, err := types.ParseField(name)
		if err != nil {
			return in, err
		}
		in, err = in.With(field, unescapeNewlines(value))
		if err != nil {
			return in, err
		}
	}

	for _, p := range points {
		idx, value, err := splitAssignment(p)
		if err != nil {
			return in, fmt.Errorf("--point: %w", err)
		}
		index, err := strconv.Atoi(idx)
		if err != nil {
			return in, fmt.Errorf("--point: invalid index %q", idx)
		}
		updated, err := types.ReplacePoint(in.ContextPoints, index, value)
		if err != nil {
			return in, err
		}
		in = in.WithPoints(updated)
	}

	return in, nil
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
