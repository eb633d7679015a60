package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/rendering"
)

var (
	renderInputFile    string
	renderFormat       string
	renderTemplateFile string
	renderOutFile      string
	renderTitle        string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a letter as HTML, LaTeX or plain text",
	Long: `Composes a letter and renders it as a document.

HTML output is print-ready; open it in a browser and print, or use the
print command. LaTeX output compiles with xelatex. --template replaces the
embedded template for html and latex.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to LetterInputs JSON (\"-\" for stdin)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, latex or text")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Custom template file for the chosen format (default from config, else embedded)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "HTML document title (default: subject line)")

	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	format, err := rendering.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	in, err := loadInputs(cmd, renderInputFile)
	if err != nil {
		return err
	}

	content, err := composer.Generate(in)
	if err != nil {
		return fmt.Errorf("failed to generate letter: %w", err)
	}

	templatePath := renderTemplateFile
	if templatePath == "" {
		templatePath = appConfig.Letter.TemplateFor(string(format))
	}

	doc, err := rendering.Render(content, format, rendering.Options{
		TemplatePath: templatePath,
		Language:     in.Language,
		Title:        renderTitle,
	})
	if err != nil {
		return fmt.Errorf("failed to render letter: %w", err)
	}

	if format == rendering.FormatText {
		doc += "\n"
	}
	return writeOutput(cmd, renderOutFile, []byte(doc))
}
