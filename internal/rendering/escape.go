package rendering

import "strings"

// latexReplacer maps LaTeX special characters to their escaped forms.
// Special characters: \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}

// escapeIndentedLaTeX escapes a signature line and keeps its leading
// spaces as non-breaking spaces, which LaTeX would otherwise drop.
func escapeIndentedLaTeX(line string) string {
	body := strings.TrimLeft(line, " ")
	indent := len(line) - len(body)
	return strings.Repeat("~", indent) + EscapeLaTeX(body)
}
