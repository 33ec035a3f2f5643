package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	fmt.Fprintf(&b, "⚠️  Warning: %s\n", w.Title)

	if w.Message != "" {
		fmt.Fprintf(&b, "    %s\n", w.Message)
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		fmt.Fprintf(&b, "    Suggestion:\n    %s\n", w.Suggestion)
	}

	warnColor.Fprint(out, b.String())
}

// WarnSkippedValidation creates the warning printed when --lenient skips
// session validation for the given files.
func WarnSkippedValidation(files []string) Warning {
	return Warning{
		Title:      "Session validation skipped",
		Message:    "Malformed sessions may yield meaningless features.",
		Files:      files,
		Suggestion: "Drop --lenient to reject sessions with bad grid indices or unordered timestamps",
	}
}
