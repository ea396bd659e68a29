package cli

import (
	"fmt"
	"io"

	"github.com/badele/ansirun/internal/render"
)

// writeRunTable lists every fragment with the command executed before it.
func writeRunTable(writer io.Writer, fs *render.Fragments) error {
	commands := make(map[int]string, len(fs.Updates()))
	sequences := make(map[int]string, len(fs.Updates()))
	for _, u := range fs.Updates() {
		commands[u.Index] = u.Command.String()
		if style, ok := u.Command.Prefix(); ok {
			sequences[u.Index] = style.Prefix(fs.Dialect())
		}
	}

	fmt.Fprintln(writer, "┌─────────┬──────────────────────────────────────────────────────────┬──────────────────────┬──────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-56s │ %-20s │ %-36s │\n", "Index", "Command", "Sequence", "Text")
	fmt.Fprintln(writer, "├─────────┼──────────────────────────────────────────────────────────┼──────────────────────┼──────────────────────────────────────┤")

	for i, f := range fs.Items() {
		command, ok := commands[i]
		if !ok {
			command = "-"
		}

		text := f.Content.String()
		switch f.Annotation.Kind {
		case render.AnnotationTitle:
			text = "[title] " + text
		case render.AnnotationLink:
			text = "[link " + f.Annotation.URL.String() + "] " + text
		}

		fmt.Fprintf(writer, "│ %-7d │ %-56s │ %-20s │ %-36s │\n",
			i+1, truncate(command, 56, false), truncate(sequences[i], 20, true), truncate(text, 36, true))
	}

	fmt.Fprintln(writer, "└─────────┴──────────────────────────────────────────────────────────┴──────────────────────┴──────────────────────────────────────┘")

	_, err := fmt.Fprintf(writer, "%d fragments, %d style updates\n", fs.Len(), len(fs.Updates()))
	return err
}

func truncate(s string, maxLen int, escape bool) string {
	if escape {
		s = fmt.Sprintf("%q", s)

		// Remove quote added by %q
		if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
			s = s[1 : len(s)-1]
		}
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
