package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Printer controls output format.
// When JSON is true, PrintJSON will be used; otherwise styled text.
// Styling is dropped automatically when stdout is not a terminal so
// eval'd and piped output stays clean.

type Printer struct {
	JSON bool
}

func (p Printer) JSONEnabled() bool { return p.JSON }

func (p Printer) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Heading prints a green label, like "Found in path:".
func (p Printer) Heading(text string) {
	fmt.Println(render(headingStyle, text))
}

// Bold prints emphasized status text.
func (p Printer) Bold(text string) {
	fmt.Println(render(boldStyle, text))
}

func (p Printer) Line(text string) {
	fmt.Println(text)
}

func (p Printer) PrintError(err error) {
	if p.JSON {
		_ = p.PrintJSON(map[string]interface{}{"error": err.Error()})
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
}

func render(style lipgloss.Style, text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return style.Render(text)
}
