// Package ui renders finished messages to the console. It is the only part
// of the program that touches a display device; everything upstream hands
// it already-computed text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"golang.org/x/term"
)

const (
	messageIndent = 4
	divider       = "--------------------------------------------------------"
)

// Console writes divider-framed, indented message blocks to an output
// stream.
type Console struct {
	out         io.Writer
	interactive bool

	dividerStyle lipgloss.Style
	errorStyle   lipgloss.Style
	promptStyle  lipgloss.Style
}

// Options configures a Console.
type Options struct {
	// NoColor disables terminal styling.
	NoColor bool

	// Interactive enables the input prompt. Callers usually set this from
	// StdinIsTerminal; piped input keeps it off.
	Interactive bool
}

// NewConsole returns a console writing to out.
func NewConsole(out io.Writer, opts Options) *Console {
	c := &Console{out: out, interactive: opts.Interactive}
	if opts.NoColor {
		c.dividerStyle = lipgloss.NewStyle()
		c.errorStyle = lipgloss.NewStyle()
		c.promptStyle = lipgloss.NewStyle()
		return c
	}
	c.dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	c.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	c.promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	return c
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Send renders a result message as an indented, divider-framed block.
func (c *Console) Send(msg string) {
	framed := c.dividerStyle.Render(divider) + "\n" + msg + "\n" + c.dividerStyle.Render(divider)
	fmt.Fprintln(c.out, indent.String(framed, messageIndent))
}

// Error renders an error message in the same framed block style.
func (c *Console) Error(msg string) {
	c.Send(c.errorStyle.Render("Oops! " + msg))
}

// Prompt prints the input prompt when running interactively.
func (c *Console) Prompt() {
	if !c.interactive {
		return
	}
	fmt.Fprint(c.out, c.promptStyle.Render(">> "))
}
