package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carpartcert/carcert-cli/internal/app"
)

// IO is the terminal seen by actions: a line reader and a styled writer.
type IO struct {
	in  *bufio.Reader
	out io.Writer

	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// NewIO wraps in and out. Styles degrade to plain text when out is not a
// terminal.
func NewIO(in io.Reader, out io.Writer) *IO {
	renderer := lipgloss.NewRenderer(out)

	return &IO{
		in:         bufio.NewReader(in),
		out:        out,
		titleStyle: renderer.NewStyle().Bold(true),
		errorStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Println writes a line.
func (s *IO) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// Printf writes a formatted line; a trailing newline is added.
func (s *IO) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

// Errorf writes a formatted line in the error style.
func (s *IO) Errorf(format string, a ...any) {
	fmt.Fprintln(s.out, s.errorStyle.Render(fmt.Sprintf(format, a...)))
}

// Title writes a heading surrounded by blank lines.
func (s *IO) Title(title string) {
	fmt.Fprintf(s.out, "\n%s\n\n", s.titleStyle.Render(title))
}

// ReadLine prints prompt and returns the next input line without its line
// terminator. Other whitespace is kept, so " 1" is not the token "1".
// io.EOF is returned only when no further input exists.
func (s *IO) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt asks for one value showing def; an empty answer keeps def.
func (s *IO) Prompt(name, def string) (string, error) {
	answer, err := s.ReadLine(fmt.Sprintf(app.MsgFieldPrompt, name, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}

	return answer, nil
}
