package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const bannerWidth = 50

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	refuseColor = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

// printer writes demo and menu output to w.
type printer struct {
	w io.Writer
}

func (p printer) banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	bannerColor.Fprintf(p.w, "\n%s\n %s\n%s\n", line, title, line)
}

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// result prints a labelled boolean outcome, coloured by success.
func (p printer) result(label string, ok bool) {
	c := okColor
	if !ok {
		c = refuseColor
	}
	fmt.Fprintf(p.w, "%s: ", label)
	c.Fprintln(p.w, ok)
}

func (p printer) err(err error) {
	errColor.Fprintf(p.w, "error: %v\n", err)
}

// item formats a (value, found) pair, showing the no-element result explicitly.
func item[T any](v T, ok bool) string {
	if !ok {
		return "(none)"
	}
	return fmt.Sprint(v)
}
