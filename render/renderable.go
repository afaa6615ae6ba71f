package render

import (
	"fmt"
	"io"
)

// Renderable is anything the dispatch helpers can hand to a display surface.
// Each surface (terminal, HTML, test harness) supplies its own concrete
// implementations; the selection logic stays target-agnostic.
type Renderable interface {
	Render(w io.Writer) error
}

// Func adapts a plain function to a Renderable.
type Func func(w io.Writer) error

func (f Func) Render(w io.Writer) error {
	return f(w)
}

// Text renders itself verbatim.
type Text string

func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

// Textf is a fmt-style Text constructor.
func Textf(format string, args ...any) Renderable {
	return Text(fmt.Sprintf(format, args...))
}

// Nothing renders no output at all.
var Nothing Renderable = Func(func(io.Writer) error {
	return nil
})
