// Package renderhtml provides HTML renderables for the dispatch helpers.
// Text content goes through quicktemplate's escaping writer, so payload and
// message strings are safe to splice into markup.
package renderhtml

import (
	"io"

	"github.com/delaneyj/fetchparty/render"
	"github.com/valyala/quicktemplate"
)

// Spinner is the default loading placeholder.
func Spinner() render.Renderable {
	return render.Func(func(w io.Writer) error {
		ew := &errWriter{w: w}
		qw := quicktemplate.AcquireWriter(ew)
		qw.N().S(`<div class="loading" aria-busy="true">Loading...</div>`)
		quicktemplate.ReleaseWriter(qw)
		return ew.err
	})
}

// ErrorBox renders message inside an error container.
func ErrorBox(message string) render.Renderable {
	return box("error", message)
}

// EmptyBox renders message inside an empty-state container.
func EmptyBox(message string) render.Renderable {
	return box("empty", message)
}

// Span renders escaped text in a classed span.
func Span(class, text string) render.Renderable {
	return render.Func(func(w io.Writer) error {
		ew := &errWriter{w: w}
		qw := quicktemplate.AcquireWriter(ew)
		qw.N().S(`<span class="`)
		qw.E().S(class)
		qw.N().S(`">`)
		qw.E().S(text)
		qw.N().S(`</span>`)
		quicktemplate.ReleaseWriter(qw)
		return ew.err
	})
}

// List renders each sequence item as an <li> inside a classed <ul>.
func List(class string, items render.Sequence) render.Renderable {
	return render.Func(func(w io.Writer) error {
		ew := &errWriter{w: w}
		qw := quicktemplate.AcquireWriter(ew)
		qw.N().S(`<ul class="`)
		qw.E().S(class)
		qw.N().S(`">`)
		quicktemplate.ReleaseWriter(qw)
		if ew.err != nil {
			return ew.err
		}
		for i := 0; i < items.Len(); i++ {
			if _, err := io.WriteString(w, "<li>"); err != nil {
				return err
			}
			if err := items.At(i).Render(w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</li>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

// Install makes the HTML renderables the registry's defaults for all three
// fallback phases.
func Install(reg *render.Registry) {
	reg.SetDefaults(render.Defaults{
		Loading: Spinner,
		Error:   ErrorBox,
		Empty:   EmptyBox,
	})
}

func box(class, message string) render.Renderable {
	return render.Func(func(w io.Writer) error {
		ew := &errWriter{w: w}
		qw := quicktemplate.AcquireWriter(ew)
		qw.N().S(`<div class="`)
		qw.E().S(class)
		qw.N().S(`">`)
		qw.E().S(message)
		qw.N().S(`</div>`)
		quicktemplate.ReleaseWriter(qw)
		return ew.err
	})
}

// quicktemplate's writer drops write errors; errWriter keeps the first one so
// Render can report it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil && ew.err == nil {
		ew.err = err
	}
	return n, err
}
