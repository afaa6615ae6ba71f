// Package rendertty provides terminal renderables for the dispatch helpers:
// colored status lines and a table for slice payloads.
package rendertty

import (
	"github.com/delaneyj/fetchparty/loadable"
	"github.com/delaneyj/fetchparty/render"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Loading is a yellow one-line loading indicator.
func Loading() render.Renderable {
	return render.Text(text.FgYellow.Sprint("loading...") + "\n")
}

// Error is a red one-line error report.
func Error(message string) render.Renderable {
	return render.Text(text.FgRed.Sprintf("error: %s", message) + "\n")
}

// Empty is a faint one-line empty-state report.
func Empty(message string) render.Renderable {
	if message == "" {
		message = loadable.DefaultEmptyMessage
	}
	return render.Text(text.Faint.Sprint(message) + "\n")
}

// Install makes the terminal renderables the registry's defaults for all
// three fallback phases.
func Install(reg *render.Registry) {
	reg.SetDefaults(render.Defaults{
		Loading: Loading,
		Error:   Error,
		Empty:   Empty,
	})
}
