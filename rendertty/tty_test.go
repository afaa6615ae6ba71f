package rendertty_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/fetchparty/loadable"
	"github.com/delaneyj/fetchparty/render"
	"github.com/delaneyj/fetchparty/rendertty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, r render.Renderable) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, r.Render(&sb))
	return sb.String()
}

func TestStatusLines(t *testing.T) {
	assert.Contains(t, renderString(t, rendertty.Loading()), "loading...")
	assert.Contains(t, renderString(t, rendertty.Error("boom")), "error: boom")
	assert.Contains(t, renderString(t, rendertty.Empty("nothing yet")), "nothing yet")
	assert.Contains(t, renderString(t, rendertty.Empty("")), loadable.DefaultEmptyMessage)
}

func TestTable(t *testing.T) {
	out := renderString(t, rendertty.Table(
		[]string{"title", "size"},
		[]string{"first", "1.5 kB"},
		[]string{"second", "3.0 kB"},
	))
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "1.5 kB")
}

// Install wires terminal defaults into the registry
func TestInstall(t *testing.T) {
	reg := render.NewRegistry()
	rendertty.Install(reg)

	l := loadable.New[int]()
	l.Fail("boom")
	assert.Contains(t, renderString(t, render.Resolve(l, render.Branches[int]{}, render.WithRegistry(reg))), "error: boom")

	l.StartLoading()
	assert.Contains(t, renderString(t, render.Resolve(l, render.Branches[int]{}, render.WithRegistry(reg))), "loading...")
}
