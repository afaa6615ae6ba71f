package render_test

import (
	"testing"

	"github.com/delaneyj/fetchparty/loadable"
	"github.com/delaneyj/fetchparty/render"
	"github.com/stretchr/testify/assert"
)

// a successful empty slice renders through the empty-list branch, which wins
// over the generic empty branch
func TestResolveListEmptySlicePrecedence(t *testing.T) {
	l := loadable.New[[]string]()
	l.Succeed([]string{})

	out := renderString(t, render.ResolveList(l, render.ListBranches[string]{
		Branches: render.Branches[[]string]{
			Success: func(v []string) render.Renderable {
				return render.Text("should not appear")
			},
			Empty: func(msg string) render.Renderable {
				return render.Textf("generic:%s", msg)
			},
		},
		EmptyList: func(msg string) render.Renderable {
			return render.Textf("list:%s", msg)
		},
		EmptyListMessage: "no rows",
	}))
	assert.Equal(t, "list:no rows", out)

	// the container never left the success phase
	assert.Equal(t, loadable.StatusSuccess, l.Status())
}

// without a dedicated empty-list branch the generic empty branch takes over
func TestResolveListFallsBackToEmptyBranch(t *testing.T) {
	l := loadable.New[[]int]()
	l.Succeed([]int{})

	out := renderString(t, render.ResolveList(l, render.ListBranches[int]{
		Branches: render.Branches[[]int]{
			Empty: func(msg string) render.Renderable {
				return render.Textf("generic:%s", msg)
			},
		},
		EmptyListMessage: "drained",
	}))
	assert.Equal(t, "generic:drained", out)
}

// a populated slice renders through the success branch as usual
func TestResolveListPopulated(t *testing.T) {
	l := loadable.New[[]int]()
	l.Succeed([]int{1, 2, 3})

	out := renderString(t, render.ResolveList(l, render.ListBranches[int]{
		Branches: render.Branches[[]int]{
			Success: func(v []int) render.Renderable {
				return render.Textf("%d items", len(v))
			},
		},
	}))
	assert.Equal(t, "3 items", out)
}

// non-success phases dispatch exactly like Resolve
func TestResolveListNonSuccess(t *testing.T) {
	l := loadable.New[[]int]()
	l.Fail("boom")

	out := renderString(t, render.ResolveList(l, render.ListBranches[int]{
		Branches: render.Branches[[]int]{
			Error: func(msg string) render.Renderable {
				return render.Textf("err:%s", msg)
			},
		},
	}))
	assert.Equal(t, "err:boom", out)
}
