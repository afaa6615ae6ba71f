package loadable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/delaneyj/fetchparty/loadable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a successful refresh passes through loading into success with the payload
func TestRefreshSuccess(t *testing.T) {
	l := loadable.New[[]int]()
	var phases []loadable.Status
	stop := l.Subscribe(func() {
		phases = append(phases, l.Status())
	})
	defer stop()

	l.Refresh(context.Background(), func(context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})

	assert.Equal(t, []loadable.Status{loadable.StatusLoading, loadable.StatusSuccess}, phases)
	v, ok := l.Value()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)
}

// a failing refresh passes through loading into error carrying the stringified failure
func TestRefreshFailure(t *testing.T) {
	l := loadable.New[[]int]()
	var phases []loadable.Status
	stop := l.Subscribe(func() {
		phases = append(phases, l.Status())
	})
	defer stop()

	l.Refresh(context.Background(), func(context.Context) ([]int, error) {
		return nil, errors.New("boom")
	})

	assert.Equal(t, []loadable.Status{loadable.StatusLoading, loadable.StatusError}, phases)
	assert.Equal(t, "boom", l.Message())
	_, ok := l.Value()
	assert.False(t, ok)
}

// refresh never surfaces the fetch error to the caller
func TestRefreshAbsorbsError(t *testing.T) {
	l := loadable.Of(99)

	l.Refresh(context.Background(), func(ctx context.Context) (int, error) {
		return 0, context.Canceled
	})

	assert.True(t, l.HasError())
	assert.Equal(t, context.Canceled.Error(), l.Message())
}

// the fetch receives the caller's context
func TestRefreshPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	l := loadable.New[string]()
	l.Refresh(ctx, func(ctx context.Context) (string, error) {
		v, _ := ctx.Value(key{}).(string)
		return v, nil
	})

	v, ok := l.Value()
	require.True(t, ok)
	assert.Equal(t, "marker", v)
}
