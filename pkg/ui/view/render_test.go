package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
	"github.com/odvcencio/facet/pkg/ui/view/viewtest"
)

func kind(want string) func(t *testing.T, got viewtest.Call) {
	return func(t *testing.T, got viewtest.Call) {
		assert.Equal(t, want, got.Kind)
	}
}

func TestRenderDispatchesEveryPrimitive(t *testing.T) {
	expect := map[string]func(t *testing.T, got viewtest.Call){}
	for _, name := range viewtest.Names() {
		expect[name] = kind(name)
	}
	// These cases share a primitive with another case.
	expect["button_focused"] = func(t *testing.T, got viewtest.Call) {
		assert.Equal(t, "button", got.Kind)
		assert.True(t, got.Focused)
	}
	expect["text_input_secure"] = kind("text_input")
	expect["scope_focus"] = func(t *testing.T, got viewtest.Call) {
		assert.Equal(t, "button", got.Kind)
		assert.True(t, got.Focused, "scope context must reach the backend")
	}
	expect["button"] = func(t *testing.T, got viewtest.Call) {
		assert.Equal(t, "button", got.Kind)
		assert.False(t, got.Focused)
	}

	viewtest.Run(t, &viewtest.Recorder{}, expect)
}

func TestRenderChildrenBeforeContainer(t *testing.T) {
	rec := &viewtest.Recorder{}
	tree := view.VStack{Children: []view.Element{
		view.Text{Content: "a"},
		view.HStack{Children: []view.Element{view.Text{Content: "b"}, view.Divider{}}},
		view.Button{Content: view.Icon{Name: "x"}},
	}}

	out := view.RenderElement[viewtest.Call](rec, viewtest.BaseContext(), tree)

	assert.Equal(t, []string{"text", "text", "divider", "hstack", "icon", "button", "vstack"}, rec.Order())
	require.Len(t, out.Children, 3)
	assert.Equal(t, "a", out.Children[0].Label)
	assert.Equal(t, "hstack", out.Children[1].Kind)
}

func TestRenderNilIsEmptySpace(t *testing.T) {
	rec := &viewtest.Recorder{}
	assert.Equal(t, "space", view.Render[viewtest.Call](rec, viewtest.BaseContext(), nil).Kind)

	got := view.RenderElement[viewtest.Call](rec, viewtest.BaseContext(), view.Container{})
	require.Len(t, got.Children, 1)
	assert.Equal(t, "space", got.Children[0].Kind)
}

type described struct{}

func (described) Render(*view.Context) view.Element { return view.Divider{} }
func (described) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("divider").WithLabel(ctx.Device.String())
}

func TestDescribe(t *testing.T) {
	ctx := viewtest.BaseContext()

	assert.Equal(t, semantic.New("view"), view.Describe(ctx, view.Static(view.Divider{})))
	assert.Equal(t, "desktop", view.Describe(ctx, described{}).Label)

	node := semantic.New("custom").WithContent("c")
	assert.Equal(t, node, view.Describe(ctx, view.SemanticView{Node: node}))
	assert.Len(t, view.DescribeAll(ctx, []view.View{described{}, view.Static(nil)}), 2)
}

func TestDescribeIdempotent(t *testing.T) {
	ctx := viewtest.BaseContext()
	v := described{}
	assert.Equal(t, view.Describe(ctx, v), view.Describe(ctx, v))
}

func TestScrollViewNestsContext(t *testing.T) {
	var inside bool
	spy := view.Func(func(ctx *view.Context) view.Element {
		return view.ScrollView{Content: view.Text{Content: "x"}}
	})
	b := &scrollSpy{Recorder: &viewtest.Recorder{}, inside: &inside}
	view.Render[viewtest.Call](b, viewtest.BaseContext(), spy)
	assert.True(t, inside)
}

type scrollSpy struct {
	*viewtest.Recorder
	inside *bool
}

func (s *scrollSpy) Text(ctx *view.Context, e view.Text) viewtest.Call {
	*s.inside = ctx.InsideScroll
	return s.Recorder.Text(ctx, e)
}

func TestRenderAll(t *testing.T) {
	base := viewtest.BaseContext()
	ctxs := []*view.Context{base, base.WithFocus(viewtest.FocusedID), base}
	v := view.Static(view.Button{ID: viewtest.FocusedID, Content: view.Text{Content: "Save"}})

	out, err := view.RenderAll[viewtest.Call](context.Background(), &viewtest.Recorder{}, ctxs, v)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.False(t, out[0].Focused)
	assert.True(t, out[1].Focused)
	assert.False(t, out[2].Focused)
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := view.RenderAll[viewtest.Call](ctx, &viewtest.Recorder{}, []*view.Context{viewtest.BaseContext()}, view.Static(view.Divider{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cols int
		want [][]int
	}{
		{"even", 4, 2, [][]int{{0, 1}, {2, 3}}},
		{"ragged", 5, 2, [][]int{{0, 1}, {2, 3}, {4}}},
		{"one column", 2, 1, [][]int{{0}, {1}}},
		{"zero columns clamps", 2, 0, [][]int{{0}, {1}}},
		{"empty", 0, 3, [][]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.n)
			for i := range items {
				items[i] = i
			}
			assert.Equal(t, tt.want, view.Chunk(items, tt.cols))
		})
	}
}
