package spatial

import (
	"encoding/json"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/ui/view"
	"github.com/odvcencio/facet/pkg/ui/view/viewtest"
)

type check = func(t *testing.T, got *Node)

func footprint(role string, w, h, d float32) check {
	return func(t *testing.T, got *Node) {
		require.NotNil(t, got)
		assert.Equal(t, role, got.Role)
		assert.Equal(t, []float32{w, h, d}, []float32{got.Width, got.Height, got.Depth})
		assertEncloses(t, got)
	}
}

func both(checks ...check) check {
	return func(t *testing.T, got *Node) {
		for _, c := range checks {
			c(t, got)
		}
	}
}

func positions(want ...math32.Vector3) check {
	return func(t *testing.T, got *Node) {
		require.Len(t, got.Children, len(want))
		for i, c := range got.Children {
			assert.InDelta(t, want[i].X, c.Transform.Position.X, 1e-6, "child %d x", i)
			assert.InDelta(t, want[i].Y, c.Transform.Position.Y, 1e-6, "child %d y", i)
			assert.InDelta(t, want[i].Z, c.Transform.Position.Z, 1e-6, "child %d z", i)
		}
	}
}

func button(focused bool) check {
	return both(footprint("button", 40, 20, 1), func(t *testing.T, got *Node) {
		assert.Equal(t, "save-pressed", got.OnPress)
		assert.Equal(t, focused, got.IsFocused)
	})
}

// assertEncloses checks that every node's bounds cover its own footprint and
// each child's translated bounds.
func assertEncloses(t *testing.T, n *Node) {
	t.Helper()
	n.Walk(func(x *Node, _ int) bool {
		own := FromSize(x.Width, x.Height, x.Depth)
		assert.Equal(t, x.Bounds, x.Bounds.Union(own), "%s bounds miss own footprint", x.Role)
		for _, c := range x.Children {
			moved := c.Bounds.Translate(c.Transform.Position)
			assert.Equal(t, x.Bounds, x.Bounds.Union(moved), "%s bounds miss child %s", x.Role, c.Role)
		}
		return true
	})
}

func TestPrimitiveMatrix(t *testing.T) {
	inner := footprint("text", 50, 20, 1)

	viewtest.Run(t, Backend{}, map[string]check{
		"vstack": both(footprint("vstack", 10, 44, 1), positions(math32.Vec3(0, 0, 1), math32.Vec3(0, 24, 1)),
			func(t *testing.T, got *Node) { assert.Equal(t, Vertical, got.Layout) }),
		"hstack": both(footprint("hstack", 24, 20, 1), positions(math32.Vec3(0, 0, 1), math32.Vec3(14, 0, 1)),
			func(t *testing.T, got *Node) { assert.Equal(t, Horizontal, got.Layout) }),
		"wrap": both(footprint("wrap", 24, 20, 1), positions(math32.Vec3(0, 0, 1), math32.Vec3(14, 0, 1)),
			func(t *testing.T, got *Node) { assert.Equal(t, Wrap, got.Layout) }),
		"zstack": both(positions(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, ZStackDepthStep)),
			func(t *testing.T, got *Node) {
				assert.Equal(t, "zstack", got.Role)
				assert.InDelta(t, 2*ZStackDepthStep, got.Depth, 1e-6)
				assert.Equal(t, Layered, got.Layout)
			}),
		"grid": both(footprint("grid", 28, 48, 1),
			positions(math32.Vec3(0, 0, 1), math32.Vec3(18, 0, 1), math32.Vec3(0, 28, 1))),
		"text":              footprint("text", 50, 20, 1),
		"rich_text":         footprint("rich_text", 100, 20, 1),
		"icon":              footprint("icon", 16, 16, 1),
		"divider":           footprint("divider", 100, 1, 1),
		"space":             footprint("space", 10, 5, 0),
		"circle":            footprint("circle", 10, 10, 1),
		"arc":               footprint("arc", 10, 10, 1),
		"path":              footprint("path", 10, 10, 1),
		"capsule":           footprint("capsule", 40, 10, 1),
		"rectangle":         footprint("rectangle", 30, 20, 1),
		"button":            button(false),
		"button_focused":    button(true),
		"sidebar_item":      footprint("sidebar_item", 200, 40, 1),
		"text_input":        footprint("text_input", 200, 40, 1),
		"text_input_secure": footprint("text_input", 200, 40, 1),
		"text_editor":       footprint("text_editor", 300, 200, 1),
		"slider":            footprint("slider", 200, 20, 1),
		"toggle":            footprint("toggle", 100, 40, 1),
		"image":             footprint("image", 64, 32, 1),
		"video":             footprint("video", 100, 100, 1),
		"web_view":          footprint("web_view", 100, 100, 1),
		"container":         inner,
		"scroll_view":       inner,
		"mouse_area": both(inner, func(t *testing.T, got *Node) {
			assert.Equal(t, "tap", got.OnPress)
		}),
		"tooltip":    inner,
		"glass_card": inner,
		"section":    inner,
		"spatial_modifier": both(inner, func(t *testing.T, got *Node) {
			assert.Equal(t, Transform{
				Position: math32.Vec3(1, 2, 3),
				Rotation: math32.Vec3(0, 0.5, 0),
				Scale:    math32.Vec3(2, 2, 2),
			}, got.Transform)
		}),
		"semantic":    footprint("custom", 0, 0, 0),
		"scope_focus": button(true),
	})
}

func TestIntersectRay(t *testing.T) {
	unitBox := math32.B3(0, 0, 0, 1, 1, 1)
	tests := []struct {
		name   string
		ray    Ray
		ok     bool
		dist   float32
		normal math32.Vector3
	}{
		{"entry", NewRay(math32.Vec3(-1, 0.5, 0.5), math32.Vec3(1, 0, 0)), true, 1, math32.Vec3(-1, 0, 0)},
		{"unnormalized direction", NewRay(math32.Vec3(-1, 0.5, 0.5), math32.Vec3(4, 0, 0)), true, 1, math32.Vec3(-1, 0, 0)},
		{"from inside exits", NewRay(math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(1, 0, 0)), true, 0.5, math32.Vec3(1, 0, 0)},
		{"negative direction", NewRay(math32.Vec3(0.5, 3, 0.5), math32.Vec3(0, -1, 0)), true, 2, math32.Vec3(0, 1, 0)},
		{"grazing face plane", NewRay(math32.Vec3(-1, 0, 0.5), math32.Vec3(1, 0, 0)), true, 1, math32.Vec3(-1, 0, 0)},
		{"parallel offset", NewRay(math32.Vec3(-1, 2, 0.5), math32.Vec3(1, 0, 0)), false, 0, math32.Vector3{}},
		{"behind origin", NewRay(math32.Vec3(2, 0.5, 0.5), math32.Vec3(1, 0, 0)), false, 0, math32.Vector3{}},
		{"degenerate", NewRay(math32.Vec3(-1, 0.5, 0.5), math32.Vector3{}), false, 0, math32.Vector3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, normal, ok := IntersectRay(unitBox, tt.ray)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.dist, dist, 1e-6)
			assert.Equal(t, tt.normal, normal)
		})
	}

	dist, _, ok := IntersectRay(unitBox, NewRay(math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(1, 1, 1)))
	require.True(t, ok)
	assert.InDelta(t, 0.5*math32.Sqrt(3), dist, 1e-5, "diagonal exit from the center")

	_, _, ok = IntersectRay(math32.B3Empty(), NewRay(math32.Vector3{}, math32.Vec3(1, 0, 0)))
	assert.False(t, ok)
}

func TestFromSizeIsCentered(t *testing.T) {
	b := FromSize(4, 2, 1)
	assert.Equal(t, math32.Vector3{}, b.Center())
	assert.Equal(t, math32.Vec3(4, 2, 1), b.Size())
}

func cube(role string, pos math32.Vector3) *Node {
	n := &Node{Role: role, Width: 1, Height: 1, Depth: 1, Transform: Identity(), Bounds: FromSize(1, 1, 1), OnPress: role}
	n.Transform.Position = pos
	return n
}

func room(children ...*Node) *Node {
	return &Node{Role: "room", Transform: Identity(), Bounds: math32.B3(-10, -10, -10, 10, 10, 10), Children: children, OnPress: "room"}
}

func TestNearestChildWins(t *testing.T) {
	ray := NewRay(math32.Vec3(0, 0, -20), math32.Vec3(0, 0, 1))
	orders := map[string]*Node{
		"near first": room(cube("near", math32.Vec3(0, 0, 2)), cube("far", math32.Vec3(0, 0, 5))),
		"near last":  room(cube("far", math32.Vec3(0, 0, 5)), cube("near", math32.Vec3(0, 0, 2))),
	}
	for name, root := range orders {
		t.Run(name, func(t *testing.T) {
			hit, ok := root.HitTest(ray)
			require.True(t, ok)
			assert.Equal(t, "near", hit.Role)
			assert.Equal(t, "near", hit.Message)
			assert.InDelta(t, 21.5, hit.Distance, 1e-5)
			assert.Equal(t, math32.Vec3(0, 0, 1.5), hit.Point)
			assert.Equal(t, math32.Vec3(0, 0, -1), hit.Normal)
		})
	}
}

func TestTieKeepsFirstChild(t *testing.T) {
	root := room(cube("first", math32.Vector3{}), cube("second", math32.Vector3{}))
	hit, ok := root.HitTest(NewRay(math32.Vec3(0, 0, -20), math32.Vec3(0, 0, 1)))
	require.True(t, ok)
	assert.Equal(t, "first", hit.Role)
}

func TestParentHitWhenChildrenMissed(t *testing.T) {
	root := room(cube("child", math32.Vec3(5, 5, 0)))
	hit, ok := root.HitTest(NewRay(math32.Vec3(0, 0, -20), math32.Vec3(0, 0, 1)))
	require.True(t, ok)
	assert.Equal(t, "room", hit.Role)
	assert.Equal(t, "room", hit.Message)
	assert.InDelta(t, 10, hit.Distance, 1e-5)
	assert.Same(t, root, hit.Node)
}

func TestMissOutsideRoot(t *testing.T) {
	root := room(cube("child", math32.Vector3{}))
	_, ok := root.HitTest(NewRay(math32.Vec3(0, 50, -20), math32.Vec3(0, 0, 1)))
	assert.False(t, ok)
}

func TestTransformRoundTrip(t *testing.T) {
	leaf := &Node{Role: "leaf", Transform: Identity(), Bounds: FromSize(2, 2, 2)}
	leaf.Transform.Position = math32.Vec3(0, 0, 3)
	stack := &Node{Role: "stack", Transform: Identity(), Bounds: math32.B3(-100, -100, -100, 100, 100, 100), Children: []*Node{leaf}}
	stack.Transform.Position = math32.Vec3(0, 2, 0)
	root := &Node{Role: "root", Transform: Identity(), Bounds: math32.B3(-100, -100, -100, 100, 100, 100), Children: []*Node{stack}}
	root.Transform.Position = math32.Vec3(1, 0, 0)

	ray := NewRay(math32.Vec3(1, 2, -10), math32.Vec3(0, 0, 1))
	hit, ok := root.HitTest(ray)
	require.True(t, ok)
	require.Equal(t, "leaf", hit.Role)

	world := root.Transform.Position.Add(stack.Transform.Position).Add(leaf.Transform.Position)
	localRay := Ray{Origin: ray.Origin.Sub(world), Direction: ray.Direction}
	dist, _, ok := IntersectRay(leaf.Bounds, localRay)
	require.True(t, ok)

	assert.InDelta(t, 12, hit.Distance, 1e-5)
	assert.Equal(t, world.Add(localRay.At(dist)), hit.Point)
	assert.Equal(t, ray.At(hit.Distance), hit.Point, "translation only keeps the hit on the incoming ray")
}

func TestVStackHeights(t *testing.T) {
	rect := func(h float32) view.Element {
		return view.Rectangle{Width: view.Fixed(1), Height: view.Fixed(h)}
	}
	got := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), view.VStack{
		Children: []view.Element{rect(10), rect(20), rect(5)},
		Spacing:  4,
	})
	assert.Equal(t, float32(43), got.Height)
	positions(math32.Vec3(0, 0, 1), math32.Vec3(0, 14, 1), math32.Vec3(0, 38, 1))(t, got)
}

func pressable(id string) view.Button {
	return view.Button{ID: id, OnPress: id, Content: view.Rectangle{Width: view.Fixed(20), Height: view.Fixed(10)}}
}

func TestRenderedTreeHitTest(t *testing.T) {
	tree := view.VStack{Children: []view.Element{pressable("a"), pressable("b")}, Spacing: 4}
	root := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), tree)

	hit, ok := root.HitTest(NewRay(math32.Vec3(0, 14, -10), math32.Vec3(0, 0, 1)))
	require.True(t, ok)
	assert.Equal(t, "button", hit.Role)
	assert.Equal(t, "b", hit.Message)
	assert.InDelta(t, 10.5, hit.Distance, 1e-5)
	assert.Equal(t, math32.Vec3(0, 14, 0.5), hit.Point)

	hit, ok = root.HitTest(NewRay(math32.Vec3(0, 0, -10), math32.Vec3(0, 0, 1)))
	require.True(t, ok)
	assert.Equal(t, "a", hit.Message)
}

func TestSpatialModifierAppliesOnce(t *testing.T) {
	mod := view.SpatialModifier{Content: view.Divider{}, Position: view.Vec3{X: 1}, Scale: view.Vec3{X: 2, Y: 2, Z: 2}}
	for range 3 {
		got := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), mod)
		assert.Equal(t, math32.Vec3(1, 0, 0), got.Transform.Position)
		assert.Equal(t, math32.Vec3(2, 2, 2), got.Transform.Scale)
	}

	nested := view.SpatialModifier{Content: mod, Position: view.Vec3{X: 1}, Scale: view.Vec3{X: 3, Y: 1, Z: 1}}
	got := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), nested)
	assert.Equal(t, math32.Vec3(2, 0, 0), got.Transform.Position)
	assert.Equal(t, math32.Vec3(6, 2, 2), got.Transform.Scale)

	unscaled := view.SpatialModifier{Content: view.Divider{}, Position: view.Vec3{Z: 4}}
	got = view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), unscaled)
	assert.Equal(t, math32.Vec3(1, 1, 1), got.Transform.Scale, "zero scale leaves scale unchanged")
}

func TestModifiedChildStaysEnclosed(t *testing.T) {
	tree := view.HStack{Children: []view.Element{
		view.Divider{},
		view.SpatialModifier{Content: pressable("lifted"), Position: view.Vec3{Z: 30}},
	}}
	root := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), tree)
	assertEncloses(t, root)

	lifted := root.Children[1]
	hit, ok := root.HitTest(NewRay(math32.Vec3(lifted.Transform.Position.X, 0, -50), math32.Vec3(0, 0, 1)))
	require.True(t, ok)
	assert.Equal(t, "lifted", hit.Message)
}

func TestBillboarding(t *testing.T) {
	ctx := viewtest.BaseContext().WithBillboarding(true)
	root := view.RenderElement[*Node](Backend{}, ctx, view.VStack{Children: []view.Element{view.Divider{}, pressable("x")}})
	root.Walk(func(n *Node, _ int) bool {
		assert.True(t, n.Billboarding, n.Role)
		return true
	})
}

func TestWalkCountFind(t *testing.T) {
	root := room(cube("a", math32.Vector3{}), room(cube("b", math32.Vector3{})))
	assert.Equal(t, 4, root.Count())
	require.NotNil(t, root.Find("b"))
	assert.Nil(t, root.Find("missing"))

	var levels []int
	root.Walk(func(_ *Node, level int) bool {
		levels = append(levels, level)
		return true
	})
	assert.Equal(t, []int{0, 1, 1, 2}, levels)

	visited := 0
	root.Walk(func(*Node, int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestToEmptyStripsPayloads(t *testing.T) {
	root := room(cube("a", math32.Vector3{}))
	empty := root.ToEmpty()

	empty.Walk(func(n *Node, _ int) bool {
		assert.Nil(t, n.OnPress, n.Role)
		return true
	})
	assert.Equal(t, "room", root.OnPress, "original keeps its payload")
	assert.Equal(t, "a", root.Children[0].OnPress)
	assert.NotSame(t, root.Children[0], empty.Children[0])
	assert.Equal(t, root.Count(), empty.Count())
}

func TestDescribe(t *testing.T) {
	ctx := viewtest.BaseContext().WithFocus("go")
	tree := view.SpatialModifier{
		Content:  view.Button{ID: "go", OnPress: "go", Content: view.Text{Content: "Go"}},
		Position: view.Vec3{Z: 3},
		Scale:    view.Vec3{X: 2, Y: 2, Z: 2},
	}
	desc := view.RenderElement[*Node](Backend{}, ctx, tree).ToEmpty().Describe()

	assert.Equal(t, "button", desc.Role)
	assert.Equal(t, "20×20×1", desc.Label)
	assert.Equal(t, float32(3), desc.Depth)
	require.NotNil(t, desc.Scale)
	assert.Equal(t, [3]float32{2, 2, 2}, *desc.Scale)
	assert.True(t, desc.HasTag("focused"))

	plain := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), view.Divider{}).Describe()
	assert.Nil(t, plain.Scale)
	assert.Equal(t, "100×1×1", plain.Label)
}

func TestMarshalJSON(t *testing.T) {
	root := view.RenderElement[*Node](Backend{}, viewtest.BaseContext(), view.VStack{Children: []view.Element{
		view.Button{OnPress: "secret", Content: view.Text{Content: "hello"}},
	}})

	data, err := json.Marshal(root.ToEmpty())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.JSONEq(t, `{
		"role": "vstack",
		"size": [50, 20, 1],
		"transform": {"position": [0, 0, 0], "rotation": [0, 0, 0], "scale": [1, 1, 1]},
		"bounds": {"min": [-25, -10, -0.5], "max": [25, 10, 1.5]},
		"layout": "vertical",
		"children": [{
			"role": "button",
			"size": [50, 20, 1],
			"transform": {"position": [0, 0, 1], "rotation": [0, 0, 0], "scale": [1, 1, 1]},
			"bounds": {"min": [-25, -10, -0.5], "max": [25, 10, 0.5]}
		}]
	}`, string(data))

	raw, err := json.Marshal(root)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"interactive":true`)
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "wrap", Wrap.String())
	assert.Equal(t, "layered", Layered.String())
	assert.Equal(t, "grid", Grid.String())
}
