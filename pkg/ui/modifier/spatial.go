package modifier

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Transform moves, scales and rotates its content in the spatial backend.
// Other backends ignore it. Offsets add to whatever the enclosing layout
// assigns; scale multiplies.
type Transform struct {
	content  view.View
	position view.Vec3
	scale    view.Vec3
	rotation view.Vec3
}

// Spatial starts an identity transform around content.
func Spatial(content view.View) *Transform {
	return &Transform{content: content, scale: view.One3}
}

// PhysicalDepth lifts content toward the viewer by depth.
func PhysicalDepth(content view.View, depth float32) *Transform {
	return Spatial(content).Position(view.Vec3{Z: depth})
}

func (t *Transform) Position(p view.Vec3) *Transform { t.position = p; return t }
func (t *Transform) Scale(s view.Vec3) *Transform    { t.scale = s; return t }
func (t *Transform) Rotation(r view.Vec3) *Transform { t.rotation = r; return t }

func (t *Transform) Render(ctx *view.Context) view.Element {
	return view.SpatialModifier{
		Content:  render(ctx, t.content),
		Position: t.position,
		Scale:    t.scale,
		Rotation: t.rotation,
	}
}

// Describe reports the z offset as depth and any non-unit scale.
func (t *Transform) Describe(ctx *view.Context) semantic.Node {
	n := describe(ctx, t.content)
	n.Depth += t.position.Z
	if t.scale != view.One3 && t.scale != view.Zero3 {
		n.Scale = &[3]float32{t.scale.X, t.scale.Y, t.scale.Z}
	}
	return n
}
