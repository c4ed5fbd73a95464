package spatial

import (
	"encoding/json"
	"strconv"

	"cogentcore.org/core/math32"

	"github.com/odvcencio/facet/pkg/telemetry"
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// ZStackDepthStep separates layered siblings along z.
const ZStackDepthStep float32 = 0.1

// Layout records how a container placed its children.
type Layout int

const (
	Vertical Layout = iota
	Horizontal
	Wrap
	Layered
	Grid
)

func (l Layout) String() string {
	switch l {
	case Horizontal:
		return "horizontal"
	case Wrap:
		return "wrap"
	case Layered:
		return "layered"
	case Grid:
		return "grid"
	default:
		return "vertical"
	}
}

// Transform places a node in its parent's frame.
type Transform struct {
	Position math32.Vector3
	Rotation math32.Vector3
	Scale    math32.Vector3
}

// Identity is the transform that leaves a node where its parent put it.
func Identity() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// Node is one positioned, bounded element of the spatial tree. Bounds are
// in the node's local frame and enclose every child.
type Node struct {
	Role         string
	Width        float32
	Height       float32
	Depth        float32
	Transform    Transform
	Bounds       math32.Box3
	Layout       Layout
	OnPress      view.Message
	IsFocused    bool
	Billboarding bool
	Children     []*Node
}

// Hit is the result of a successful ray test. Point is in the frame of the
// node HitTest was called on.
type Hit struct {
	Distance float32
	Point    math32.Vector3
	Normal   math32.Vector3
	Message  view.Message
	Role     string
	Node     *Node
}

// HitTest returns the nearest node under r. r is expressed in the frame of
// n's parent.
func (n *Node) HitTest(r Ray) (Hit, bool) {
	hit, ok := n.hitTest(r)
	telemetry.RecordHitTest(ok)
	return hit, ok
}

func (n *Node) hitTest(r Ray) (Hit, bool) {
	local := Ray{Origin: r.Origin.Sub(n.Transform.Position), Direction: r.Direction}
	dist, normal, ok := IntersectRay(n.Bounds, local)
	if !ok {
		return Hit{}, false
	}

	var best Hit
	found := false
	for _, child := range n.Children {
		h, ok := child.hitTest(local)
		if ok && (!found || h.Distance < best.Distance) {
			best, found = h, true
		}
	}
	if !found {
		best = Hit{
			Distance: dist,
			Point:    local.At(dist),
			Normal:   normal,
			Message:  n.OnPress,
			Role:     n.Role,
			Node:     n,
		}
	}
	best.Point = best.Point.Add(n.Transform.Position)
	return best, true
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(node *Node, level int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, level int) bool {
	if !fn(n, level) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn, level+1) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// Find returns the first node in pre-order with the given role.
func (n *Node) Find(role string) *Node {
	var found *Node
	n.Walk(func(x *Node, _ int) bool {
		if x.Role == role {
			found = x
			return false
		}
		return true
	})
	return found
}

// ToEmpty deep-copies the tree with every OnPress payload cleared, making
// it safe to display or serialize.
func (n *Node) ToEmpty() *Node {
	cp := *n
	cp.OnPress = nil
	cp.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cp.Children[i] = c.ToEmpty()
	}
	return &cp
}

// Describe projects the event-free tree into semantic nodes. The label is
// the footprint and Depth carries the z offset.
func (n *Node) Describe() semantic.Node {
	out := semantic.New(n.Role).WithLabel(num(n.Width) + "×" + num(n.Height) + "×" + num(n.Depth))
	out.Depth = n.Transform.Position.Z
	if s := n.Transform.Scale; s != math32.Vec3(1, 1, 1) {
		out.Scale = &[3]float32{s.X, s.Y, s.Z}
	}
	if n.Billboarding {
		out = out.WithTag("billboard")
	}
	if n.IsFocused {
		out = out.WithTag("focused")
	}
	for _, c := range n.Children {
		out = out.Push(c.Describe())
	}
	return out
}

func num(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

type jsonVec [3]float32

func vec(v math32.Vector3) jsonVec { return jsonVec{v.X, v.Y, v.Z} }

type jsonTransform struct {
	Position jsonVec `json:"position"`
	Rotation jsonVec `json:"rotation"`
	Scale    jsonVec `json:"scale"`
}

type jsonBounds struct {
	Min jsonVec `json:"min"`
	Max jsonVec `json:"max"`
}

type jsonNode struct {
	Role         string        `json:"role"`
	Size         jsonVec       `json:"size"`
	Transform    jsonTransform `json:"transform"`
	Bounds       jsonBounds    `json:"bounds"`
	Layout       string        `json:"layout,omitempty"`
	Interactive  bool          `json:"interactive,omitempty"`
	IsFocused    bool          `json:"focused,omitempty"`
	Billboarding bool          `json:"billboarding,omitempty"`
	Children     []*Node       `json:"children,omitempty"`
}

// MarshalJSON encodes the event-free projection of the tree. Payloads are
// never serialized; Interactive only records that one was present.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{
		Role: n.Role,
		Size: jsonVec{n.Width, n.Height, n.Depth},
		Transform: jsonTransform{
			Position: vec(n.Transform.Position),
			Rotation: vec(n.Transform.Rotation),
			Scale:    vec(n.Transform.Scale),
		},
		Bounds:       jsonBounds{Min: vec(n.Bounds.Min), Max: vec(n.Bounds.Max)},
		Interactive:  n.OnPress != nil,
		IsFocused:    n.IsFocused,
		Billboarding: n.Billboarding,
		Children:     n.Children,
	}
	if len(n.Children) > 0 {
		out.Layout = n.Layout.String()
	}
	return json.Marshal(out)
}
