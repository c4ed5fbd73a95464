package spatial

import (
	"cogentcore.org/core/math32"
	scalar "github.com/chewxy/math32"
)

// FromSize returns a box of the given extent centered on the origin.
func FromSize(width, height, depth float32) math32.Box3 {
	half := math32.Vec3(width, height, depth).MulScalar(0.5)
	return math32.B3(-half.X, -half.Y, -half.Z, half.X, half.Y, half.Z)
}

// Ray is a half line. Direction is unit length, or zero for a degenerate ray
// that hits nothing.
type Ray struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// NewRay normalizes direction.
func NewRay(origin, direction math32.Vector3) Ray {
	if l := direction.Length(); l > 0 {
		direction = direction.DivScalar(l)
	} else {
		direction = math32.Vector3{}
	}
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

func (r Ray) degenerate() bool {
	return r.Direction == math32.Vector3{}
}

func component(v math32.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func unit(axis int, sign float32) math32.Vector3 {
	var v math32.Vector3
	switch axis {
	case 0:
		v.X = sign
	case 1:
		v.Y = sign
	default:
		v.Z = sign
	}
	return v
}

// IntersectRay runs the slab test of r against b and returns the distance to
// the nearest face in front of the ray origin. A ray starting inside the box
// reports its exit distance. The normal is the outward normal of that face.
func IntersectRay(b math32.Box3, r Ray) (dist float32, normal math32.Vector3, ok bool) {
	if r.degenerate() || b.IsEmpty() {
		return 0, math32.Vector3{}, false
	}
	tMin, tMax := float32(-scalar.MaxFloat32), float32(scalar.MaxFloat32)
	minAxis, maxAxis := -1, -1
	var minSign, maxSign float32

	for axis := range 3 {
		o := component(r.Origin, axis)
		inv := 1 / component(r.Direction, axis)
		t0 := (component(b.Min, axis) - o) * inv
		t1 := (component(b.Max, axis) - o) * inv
		entrySign, exitSign := float32(-1), float32(1)
		if inv < 0 {
			t0, t1 = t1, t0
			entrySign, exitSign = 1, -1
		}
		// A zero direction component on a face plane gives NaN; that slab
		// does not narrow the interval.
		if !scalar.IsNaN(t0) && t0 > tMin {
			tMin, minAxis, minSign = t0, axis, entrySign
		}
		if !scalar.IsNaN(t1) && t1 < tMax {
			tMax, maxAxis, maxSign = t1, axis, exitSign
		}
		if tMax <= tMin {
			return 0, math32.Vector3{}, false
		}
	}

	switch {
	case tMin > 0:
		if minAxis >= 0 {
			normal = unit(minAxis, minSign)
		}
		return tMin, normal, true
	case tMax > 0:
		if maxAxis >= 0 {
			normal = unit(maxAxis, maxSign)
		}
		return tMax, normal, true
	}
	return 0, math32.Vector3{}, false
}
