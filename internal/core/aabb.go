package core

import "math"

// AABB is an axis-aligned bounding box with invariant Min[i] <= Max[i]
// for every axis. Per spec.md §3/§4.3.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB is the identity element for Merge: Merge(EmptyAABB, x) == x.
var EmptyAABB = AABB{
	Min: Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
	Max: Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
}

func NewAABB(p1, p2 Vec3) AABB {
	return AABB{
		Min: Vec3{minf(p1.X, p2.X), minf(p1.Y, p2.Y), minf(p1.Z, p2.Z)},
		Max: Vec3{maxf(p1.X, p2.X), maxf(p1.Y, p2.Y), maxf(p1.Z, p2.Z)},
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Merge is commutative and associative: Merge(Merge(a,b),c) == Merge(a,Merge(b,c)).
func Merge(a, b AABB) AABB {
	return AABB{
		Min: Vec3{minf(a.Min.X, b.Min.X), minf(a.Min.Y, b.Min.Y), minf(a.Min.Z, b.Min.Z)},
		Max: Vec3{maxf(a.Max.X, b.Max.X), maxf(a.Max.Y, b.Max.Y), maxf(a.Max.Z, b.Max.Z)},
	}
}

func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}

func (a AABB) Contains(p Vec3) bool {
	return a.Min.X <= p.X && p.X <= a.Max.X &&
		a.Min.Y <= p.Y && p.Y <= a.Max.Y &&
		a.Min.Z <= p.Z && p.Z <= a.Max.Z
}

func (a AABB) SurfaceArea() float32 {
	d := a.Max.Sub(a.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

func (a AABB) Centroid() Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// LongestAxis returns 0/1/2 for X/Y/Z.
func (a AABB) LongestAxis() int {
	d := a.Max.Sub(a.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Offset maps a world point inside the box to [0,1]^3 relative to Min/Max.
func (a AABB) Offset(p Vec3) Vec3 {
	o := p.Sub(a.Min)
	if a.Max.X > a.Min.X {
		o.X /= a.Max.X - a.Min.X
	}
	if a.Max.Y > a.Min.Y {
		o.Y /= a.Max.Y - a.Min.Y
	}
	if a.Max.Z > a.Min.Z {
		o.Z /= a.Max.Z - a.Min.Z
	}
	return o
}

func (a AABB) AxisValue(axis int, useMin bool) float32 {
	if useMin {
		switch axis {
		case 0:
			return a.Min.X
		case 1:
			return a.Min.Y
		default:
			return a.Min.Z
		}
	}
	switch axis {
	case 0:
		return a.Max.X
	case 1:
		return a.Max.Y
	default:
		return a.Max.Z
	}
}

// RayIntersect is the slab test of spec.md §4.3: per-axis t1/t2 computed
// from the cached reciprocal direction, tmin = max over axes of
// min(t1,t2), tmax = min over axes of max(t1,t2). A hit requires
// tmin <= tmax, tmax >= 0 and tmin <= maxt.
func (a AABB) RayIntersect(r Ray, maxt float32) (bool, float32, float32) {
	tmin := float32(0)
	tmax := maxt

	axisMinMax := func(amin, amax, o, dinv float32) (float32, float32) {
		t1 := (amin - o) * dinv
		t2 := (amax - o) * dinv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		return t1, t2
	}

	t1, t2 := axisMinMax(a.Min.X, a.Max.X, r.O.X, r.Dinv.X)
	tmin = maxf(tmin, t1)
	tmax = minf(tmax, t2)

	t1, t2 = axisMinMax(a.Min.Y, a.Max.Y, r.O.Y, r.Dinv.Y)
	tmin = maxf(tmin, t1)
	tmax = minf(tmax, t2)

	t1, t2 = axisMinMax(a.Min.Z, a.Max.Z, r.O.Z, r.Dinv.Z)
	tmin = maxf(tmin, t1)
	tmax = minf(tmax, t2)

	return tmin <= tmax && tmax >= 0, tmin, tmax
}
