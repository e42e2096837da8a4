package core

// Ray is immutable after construction: origin, unit direction, and the
// per-component reciprocal direction cached so AABB slab tests never
// divide. Per spec.md §3.
type Ray struct {
	O    Vec3
	D    Vec3
	Dinv Vec3
}

func NewRay(o, d Vec3) Ray {
	d = d.Normalize()
	return Ray{
		O:    o,
		D:    d,
		Dinv: Vec3{1 / d.X, 1 / d.Y, 1 / d.Z},
	}
}

func (r Ray) At(t float32) Vec3 {
	return r.O.Add(r.D.Scale(t))
}
