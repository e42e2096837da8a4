package shape

import "go-pathtracer/internal/core"

// IntersectMollerTrumbore is the classic Möller-Trumbore ray/triangle
// test (spec.md §4.4). Returns barycentric (u,v) and t; ok is false on
// a miss (parallel ray, barycentrics outside the triangle, or t outside
// (0, maxT]).
func IntersectMollerTrumbore(r core.Ray, a, b, c core.Vec3, maxT float32) (u, v, t float32, ok bool) {
	const eps = 1e-8

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := core.Cross(r.D, edge2)
	det := core.Dot(edge1, h)
	if det > -eps && det < eps {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	s := r.O.Sub(a)
	u = invDet * core.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := core.Cross(s, edge1)
	v = invDet * core.Dot(r.D, q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = invDet * core.Dot(edge2, q)
	if t <= 0 || t > maxT {
		return 0, 0, 0, false
	}
	return u, v, t, true
}

// IntersectWatertight is the Woop et al. (JCGT 2013) watertight
// ray/triangle test described in spec.md §4.4: the ray is transformed
// so z is the dominant axis, vertices are sheared and scaled, and the
// three edge functions U/V/W must share the sign of det. It is the
// default algorithm (set via TriangleMesh.Algorithm).
func IntersectWatertight(r core.Ray, a, b, c core.Vec3, maxT float32) (u, v, t float32, ok bool) {
	// Translate vertices into ray-relative space.
	a = a.Sub(r.O)
	b = b.Sub(r.O)
	c = c.Sub(r.O)

	// Pick the dominant axis of the ray direction to shear/permute onto z.
	kz := dominantAxis(r.D)
	kx := kz + 1
	if kx == 3 {
		kx = 0
	}
	ky := kx + 1
	if ky == 3 {
		ky = 0
	}

	// Winding-preserving swap if z-direction is negative.
	d := axis(r.D, kz)
	if d < 0 {
		kx, ky = ky, kx
	}

	sx := axis(r.D, kx) / axis(r.D, kz)
	sy := axis(r.D, ky) / axis(r.D, kz)
	sz := 1 / axis(r.D, kz)

	ax := axis(a, kx) - sx*axis(a, kz)
	ay := axis(a, ky) - sy*axis(a, kz)
	bx := axis(b, kx) - sx*axis(b, kz)
	by := axis(b, ky) - sy*axis(b, kz)
	cx := axis(c, kx) - sx*axis(c, kz)
	cy := axis(c, ky) - sy*axis(c, kz)

	U := cx*by - cy*bx
	V := ax*cy - ay*cx
	W := bx*ay - by*ax

	// Fall back to double precision if any edge function landed exactly
	// on zero, per spec.md §4.4.
	if U == 0 || V == 0 || W == 0 {
		cxD, byD := float64(cx), float64(by)
		cyD, bxD := float64(cy), float64(bx)
		axD, cyD2 := float64(ax), float64(cy)
		ayD, cxD2 := float64(ay), float64(cx)
		bxD2, ayD2 := float64(bx), float64(ay)
		byD2, axD2 := float64(by), float64(ax)
		U = float32(cxD*byD - cyD*bxD)
		V = float32(axD*cyD2 - ayD*cxD2)
		W = float32(bxD2*ayD2 - byD2*axD2)
	}

	if (U < 0 || V < 0 || W < 0) && (U > 0 || V > 0 || W > 0) {
		return 0, 0, 0, false
	}

	det := U + V + W
	if det == 0 {
		return 0, 0, 0, false
	}

	az := sz * axis(a, kz)
	bz := sz * axis(b, kz)
	cz := sz * axis(c, kz)

	tScaled := U*az + V*bz + W*cz

	// Reject on sign-of-det / sign-of-t mismatch, or t > maxT*det.
	if det < 0 {
		if tScaled >= 0 || tScaled < maxT*det {
			return 0, 0, 0, false
		}
	} else {
		if tScaled <= 0 || tScaled > maxT*det {
			return 0, 0, 0, false
		}
	}

	invDet := 1 / det
	u = V * invDet
	v = W * invDet
	t = tScaled * invDet
	return u, v, t, true
}

func dominantAxis(d core.Vec3) int {
	ax, ay, az := absf(d.X), absf(d.Y), absf(d.Z)
	if ax > ay && ax > az {
		return 0
	}
	if ay > az {
		return 1
	}
	return 2
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func axis(v core.Vec3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
