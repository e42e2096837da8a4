// Package accel implements the generic BVH (surface-area heuristic)
// and the mesh-level octree alternative described in spec.md §4.5/§4.6.
// It is instantiated twice: once over scene-level shape references,
// once over mesh-level triangle indices, sharing the same build/
// traverse code, parameterized by a small Accessor of closures rather
// than an open class hierarchy (spec.md §9's design note on the
// "generic traits mixin").
package accel

import (
	"go-pathtracer/internal/core"
)

// Accessor supplies the three primitive operations the BVH needs:
// bounding box, centroid, and a ray test that returns a hit payload H
// plus the hit parameter t.
type Accessor[P any, H any] struct {
	AABB      func(p P) core.AABB
	Center    func(p P) core.Vec3
	Intersect func(p P, r core.Ray, maxT float32) (hit H, t float32, ok bool)
}

const (
	sahBins     = 12
	travCost    = 1.0
	isectCost   = 2.0
	leafMaxPrim = 4 // nodes above this size split whenever SAH finds a non-empty partition
)

type bvhNode[P any] struct {
	box      core.AABB
	axis     int
	prims    []P // non-empty only at leaves
	left     *bvhNode[P]
	right    *bvhNode[P]
}

// BVH is a two-child tree over primitives of type P.
type BVH[P any, H any] struct {
	root *bvhNode[P]
	acc  Accessor[P, H]
}

// Build constructs the BVH using the surface-area heuristic of
// spec.md §4.5: 12 bins along the node's longest axis, cost
// C_trav + cost/SA_node with C_trav=1, C_isect=2, splitting when
// N_prim > 4 or best_cost < N_prim*C_isect.
func Build[P any, H any](prims []P, acc Accessor[P, H]) *BVH[P, H] {
	items := make([]P, len(prims))
	copy(items, prims)
	return &BVH[P, H]{
		root: buildNode(items, acc),
		acc:  acc,
	}
}

func (b *BVH[P, H]) AABB() core.AABB {
	if b.root == nil {
		return core.EmptyAABB
	}
	return b.root.box
}

type binInfo struct {
	box   core.AABB
	count int
}

func buildNode[P any, H any](prims []P, acc Accessor[P, H]) *bvhNode[P] {
	if len(prims) == 0 {
		return &bvhNode[P]{box: core.EmptyAABB}
	}

	nodeBox := core.EmptyAABB
	centroidBox := core.EmptyAABB
	for _, p := range prims {
		nodeBox = core.Merge(nodeBox, acc.AABB(p))
		c := acc.Center(p)
		centroidBox = core.Merge(centroidBox, core.NewAABB(c, c))
	}

	axis :=centroidBox.LongestAxis()
	extentMin := centroidBox.AxisValue(axis, true)
	extentMax := centroidBox.AxisValue(axis, false)

	if extentMax-extentMin < 1e-12 {
		// Degenerate centroid spread: nothing meaningful to split on.
		return &bvhNode[P]{box: nodeBox, prims: prims}
	}

	binOf := func(c core.Vec3) int {
		var v float32
		switch axis {
		case 0:
			v = c.X
		case 1:
			v = c.Y
		default:
			v = c.Z
		}
		b := int(float32(sahBins) * (v - extentMin) / (extentMax - extentMin))
		if b < 0 {
			b = 0
		}
		if b >= sahBins {
			b = sahBins - 1
		}
		return b
	}

	bins := make([]binInfo, sahBins)
	for i := range bins {
		bins[i].box = core.EmptyAABB
	}
	binIndex := make([]int, len(prims))
	for i, p := range prims {
		bi := binOf(acc.Center(p))
		binIndex[i] = bi
		bins[bi].box = core.Merge(bins[bi].box, acc.AABB(p))
		bins[bi].count++
	}

	// Prefix/suffix sweeps to evaluate the B-1 candidate splits.
	leftBox := make([]core.AABB, sahBins)
	leftCount := make([]int, sahBins)
	acc1 := core.EmptyAABB
	cnt := 0
	for i := 0; i < sahBins; i++ {
		acc1 = core.Merge(acc1, bins[i].box)
		cnt += bins[i].count
		leftBox[i] = acc1
		leftCount[i] = cnt
	}

	rightBox := make([]core.AABB, sahBins)
	rightCount := make([]int, sahBins)
	acc2 := core.EmptyAABB
	cnt = 0
	for i := sahBins - 1; i >= 0; i-- {
		acc2 = core.Merge(acc2, bins[i].box)
		cnt += bins[i].count
		rightBox[i] = acc2
		rightCount[i] = cnt
	}

	nodeSA := nodeBox.SurfaceArea()
	bestCost := float32(1e30)
	bestSplit := -1
	for split := 0; split < sahBins-1; split++ {
		nl, nr := leftCount[split], rightCount[split+1]
		if nl == 0 || nr == 0 {
			continue
		}
		cost := leftBox[split].SurfaceArea()*float32(nl) + rightBox[split+1].SurfaceArea()*float32(nr)
		if cost < bestCost {
			bestCost = cost
			bestSplit = split
		}
	}

	totalCost := float32(travCost) + bestCost/nodeSA
	shouldSplit := bestSplit >= 0 && (len(prims) > leafMaxPrim || totalCost < float32(len(prims))*isectCost)
	if !shouldSplit {
		return &bvhNode[P]{box: nodeBox, prims: prims}
	}

	var leftPrims, rightPrims []P
	for i, p := range prims {
		if binIndex[i] <= bestSplit {
			leftPrims = append(leftPrims, p)
		} else {
			rightPrims = append(rightPrims, p)
		}
	}

	// A partition that leaves one side empty stops recursion (spec.md §4.5.6).
	if len(leftPrims) == 0 || len(rightPrims) == 0 {
		return &bvhNode[P]{box: nodeBox, prims: prims}
	}

	return &bvhNode[P]{
		box:   nodeBox,
		axis:  axis,
		left:  buildNode(leftPrims, acc),
		right: buildNode(rightPrims, acc),
	}
}

// RayIntersect traverses the tree: at an interior node, test the node
// AABB against the ray bounded by the current best t; recurse into the
// near child first (by sign of ray direction on the split axis), then
// the far child with the updated t. At a leaf, test every primitive and
// keep the closest hit.
func (b *BVH[P, H]) RayIntersect(r core.Ray, maxT float32) (hit H, t float32, ok bool) {
	if b.root == nil {
		return hit, 0, false
	}
	return traverse(b.root, r, maxT, b.acc)
}

func traverse[P any, H any](node *bvhNode[P], r core.Ray, maxT float32, acc Accessor[P, H]) (bestHit H, bestT float32, ok bool) {
	if hit, _, _ := node.box.RayIntersect(r, maxT); !hit {
		return bestHit, 0, false
	}

	if node.prims != nil {
		bestT = maxT
		found := false
		for _, p := range node.prims {
			if h, t, hitOk := acc.Intersect(p, r, bestT); hitOk {
				bestT = t
				bestHit = h
				found = true
			}
		}
		return bestHit, bestT, found
	}

	near, far := node.left, node.right
	dirOnAxis := axisOf(r.D, node.axis)
	if dirOnAxis < 0 {
		near, far = far, near
	}

	curMaxT := maxT
	hitN, tN, okN := traverse(near, r, curMaxT, acc)
	if okN {
		curMaxT = tN
	}
	hitF, tF, okF := traverse(far, r, curMaxT, acc)

	if okF {
		return hitF, tF, true
	}
	return hitN, tN, okN
}

func axisOf(v core.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
