package accel

import "go-pathtracer/internal/core"

// Mesh-level octree, an alternative to the BVH for mesh acceleration
// (spec.md §4.6). The scene-level accelerator is always a BVH.
const (
	octreeMaxTriangles = 30
	octreeMaxDepth     = 7
)

// MeshPrimitiveAccessor mirrors Accessor but fixed to int-indexed
// triangles, the only primitive kind the octree is used for.
type MeshPrimitiveAccessor[H any] struct {
	AABB      func(tri int) core.AABB
	Center    func(tri int) core.Vec3
	Intersect func(tri int, r core.Ray, maxT float32) (hit H, t float32, ok bool)
}

type octreeNode[H any] struct {
	box      core.AABB
	tris     []int // leaf-only
	children []*octreeNode[H]
}

// Octree is the mesh-level alternative acceleration structure.
type Octree[H any] struct {
	root *octreeNode[H]
	acc  MeshPrimitiveAccessor[H]
}

// BuildOctree roots the tree at the mesh AABB and splits into eight
// children by the node center whenever a node holds more than
// octreeMaxTriangles triangles and is within octreeMaxDepth. A
// triangle is assigned to the first child whose AABB contains its
// centroid; each surviving child then shrinks its AABB to the tight
// union of its own triangles (spec.md §4.6).
func BuildOctree[H any](triCount int, meshBox core.AABB, acc MeshPrimitiveAccessor[H]) *Octree[H] {
	all := make([]int, triCount)
	for i := range all {
		all[i] = i
	}
	return &Octree[H]{
		root: buildOctreeNode(all, meshBox, 0, acc),
		acc:  acc,
	}
}

func (o *Octree[H]) AABB() core.AABB {
	if o.root == nil {
		return core.EmptyAABB
	}
	return o.root.box
}

func buildOctreeNode[H any](tris []int, box core.AABB, depth int, acc MeshPrimitiveAccessor[H]) *octreeNode[H] {
	if len(tris) <= octreeMaxTriangles || depth >= octreeMaxDepth {
		return &octreeNode[H]{box: box, tris: tris}
	}

	center := box.Centroid()
	childBuckets := make([][]int, 8)
	for _, tri := range tris {
		c := acc.Center(tri)
		oct := octantOf(c, center)
		childBuckets[oct] = append(childBuckets[oct], tri)
	}

	node := &octreeNode[H]{box: box}
	for oct := 0; oct < 8; oct++ {
		bucket := childBuckets[oct]
		if len(bucket) == 0 {
			continue // children with no triangles are discarded
		}
		childBox := core.EmptyAABB
		for _, tri := range bucket {
			childBox = core.Merge(childBox, acc.AABB(tri))
		}
		node.children = append(node.children, buildOctreeNode(bucket, childBox, depth+1, acc))
	}
	return node
}

func octantOf(p, center core.Vec3) int {
	oct := 0
	if p.X >= center.X {
		oct |= 1
	}
	if p.Y >= center.Y {
		oct |= 2
	}
	if p.Z >= center.Z {
		oct |= 4
	}
	return oct
}

// RayIntersect visits children in ascending order of ray entry
// distance, short-circuiting once the current best t is less than a
// child's entry distance (spec.md §4.6).
func (o *Octree[H]) RayIntersect(r core.Ray, maxT float32) (hit H, t float32, ok bool) {
	if o.root == nil {
		return hit, 0, false
	}
	return traverseOctree(o.root, r, maxT, o.acc)
}

type childEntry struct {
	idx   int
	tmin  float32
}

func traverseOctree[H any](node *octreeNode[H], r core.Ray, maxT float32, acc MeshPrimitiveAccessor[H]) (bestHit H, bestT float32, ok bool) {
	if hit, _, _ := node.box.RayIntersect(r, maxT); !hit {
		return bestHit, 0, false
	}

	if node.children == nil {
		bestT = maxT
		found := false
		for _, tri := range node.tris {
			if h, t, hitOk := acc.Intersect(tri, r, bestT); hitOk {
				bestT = t
				bestHit = h
				found = true
			}
		}
		return bestHit, bestT, found
	}

	entries := make([]childEntry, 0, len(node.children))
	for i, c := range node.children {
		if hit, tmin, _ := c.box.RayIntersect(r, maxT); hit {
			entries = append(entries, childEntry{idx: i, tmin: tmin})
		}
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].tmin < entries[i].tmin {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}

	curMaxT := maxT
	found := false
	for _, e := range entries {
		if found && curMaxT < e.tmin {
			break
		}
		h, t, hitOk := traverseOctree(node.children[e.idx], r, curMaxT, acc)
		if hitOk {
			curMaxT = t
			bestT = t
			bestHit = h
			found = true
		}
	}
	return bestHit, bestT, found
}
