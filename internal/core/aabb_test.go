package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBMergeCommutativeAndAssociative(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewAABB(Vec3{-1, 2, 0.5}, Vec3{0.5, 3, 4})
	c := NewAABB(Vec3{5, -1, -1}, Vec3{6, 0, 0})

	ab := Merge(a, b)
	ba := Merge(b, a)
	assert.Equal(t, ab, ba)

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	assert.Equal(t, left, right)
}

func TestAABBContainsMatchesMergeUnion(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewAABB(Vec3{2, 2, 2}, Vec3{3, 3, 3})
	merged := Merge(a, b)

	pts := []Vec3{{0.5, 0.5, 0.5}, {2.5, 2.5, 2.5}, {10, 10, 10}, {1.5, 1.5, 1.5}}
	for _, p := range pts {
		want := a.Contains(p) || b.Contains(p)
		got := merged.Contains(p)
		assert.Equal(t, want, got, "point %v", p)
	}
}

func TestAABBRayIntersectSlab(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})

	hitRay := NewRay(Vec3{0, 0, -5}, Vec3{0, 0, 1})
	hit, tmin, tmax := box.RayIntersect(hitRay, 1e9)
	require.True(t, hit)
	assert.InDelta(t, 4, tmin, 1e-4)
	assert.InDelta(t, 6, tmax, 1e-4)

	missRay := NewRay(Vec3{5, 5, -5}, Vec3{0, 0, 1})
	hit2, _, _ := box.RayIntersect(missRay, 1e9)
	assert.False(t, hit2)
}
