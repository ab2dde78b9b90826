package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a binary bounding volume hierarchy. Each node owns
// its children. A node built from a single shape holds it as both children.
type BVHNode struct {
	Left  Shape
	Right Shape
	bbox  core.AABB
}

// NewBVH builds a hierarchy over shapes. The input slice is not modified.
func NewBVH(shapes []Shape) *BVHNode {
	// Work on a copy; building sorts in place
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return buildBVH(shapesCopy)
}

// buildBVH splits shapes at the median along the longest axis of their combined box
func buildBVH(shapes []Shape) *BVHNode {
	bbox := core.EmptyAABB()
	for _, shape := range shapes {
		bbox = core.NewAABBFromBoxes(bbox, shape.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(shapes) {
	case 0:
		return node
	case 1:
		node.Left = shapes[0]
		node.Right = shapes[0]
	case 2:
		node.Left = shapes[0]
		node.Right = shapes[1]
	default:
		sortShapesByAxis(shapes, bbox.LongestAxis())
		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid])
		node.Right = buildBVH(shapes[mid:])
	}

	return node
}

// sortShapesByAxis orders shapes by the low end of their box on one axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Axis(axis).Min < shapes[j].BoundingBox().Axis(axis).Min
	})
}

// Hit returns the closest hit in this subtree
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) || n.Left == nil {
		return nil, false
	}

	hitLeft, okLeft := n.Left.Hit(ray, rayT, sampler)
	if n.Right == n.Left {
		// Testing the same shape twice would redraw a medium's free flight
		return hitLeft, okLeft
	}

	rightT := rayT
	if okLeft {
		rightT.Max = hitLeft.T
	}
	if hitRight, okRight := n.Right.Hit(ray, rightT, sampler); okRight {
		return hitRight, true
	}

	return hitLeft, okLeft
}

// BoundingBox returns the box enclosing the whole subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

func (n *BVHNode) isShape() {}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	TotalNodes int
	LeafShapes int // Non-BVH children, counted once each
	MaxDepth   int
	AvgDepth   float64 // Mean depth of the leaf shapes
}

// Stats walks the hierarchy and collects node counts and depths
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.LeafShapes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafShapes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left, n.Right}
	if n.Right == n.Left {
		children = children[:1]
	}

	for _, child := range children {
		if child == nil {
			continue
		}
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
			continue
		}
		stats.LeafShapes++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
	}
}
