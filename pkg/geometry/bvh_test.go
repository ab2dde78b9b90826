package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockShape for testing; used through a pointer so shapes compare by identity
type MockShape struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func (m MockShape) BoundingBox() core.AABB {
	return m.boundingBox
}

func (m MockShape) isShape() {}

func neverHit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return nil, false
}

func mockShapesAlongX(n int) []Shape {
	shapes := make([]Shape, n)
	for i := 0; i < n; i++ {
		shapes[i] = &MockShape{
			boundingBox: core.NewAABBFromPoints(core.NewVec3(float64(i), 0, 0), core.NewVec3(float64(i)+1, 1, 1)),
			hitFn:       neverHit,
		}
	}
	return shapes
}

func TestBVH_SmallInputs(t *testing.T) {
	single := mockShapesAlongX(1)
	node := NewBVH(single)
	if node.Left != single[0] || node.Right != single[0] {
		t.Errorf("Single shape should be both children")
	}

	pair := mockShapesAlongX(2)
	node = NewBVH(pair)
	if node.Left != pair[0] || node.Right != pair[1] {
		t.Errorf("Two shapes should become the two children")
	}

	empty := NewBVH(nil)
	if _, ok := empty.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), core.UniverseInterval, nil); ok {
		t.Error("Empty BVH should never be hit")
	}
}

func TestBVH_Stats(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedNodes int
		expectedDepth int
	}{
		{"one shape", 1, 1, 0},
		{"two shapes", 2, 1, 0},
		{"three shapes", 3, 3, 1},
		{"four shapes", 4, 3, 1},
		{"eight shapes", 8, 7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewBVH(mockShapesAlongX(tt.count)).Stats()
			if stats.TotalNodes != tt.expectedNodes {
				t.Errorf("Expected %d nodes, got %d", tt.expectedNodes, stats.TotalNodes)
			}
			if stats.MaxDepth != tt.expectedDepth {
				t.Errorf("Expected max depth %d, got %d", tt.expectedDepth, stats.MaxDepth)
			}
			if stats.LeafShapes != tt.count {
				t.Errorf("Expected %d leaf shapes, got %d", tt.count, stats.LeafShapes)
			}
		})
	}
}

func TestBVH_SingleShapeTestedOnce(t *testing.T) {
	calls := 0
	shape := &MockShape{
		boundingBox: core.NewAABBFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			calls++
			return &material.HitRecord{T: 1}, true
		},
	}

	node := NewBVH([]Shape{shape})
	if _, ok := node.Hit(core.NewRay(core.NewVec3(0.5, 0.5, -2), core.NewVec3(0, 0, 1)), core.UniverseInterval, nil); !ok {
		t.Fatal("Expected hit")
	}
	if calls != 1 {
		t.Errorf("Expected the shape to be tested once, got %d calls", calls)
	}
}

func TestBVH_DoesNotModifyInput(t *testing.T) {
	shapes := mockShapesAlongX(10)
	// Reverse so building has to sort
	for i, j := 0, len(shapes)-1; i < j; i, j = i+1, j-1 {
		shapes[i], shapes[j] = shapes[j], shapes[i]
	}
	first := shapes[0]

	NewBVH(shapes)

	if shapes[0] != first {
		t.Error("NewBVH reordered the caller's slice")
	}
}

func TestBVH_BoundingBoxCoversAllShapes(t *testing.T) {
	shapes := mockShapesAlongX(7)
	bbox := NewBVH(shapes).BoundingBox()

	for i, shape := range shapes {
		b := shape.BoundingBox()
		if !boxContains(bbox, b.Min()) || !boxContains(bbox, b.Max()) {
			t.Errorf("Shape %d box %v not inside BVH box %v", i, b, bbox)
		}
	}
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	randomVec := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	shapes := make([]Shape, 0, 200)
	for i := 0; i < 200; i++ {
		center := randomVec(-10, 10)
		switch i % 5 {
		case 0:
			u := core.NewVec3(random.Float64()*2, 0, random.Float64())
			v := core.NewVec3(0, random.Float64()*2, random.Float64())
			shapes = append(shapes, NewQuad(center, u, v, testMaterial))
		case 1:
			shapes = append(shapes, NewBox(center, center.Add(randomVec(0.2, 1.5)), testMaterial))
		case 2:
			box := NewBox(core.NewVec3(0, 0, 0), randomVec(0.2, 1.5), testMaterial)
			shapes = append(shapes, NewTranslate(NewRotateY(box, random.Float64()*360), center))
		case 3:
			sphere := NewSphere(core.NewVec3(0, 0, 0), 0.2+random.Float64()*0.8, testMaterial)
			shapes = append(shapes, NewTranslate(sphere, center))
		default:
			shapes = append(shapes, NewSphere(center, 0.2+random.Float64()*0.8, testMaterial))
		}
	}

	list := NewHittableList(shapes...)
	bvh := NewBVH(shapes)
	rayT := core.NewInterval(0.001, math.Inf(1))

	hits := 0
	for i := 0; i < 5000; i++ {
		origin := randomVec(-20, 20)
		direction := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
		ray := core.NewRay(origin, direction)

		listHit, listOK := list.Hit(ray, rayT, nil)
		bvhHit, bvhOK := bvh.Hit(ray, rayT, nil)

		if listOK != bvhOK {
			t.Fatalf("Ray %d: linear scan hit=%v, BVH hit=%v", i, listOK, bvhOK)
		}
		if !listOK {
			continue
		}
		hits++
		if math.Abs(listHit.T-bvhHit.T) > 1e-9 {
			t.Fatalf("Ray %d: linear scan t=%f, BVH t=%f", i, listHit.T, bvhHit.T)
		}
		if !vecNear(listHit.Point, bvhHit.Point, 1e-9) {
			t.Fatalf("Ray %d: linear scan point %v, BVH point %v", i, listHit.Point, bvhHit.Point)
		}
		if !vecNear(listHit.Normal, bvhHit.Normal, 1e-9) || listHit.FrontFace != bvhHit.FrontFace {
			t.Fatalf("Ray %d: linear scan normal %v (front=%v), BVH normal %v (front=%v)",
				i, listHit.Normal, listHit.FrontFace, bvhHit.Normal, bvhHit.FrontFace)
		}
	}

	if hits == 0 {
		t.Error("Test rays never hit anything")
	}
}

func TestBVH_RightChildSeesNarrowedInterval(t *testing.T) {
	var rightMax float64
	left := &MockShape{
		boundingBox: core.NewAABBFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			return &material.HitRecord{T: 5}, true
		},
	}
	right := &MockShape{
		boundingBox: core.NewAABBFromPoints(core.NewVec3(2, 0, 0), core.NewVec3(3, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			rightMax = rayT.Max
			return nil, false
		},
	}

	node := NewBVH([]Shape{left, right})
	hit, ok := node.Hit(core.NewRay(core.NewVec3(-1, 0.5, 0.5), core.NewVec3(1, 0, 0)), core.NewInterval(0.001, 100), nil)

	if !ok || hit.T != 5 {
		t.Fatalf("Expected the left hit at t=5, got ok=%v", ok)
	}
	if rightMax != 5 {
		t.Errorf("Expected right child interval max 5, got %f", rightMax)
	}
}
