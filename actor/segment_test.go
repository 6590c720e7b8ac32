package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSegment(t *testing.T) {
	s := Segment{V1: mgl64.Vec2{0, 0}, V2: mgl64.Vec2{10, 0}}

	t.Run("measures", func(t *testing.T) {
		if s.Len() != 10 || s.Len2() != 100 {
			t.Errorf("Len = %v, Len2 = %v", s.Len(), s.Len2())
		}
		if s.Dot(mgl64.Vec2{0, -1}) != 0 {
			t.Errorf("horizontal edge should project to zero on the y axis")
		}
		if s.Dot(mgl64.Vec2{1, 0}) != 10 {
			t.Errorf("Dot((1,0)) = %v, want 10", s.Dot(mgl64.Vec2{1, 0}))
		}
		if s.IsDegenerate() {
			t.Error("segment should not be degenerate")
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		p := mgl64.Vec2{3, 3}
		d := Segment{V1: p, V2: p}
		if !d.IsDegenerate() {
			t.Error("expected degenerate")
		}
		if d.ClosestPoint(mgl64.Vec2{9, 9}) != p {
			t.Error("closest point of a degenerate segment is its point")
		}
	})

	t.Run("closest point clamps", func(t *testing.T) {
		tests := []struct {
			point    mgl64.Vec2
			expected mgl64.Vec2
		}{
			{mgl64.Vec2{5, 5}, mgl64.Vec2{5, 0}},
			{mgl64.Vec2{-3, 2}, mgl64.Vec2{0, 0}},
			{mgl64.Vec2{14, -1}, mgl64.Vec2{10, 0}},
		}
		for _, tt := range tests {
			if got := s.ClosestPoint(tt.point); got != tt.expected {
				t.Errorf("ClosestPoint(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		}
	})

	t.Run("contains point", func(t *testing.T) {
		if !s.ContainsPoint(mgl64.Vec2{4, 0}, 1e-9) {
			t.Error("(4,0) is on the segment")
		}
		if s.ContainsPoint(mgl64.Vec2{4, 0.1}, 1e-9) {
			t.Error("(4,0.1) is off the segment")
		}
	})

	t.Run("lerp and aabb", func(t *testing.T) {
		if s.Lerp(0.5) != (mgl64.Vec2{5, 0}) {
			t.Errorf("Lerp(0.5) = %v", s.Lerp(0.5))
		}
		reversed := Segment{V1: mgl64.Vec2{4, 8}, V2: mgl64.Vec2{-2, 1}}
		if reversed.AABB() != (AABB{Min: mgl64.Vec2{-2, 1}, Max: mgl64.Vec2{4, 8}}) {
			t.Errorf("AABB = %v", reversed.AABB())
		}
	})
}

func TestConvexHull(t *testing.T) {
	t.Run("quad", func(t *testing.T) {
		hull := ConvexHull([]mgl64.Vec2{{5, 7}, {12, 7}, {7, 3}, {10, 2}})
		expected := []mgl64.Vec2{{5, 7}, {7, 3}, {10, 2}, {12, 7}}
		if len(hull) != len(expected) {
			t.Fatalf("hull = %v, want %v", hull, expected)
		}
		for i := range expected {
			if hull[i] != expected[i] {
				t.Errorf("hull[%d] = %v, want %v", i, hull[i], expected[i])
			}
		}
	})

	t.Run("interior and duplicate points are dropped", func(t *testing.T) {
		hull := ConvexHull([]mgl64.Vec2{{0, 0}, {10, 0}, {5, 5}, {10, 10}, {0, 10}, {10, 0}, {5, 0}})
		if len(hull) != 4 {
			t.Fatalf("hull = %v, want 4 corners", hull)
		}
		if signedArea(hull) != 100 {
			t.Errorf("hull area = %v, want 100 counter-clockwise", signedArea(hull))
		}
	})

	t.Run("too few points", func(t *testing.T) {
		hull := ConvexHull([]mgl64.Vec2{{1, 1}, {1, 1}})
		if len(hull) != 1 {
			t.Errorf("hull = %v, want a single point", hull)
		}
	})
}
