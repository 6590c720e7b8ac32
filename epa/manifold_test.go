package epa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

func TestResolvePointsOfContact(t *testing.T) {
	tests := []struct {
		name     string
		a, b     actor.ConvexShape
		normal   mgl64.Vec2
		expected []mgl64.Vec2
	}{
		{
			name:     "square face against square face",
			a:        actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10}),
			b:        actor.NewBox(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}),
			normal:   mgl64.Vec2{0, -1},
			expected: []mgl64.Vec2{{10, 10}, {0, 10}},
		},
		{
			name:     "two circles give both surface points",
			a:        actor.NewCircle(mgl64.Vec2{0, 0}, 20),
			b:        actor.NewCircle(mgl64.Vec2{30, 0}, 20),
			normal:   mgl64.Vec2{1, 0},
			expected: []mgl64.Vec2{{10, 0}, {20, 0}},
		},
		{
			name:     "circle against polygon gives the circle point",
			a:        actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10}),
			b:        actor.NewCircle(mgl64.Vec2{24, 10}, 5),
			normal:   mgl64.Vec2{1, 0},
			expected: []mgl64.Vec2{{19, 10}},
		},
		{
			name:     "polygon against circle gives the circle point",
			a:        actor.NewCircle(mgl64.Vec2{24, 10}, 5),
			b:        actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10}),
			normal:   mgl64.Vec2{-1, 0},
			expected: []mgl64.Vec2{{19, 10}},
		},
		{
			name:     "vertical faces",
			a:        mustPolygon(t, mgl64.Vec2{0, 0}, mgl64.Vec2{40, 0}, mgl64.Vec2{40, 40}, mgl64.Vec2{0, 40}),
			b:        mustPolygon(t, mgl64.Vec2{30, 0}, mgl64.Vec2{60, 0}, mgl64.Vec2{30, 30}),
			normal:   mgl64.Vec2{1, 0},
			expected: []mgl64.Vec2{{30, 30}, {30, 0}},
		},
		{
			name:     "small box on large box is clipped to the smaller face",
			a:        actor.NewBox(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 1}),
			b:        actor.NewBox(mgl64.Vec2{2, 1.5}, mgl64.Vec2{1, 1}),
			normal:   mgl64.Vec2{0, 1},
			expected: []mgl64.Vec2{{1, 0.5}, {3, 0.5}},
		},
		{
			name:     "large box on small box keeps the clipped overlap",
			a:        actor.NewBox(mgl64.Vec2{2, 1.5}, mgl64.Vec2{1, 1}),
			b:        actor.NewBox(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 1}),
			normal:   mgl64.Vec2{0, -1},
			expected: []mgl64.Vec2{{1, 1}, {3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := constraint.CollisionResult{Normal: tt.normal}
			if err := ResolvePointsOfContact(tt.a, tt.b, &result); err != nil {
				t.Fatalf("ResolvePointsOfContact failed: %v", err)
			}

			if len(result.Contacts) != len(tt.expected) {
				t.Fatalf("contacts = %v, want %v", result.Contacts, tt.expected)
			}
			for i := range tt.expected {
				if !vec2Equal(result.Contacts[i], tt.expected[i], 1e-9) {
					t.Errorf("contact %d = %v, want %v", i, result.Contacts[i], tt.expected[i])
				}
			}
		})
	}
}

func TestResolvePointsOfContact_Failures(t *testing.T) {
	t.Run("incident edge outside the reference edge", func(t *testing.T) {
		a := actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10})
		b := actor.NewBox(mgl64.Vec2{40, 10}, mgl64.Vec2{10, 10})
		result := constraint.CollisionResult{Normal: mgl64.Vec2{0, -1}}

		err := ResolvePointsOfContact(a, b, &result)
		if !errors.Is(err, ErrClipFailed) {
			t.Errorf("expected ErrClipFailed, got %v", err)
		}
		if len(result.Contacts) != 0 {
			t.Errorf("no contact expected, got %v", result.Contacts)
		}
	})

	t.Run("incident edge above the reference edge", func(t *testing.T) {
		a := actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10})
		b := actor.NewBox(mgl64.Vec2{10, -20}, mgl64.Vec2{10, 10})
		result := constraint.CollisionResult{Normal: mgl64.Vec2{0, -1}}

		err := ResolvePointsOfContact(a, b, &result)
		if !errors.Is(err, ErrNoContacts) {
			t.Errorf("expected ErrNoContacts, got %v", err)
		}
		if len(result.Contacts) != 0 {
			t.Errorf("no contact expected, got %v", result.Contacts)
		}
	})

	t.Run("contact tolerance widens the filter", func(t *testing.T) {
		a := actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{10, 10})
		b := actor.NewBox(mgl64.Vec2{10, -20}, mgl64.Vec2{10, 10})
		result := constraint.CollisionResult{Normal: mgl64.Vec2{0, -1}}

		settings := DefaultSettings()
		settings.ContactTolerance = 11
		if err := settings.ResolvePointsOfContact(a, b, &result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Contacts) != 2 {
			t.Errorf("expected 2 contacts, got %v", result.Contacts)
		}
	})

	// the gap is 10 whatever the length of the reference edge
	for _, halfWidth := range []float64{10, 100, 1000} {
		t.Run(fmt.Sprintf("contact tolerance is a distance, reference half width %v", halfWidth), func(t *testing.T) {
			a := actor.NewBox(mgl64.Vec2{10, 10}, mgl64.Vec2{halfWidth, 10})
			b := actor.NewBox(mgl64.Vec2{10, -20}, mgl64.Vec2{10, 10})
			settings := DefaultSettings()

			settings.ContactTolerance = 9
			result := constraint.CollisionResult{Normal: mgl64.Vec2{0, -1}}
			if err := settings.ResolvePointsOfContact(a, b, &result); !errors.Is(err, ErrNoContacts) {
				t.Errorf("tolerance 9: expected ErrNoContacts, got %v (%v)", err, result.Contacts)
			}

			settings.ContactTolerance = 11
			result = constraint.CollisionResult{Normal: mgl64.Vec2{0, -1}}
			if err := settings.ResolvePointsOfContact(a, b, &result); err != nil {
				t.Fatalf("tolerance 11: unexpected error: %v", err)
			}
			if len(result.Contacts) != 2 {
				t.Errorf("tolerance 11: expected 2 contacts, got %v", result.Contacts)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name          string
		v1, v2        mgl64.Vec2
		expected      []mgl64.Vec2
		expectedCount int
	}{
		{"both kept", mgl64.Vec2{1, 0}, mgl64.Vec2{3, 0}, []mgl64.Vec2{{1, 0}, {3, 0}}, 2},
		{"first kept, crossing added", mgl64.Vec2{2, 0}, mgl64.Vec2{-2, 4}, []mgl64.Vec2{{2, 0}, {0, 2}}, 2},
		{"second kept, crossing added", mgl64.Vec2{-2, 0}, mgl64.Vec2{2, 0}, []mgl64.Vec2{{2, 0}, {0, 0}}, 2},
		{"on the plane is kept", mgl64.Vec2{0, 0}, mgl64.Vec2{-1, 0}, []mgl64.Vec2{{0, 0}}, 1},
		{"both dropped", mgl64.Vec2{-1, 0}, mgl64.Vec2{-3, 0}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, count := clip(tt.v1, tt.v2, mgl64.Vec2{1, 0}, 0)
			if count != tt.expectedCount {
				t.Fatalf("count = %d, want %d", count, tt.expectedCount)
			}
			for i := 0; i < count; i++ {
				if !vec2Equal(points[i], tt.expected[i], 1e-12) {
					t.Errorf("point %d = %v, want %v", i, points[i], tt.expected[i])
				}
			}
		})
	}
}

func mustPolygon(t *testing.T, points ...mgl64.Vec2) *actor.Polygon {
	t.Helper()
	p, err := actor.NewPolygon(points)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}
