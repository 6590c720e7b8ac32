package feather2d

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("feather2d: invalid scene")

// Scene is a set of named bodies loaded from YAML.
type Scene struct {
	Names  []string
	Bodies []*actor.RigidBody
}

// Name returns the name of body, or an empty string when the body is not in the scene.
func (s *Scene) Name(body *actor.RigidBody) string {
	for i, b := range s.Bodies {
		if b == body {
			return s.Names[i]
		}
	}
	return ""
}

// Pairs returns every pair of scene bodies that can collide.
func (s *Scene) Pairs() []Pair {
	return AllPairs(s.Bodies)
}

type sceneFile struct {
	Bodies []bodyConfig `yaml:"bodies"`
}

type bodyConfig struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Shape    shapeConfig    `yaml:"shape"`
	Material materialConfig `yaml:"material"`
	Velocity []float64      `yaml:"velocity"`
	Angular  float64        `yaml:"angular_velocity"`
}

type shapeConfig struct {
	Kind        string      `yaml:"kind"`
	Center      []float64   `yaml:"center"`
	HalfExtents []float64   `yaml:"half_extents"`
	Radius      float64     `yaml:"radius"`
	Points      [][]float64 `yaml:"points"`
	Angle       float64     `yaml:"angle"`
}

type materialConfig struct {
	Density         *float64 `yaml:"density"`
	Restitution     float64  `yaml:"restitution"`
	StaticFriction  float64  `yaml:"static_friction"`
	DynamicFriction float64  `yaml:"dynamic_friction"`
}

// LoadScene reads the YAML scene file at path.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return ParseScene(f)
}

// ParseScene decodes a YAML scene. Bodies without a name get a random one.
// Polygons are given in world coordinates and recentered on their centroid.
func ParseScene(r io.Reader) (*Scene, error) {
	var file sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	scene := &Scene{
		Names:  make([]string, 0, len(file.Bodies)),
		Bodies: make([]*actor.RigidBody, 0, len(file.Bodies)),
	}
	for i, bc := range file.Bodies {
		name := bc.Name
		if name == "" {
			name = uuid.NewString()
		}

		body, err := bc.build()
		if err != nil {
			return nil, fmt.Errorf("%w: body %d (%s): %w", ErrInvalidScene, i, name, err)
		}

		scene.Names = append(scene.Names, name)
		scene.Bodies = append(scene.Bodies, body)
	}

	return scene, nil
}

func (bc bodyConfig) build() (*actor.RigidBody, error) {
	var bodyType actor.BodyType
	switch bc.Type {
	case "", "dynamic":
		bodyType = actor.BodyTypeDynamic
	case "static":
		bodyType = actor.BodyTypeStatic
	default:
		return nil, fmt.Errorf("unknown body type %q", bc.Type)
	}

	shape, err := bc.Shape.build()
	if err != nil {
		return nil, err
	}

	material := actor.Material{
		Density:         1,
		Restitution:     bc.Material.Restitution,
		StaticFriction:  bc.Material.StaticFriction,
		DynamicFriction: bc.Material.DynamicFriction,
	}
	if bc.Material.Density != nil {
		material.Density = *bc.Material.Density
	}
	if material.Density <= 0 {
		return nil, fmt.Errorf("density must be positive, got %v", material.Density)
	}

	body := actor.NewRigidBody(shape, bodyType, material)
	if bc.Velocity != nil {
		if body.Velocity, err = toVec2("velocity", bc.Velocity); err != nil {
			return nil, err
		}
	}
	body.AngularVelocity = bc.Angular

	return body, nil
}

func (sc shapeConfig) build() (actor.ConvexShape, error) {
	switch sc.Kind {
	case "circle":
		center, err := toVec2("center", sc.Center)
		if err != nil {
			return nil, err
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %v", sc.Radius)
		}
		circle := actor.NewCircle(center, sc.Radius)
		circle.Rotate(sc.Angle)
		return circle, nil

	case "box":
		center, err := toVec2("center", sc.Center)
		if err != nil {
			return nil, err
		}
		halfExtents, err := toVec2("half_extents", sc.HalfExtents)
		if err != nil {
			return nil, err
		}
		if halfExtents.X() <= 0 || halfExtents.Y() <= 0 {
			return nil, fmt.Errorf("box half extents must be positive, got %v", halfExtents)
		}
		box := actor.NewBox(center, halfExtents)
		box.Rotate(sc.Angle)
		return box, nil

	case "polygon":
		points := make([]mgl64.Vec2, 0, len(sc.Points))
		for i, p := range sc.Points {
			v, err := toVec2(fmt.Sprintf("points[%d]", i), p)
			if err != nil {
				return nil, err
			}
			points = append(points, v)
		}
		polygon, err := actor.NewPolygon(points)
		if err != nil {
			return nil, err
		}
		if !polygon.Validate() {
			return nil, fmt.Errorf("polygon %v is not convex", points)
		}
		polygon.Recenter()
		polygon.Rotate(sc.Angle)
		return polygon, nil

	default:
		return nil, fmt.Errorf("unknown shape kind %q", sc.Kind)
	}
}

func toVec2(field string, values []float64) (mgl64.Vec2, error) {
	if len(values) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%s must have 2 coordinates, got %d", field, len(values))
	}
	return mgl64.Vec2{values[0], values[1]}, nil
}
