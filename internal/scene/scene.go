// Package scene loads sandbox layouts from YAML and builds them into
// physics shapes.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/satbox/internal/loop/config"
	"github.com/tomz197/satbox/internal/object"
	"github.com/tomz197/satbox/internal/physics"
	"github.com/tomz197/satbox/internal/vector"
)

//go:embed default.yaml
var defaultScene []byte

var (
	// ErrUnknownKind is returned for a body whose kind is neither rectangle nor circle.
	ErrUnknownKind = errors.New("scene: unknown body kind")
	// ErrNoBodies is returned when a scene describes nothing to simulate.
	ErrNoBodies = errors.New("scene: no bodies")
)

// Engine holds the sandbox switches.
type Engine struct {
	Collision  bool `yaml:"collision"`  // Run the narrow phase at all
	Keyboard   bool `yaml:"keyboard"`   // Accept movement keys
	Log        bool `yaml:"log"`        // Log contact begin/end
	Correction bool `yaml:"correction"` // Push overlapping bodies apart
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
}

// Body describes one shape. Width and Height apply to rectangles, Radius to
// circles. A Mass of 0 makes the body static.
type Body struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width,omitempty"`
	Height   float64    `yaml:"height,omitempty"`
	Radius   float64    `yaml:"radius,omitempty"`
	Angle    float64    `yaml:"angle,omitempty"`
	Mass     float64    `yaml:"mass"`
	Velocity [2]float64 `yaml:"velocity,omitempty"`
	Spin     float64    `yaml:"spin,omitempty"`
}

// Scene is a complete sandbox layout.
type Scene struct {
	Engine Engine `yaml:"engine"`
	Bodies []Body `yaml:"bodies"`
}

// defaults returns a scene whose engine switches are on and whose world
// matches the view, so that YAML only needs to override what differs.
func defaults() Scene {
	return Scene{
		Engine: Engine{
			Collision: true,
			Keyboard:  true,
			Width:     config.WorldWidth,
			Height:    config.WorldHeight,
		},
	}
}

// Load decodes a scene from YAML and validates it.
func Load(r io.Reader) (*Scene, error) {
	s := defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded scene.
func Default() *Scene {
	s, err := Load(strings.NewReader(string(defaultScene)))
	if err != nil {
		panic(fmt.Sprintf("embedded scene is invalid: %v", err))
	}
	return s
}

// Validate checks the scene without building it.
func (s *Scene) Validate() error {
	if len(s.Bodies) == 0 {
		return ErrNoBodies
	}
	if s.Engine.Width <= 0 || s.Engine.Height <= 0 {
		return fmt.Errorf("%w: world %dx%d", physics.ErrDegenerateShape, s.Engine.Width, s.Engine.Height)
	}
	for i, b := range s.Bodies {
		if _, err := parseKind(b.Kind); err != nil {
			return fmt.Errorf("body %d (%s): %w", i, b.Name, err)
		}
	}
	return nil
}

// Build creates every body's shape in reg, in file order.
func (s *Scene) Build(reg *physics.Registry) ([]*object.Body, error) {
	bodies := make([]*object.Body, 0, len(s.Bodies))
	for i, b := range s.Bodies {
		shape, err := b.build(reg)
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, b.Name, err)
		}
		body := object.NewBody(b.Name, shape)
		body.Velocity = vector.New(b.Velocity[0], b.Velocity[1])
		body.Spin = b.Spin
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func (b Body) build(reg *physics.Registry) (physics.Shape, error) {
	kind, err := parseKind(b.Kind)
	if err != nil {
		return nil, err
	}

	center := vector.New(b.X, b.Y)
	invMass := physics.InverseMass(b.Mass)

	var shape physics.Shape
	switch kind {
	case physics.KindRectangle:
		shape, err = physics.NewRectangle(reg, center, b.Width, b.Height, invMass)
	case physics.KindCircle:
		shape, err = physics.NewCircle(reg, center, b.Radius, invMass)
	}
	if err != nil {
		return nil, err
	}
	if b.Angle != 0 {
		shape.Rotate(b.Angle)
	}
	return shape, nil
}

func parseKind(s string) (physics.Kind, error) {
	switch strings.ToLower(s) {
	case "rectangle", "rect":
		return physics.KindRectangle, nil
	case "circle":
		return physics.KindCircle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
