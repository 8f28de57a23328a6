package loop

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/satbox/internal/loop/config"
	"github.com/tomz197/satbox/internal/object"
	"github.com/tomz197/satbox/internal/physics"
	"github.com/tomz197/satbox/internal/scene"
)

// NoSelection is the selection index when no body is selected.
const NoSelection = -1

// State holds one sandbox: the registry every body lives in, the bodies
// themselves, transient markers and the user's selection.
// A State is owned by a single goroutine.
type State struct {
	Scene    *scene.Scene
	Engine   scene.Engine
	Registry *physics.Registry
	Bodies   []*object.Body
	Markers  []object.Object
	toSpawn  []object.Object // Objects to add after current update cycle
	World    object.Screen
	Input    object.Input
	Delta    time.Duration
	Paused   bool
	Running  bool

	selected int
	grid     *physics.SpatialGrid
	contacts []Contact
	active   map[pairKey]struct{} // Pairs touching after the last step
	logger   *log.Logger
}

// NewState builds sc into a fresh registry. A nil logger discards output.
func NewState(sc *scene.Scene, logger *log.Logger) (*State, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &State{
		Scene:   sc,
		Engine:  sc.Engine,
		World:   object.NewScreen(sc.Engine.Width, sc.Engine.Height),
		Running: true,
		logger:  logger,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards every shape and rebuilds the scene from its description.
func (s *State) Reset() error {
	reg := physics.NewRegistry()
	bodies, err := s.Scene.Build(reg)
	if err != nil {
		return fmt.Errorf("loop: build scene: %w", err)
	}

	for _, m := range s.Markers {
		object.ReleaseObject(m)
	}

	s.Registry = reg
	s.Bodies = bodies
	s.Markers = s.Markers[:0]
	s.toSpawn = s.toSpawn[:0]
	s.contacts = s.contacts[:0]
	s.active = make(map[pairKey]struct{})
	s.grid = physics.NewSpatialGrid(float64(s.World.Width), float64(s.World.Height), cellSizeFor(bodies))
	s.Paused = false
	s.Select(0)

	s.logger.Debug("scene built", "bodies", len(bodies), "cell", s.grid.CellSize())
	return nil
}

// cellSizeFor returns a grid cell large enough that any two touching bodies
// fall in neighboring cells.
func cellSizeFor(bodies []*object.Body) float64 {
	maxBound := 0.0
	for _, b := range bodies {
		maxBound = math.Max(maxBound, b.Shape.BoundRadius())
	}
	return math.Max(2*maxBound, config.MinCellSize)
}

// Select marks body i as selected. Out of range indices clear the selection.
func (s *State) Select(i int) {
	if i < 0 || i >= len(s.Bodies) {
		i = NoSelection
	}
	for j, b := range s.Bodies {
		b.Selected = j == i
	}
	s.selected = i
}

// SelectNext cycles the selection forward, wrapping to the first body.
func (s *State) SelectNext() {
	if len(s.Bodies) == 0 {
		return
	}
	s.Select((s.selected + 1) % len(s.Bodies))
}

// Selected returns the selected body and its index, or nil and NoSelection.
func (s *State) Selected() (*object.Body, int) {
	if s.selected == NoSelection {
		return nil, NoSelection
	}
	return s.Bodies[s.selected], s.selected
}

// Contacts returns the contacts found by the last step. The slice is reused
// by the next step.
func (s *State) Contacts() []Contact {
	return s.contacts
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects and clears the queue.
func (s *State) FlushSpawned() {
	for _, obj := range s.toSpawn {
		if len(s.Markers) >= config.MaxMarkers {
			object.ReleaseObject(obj)
			continue
		}
		s.Markers = append(s.Markers, obj)
	}
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		World:   s.World,
		Spawner: s,
	}
}
