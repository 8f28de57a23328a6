package loop

import (
	"time"

	"github.com/tomz197/satbox/internal/loop/config"
	"github.com/tomz197/satbox/internal/object"
	"github.com/tomz197/satbox/internal/physics"
)

// Step advances the sandbox by dt: bodies move unless paused, then contacts
// are detected, optionally separated, and reported.
func (s *State) Step(dt time.Duration) error {
	s.Delta = dt
	ctx := s.UpdateContext()

	if !s.Paused {
		for _, b := range s.Bodies {
			if _, err := b.Update(ctx); err != nil {
				return err
			}
		}
	}

	s.contacts = s.contacts[:0]
	if s.Engine.Collision {
		s.contacts = appendContacts(s.contacts, s.Bodies, s.grid)
		if s.Engine.Correction {
			for _, c := range s.contacts {
				separate(c, config.CorrectionFactor, config.CorrectionSlop)
			}
		}
	}
	s.trackContacts()

	if err := s.updateMarkers(ctx); err != nil {
		return err
	}
	s.FlushSpawned()
	return nil
}

// trackContacts diffs this step's contacts against the previous step's,
// logging each pair that starts or stops touching and flashing a marker
// where a new contact begins.
func (s *State) trackContacts() {
	current := make(map[pairKey]struct{}, len(s.contacts))
	for _, c := range s.contacts {
		k := keyOf(c)
		current[k] = struct{}{}
		if _, ok := s.active[k]; ok {
			continue
		}
		s.Spawn(object.NewContactMarker(c.Info, config.MarkerLifetime))
		if s.Engine.Log {
			s.logger.Info("contact begin",
				"a", c.A.Name, "b", c.B.Name,
				"depth", c.Info.Depth,
				"normal", c.Info.Normal,
				"start", c.Info.Start)
		}
	}

	if s.Engine.Log {
		for k := range s.active {
			if _, ok := current[k]; !ok {
				s.logger.Info("contact end", "a", s.nameOf(k.a), "b", s.nameOf(k.b))
			}
		}
	}
	s.active = current
}

func (s *State) nameOf(h physics.Handle) string {
	for _, b := range s.Bodies {
		if b.Handle() == h {
			return b.Name
		}
	}
	return ""
}

// updateMarkers ages markers and drops the expired ones.
func (s *State) updateMarkers(ctx object.UpdateContext) error {
	n := 0
	for _, m := range s.Markers {
		remove, err := m.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(m)
			continue
		}
		s.Markers[n] = m
		n++
	}
	clear(s.Markers[n:])
	s.Markers = s.Markers[:n]
	return nil
}
