// Command probe steps a scene without a terminal and logs every contact.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/satbox/internal/config"
	"github.com/tomz197/satbox/internal/loop"
	lconfig "github.com/tomz197/satbox/internal/loop/config"
	"github.com/tomz197/satbox/internal/scene"
)

func main() {
	logger := config.NewLogger(os.Stderr, "probe")

	sc := scene.Default()
	if path := config.GetEnv("PROBE_SCENE", ""); path != "" {
		var err error
		sc, err = scene.LoadFile(path)
		if err != nil {
			logger.Fatal("failed to load scene", "path", path, "err", err)
		}
	}

	if config.GetEnvBool("PROBE_NO_CORRECTION", false) {
		sc.Engine.Correction = false
	}

	steps := config.GetEnvInt("PROBE_STEPS", lconfig.ProbeSteps)
	dt := config.GetEnvDuration("PROBE_DT", lconfig.ProbeDelta)

	total, err := probe(sc, steps, dt, logger)
	if err != nil {
		logger.Fatal("probe failed", "err", err)
	}
	logger.Info("done", "steps", steps, "contacts", total)
}

// probe runs steps fixed steps of dt and returns the number of contacts seen.
func probe(sc *scene.Scene, steps int, dt time.Duration, logger *log.Logger) (int, error) {
	state, err := loop.NewState(sc, logger)
	if err != nil {
		return 0, err
	}

	total := 0
	for i := 0; i < steps; i++ {
		if err := state.Step(dt); err != nil {
			return total, err
		}
		for _, c := range state.Contacts() {
			logger.Info("contact",
				"step", i,
				"a", c.A.Name,
				"b", c.B.Name,
				"depth", c.Info.Depth,
				"nx", c.Info.Normal.X(),
				"ny", c.Info.Normal.Y(),
				"x", c.Info.Start.X(),
				"y", c.Info.Start.Y())
		}
		total += len(state.Contacts())
	}
	return total, nil
}
