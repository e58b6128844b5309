package ui

import (
	"fmt"

	"lifewall/internal/bench"
	"lifewall/internal/core"
)

// runGroup holds the CPU stepper's counters, which stand still while a
// shader owns the grid.
const runGroup = "Run"

// Status is the host state shown next to the simulation parameters.
// Generation is the shader's generation count and is only read when GPU is set.
type Status struct {
	Paused     bool
	GPU        bool
	Generation int
	Stats      *bench.Stats
}

// Lines formats a parameter snapshot as "Label: value" lines grouped under
// their group names, followed by host status. In GPU mode the run group is
// replaced by the shader's generation.
func Lines(snap core.ParameterSnapshot, st Status) []string {
	var out []string
	for _, group := range snap.Groups {
		if st.GPU && group.Name == runGroup {
			out = append(out, "[GPU]", fmt.Sprintf("  Generation: %d", st.Generation))
			continue
		}
		out = append(out, "["+group.Name+"]")
		for _, p := range group.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	if st.Stats != nil {
		out = append(out, fmt.Sprintf("gen/s: %.1f", st.Stats.GenerationsPerSecond))
		out = append(out, fmt.Sprintf("avg pop: %.0f", st.Stats.AveragePopulation))
	}
	mode := "cpu"
	if st.GPU {
		mode = "gpu"
	}
	if st.Paused {
		out = append(out, mode+" | paused")
	} else {
		out = append(out, mode+" | running")
	}
	return out
}
