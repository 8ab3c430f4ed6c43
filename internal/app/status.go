package app

import (
	"fmt"

	"github.com/Faultbox/lemniscate-torus/internal/config"
	"github.com/Faultbox/lemniscate-torus/internal/sequencer"
)

// Title is the window and info panel title.
const Title = "Lemniscate Torus"

// infoLines is the static body of the info panel.
func infoLines(variant string) []string {
	lines := []string{
		"A lemniscate of Bernoulli swept around a major axis.",
		"Green: horizontal sweep.",
	}
	if variant != config.VariantSingle {
		lines = append(lines, "Amber: vertical sweep, with the overlay sphere.")
	}
	return append(lines,
		"",
		"Drag: orbit   Wheel: zoom   R: reset view",
		"I: show this panel   F12: screenshot   Esc: quit",
	)
}

// statusLine describes sweep progress for the info panel.
func statusLine(st sequencer.State, rotations int, progress float64) string {
	if st.Done {
		return "Sweep complete."
	}
	return fmt.Sprintf("%s sweep: ring %d of %d (%.0f%%)",
		capitalize(st.Orientation.String()), st.Ring+1, rotations, progress*100)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// windowTitle appends the frame rate when it is being shown.
func windowTitle(showFPS bool, fps int) string {
	if !showFPS {
		return Title
	}
	return fmt.Sprintf("%s - %d FPS", Title, fps)
}
