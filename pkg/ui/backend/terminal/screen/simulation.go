package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Simulation is a Screen backed by tcell's in-memory simulation screen.
type Simulation struct {
	*Screen
	sim           tcell.SimulationScreen
	width, height int
}

// NewSimulation creates a simulated terminal of the given size.
func NewSimulation(width, height int) *Simulation {
	sim := tcell.NewSimulationScreen("")
	sim.SetSize(width, height)
	return &Simulation{Screen: NewWithScreen(sim), sim: sim, width: width, height: height}
}

// Init initializes the simulation at the size it was created with.
func (s *Simulation) Init() error {
	if err := s.Screen.Init(); err != nil {
		return err
	}
	s.sim.SetSize(s.width, s.height)
	return nil
}

// Resize changes the simulated size and queues the resize event.
func (s *Simulation) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.sim.SetSize(width, height)
	s.mu.Unlock()
	_ = s.sim.PostEvent(tcell.NewEventResize(width, height))
}

// InjectKey queues a key press.
func (s *Simulation) InjectKey(key tcell.Key, r rune) {
	_ = s.sim.PostEvent(tcell.NewEventKey(key, r, tcell.ModNone))
}

// Capture returns the screen contents, one line per row, with trailing
// blanks trimmed.
func (s *Simulation) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.sim.Size()
	lines := make([]string, h)
	for y := range h {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, _, _, width := s.sim.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			if width > 1 {
				x += width - 1
			}
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
