// Package screen presents terminal renders full-screen through tcell and
// repaints them as the terminal resizes.
package screen

import (
	"context"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderFunc produces an escape-free frame for a screen of the given size.
type RenderFunc func(width, height int) string

type quit struct{}

// Screen paints plain-text frames onto a tcell screen.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	mu     sync.Mutex
}

// New opens the controlling terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen (for testing).
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, style: tcell.StyleDefault}
}

// Init enters the alternate screen and hides the cursor.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Paint clears the screen and draws frame from the top-left corner,
// clipping whatever does not fit.
func (s *Screen) Paint(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	w, h := s.screen.Size()
	for y, line := range strings.Split(frame, "\n") {
		if y >= h {
			break
		}
		x := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			if x+rw > w {
				break
			}
			s.screen.SetContent(x, y, r, nil, s.style)
			x += rw
		}
	}
	s.screen.Show()
}

// Refresh wakes Run so it renders again, e.g. after a config reload.
func (s *Screen) Refresh() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Stop makes Run return.
func (s *Screen) Stop() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(quit{}))
}

// Run paints render's output and repaints on resize and Refresh until the
// user presses q, Esc or Ctrl-C, Stop is called, or ctx is done.
func (s *Screen) Run(ctx context.Context, render RenderFunc) error {
	stop := context.AfterFunc(ctx, s.Stop)
	defer stop()

	draw := func() {
		w, h := s.Size()
		s.Paint(render(w, h))
	}

	draw()
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(quit); ok {
				return nil
			}
			draw()
		case *tcell.EventResize:
			draw()
			s.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
