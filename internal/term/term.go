// Package term runs a Life stepper in a terminal with tcell. Each cell takes
// two columns so the grid keeps a roughly square aspect.
package term

import (
	"context"
	"time"

	"lifewall/internal/app"
	"lifewall/internal/bench"
	"lifewall/internal/core"
	"lifewall/internal/render"
	"lifewall/internal/sims/life"
	"lifewall/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = time.Second / 60
	statusWidth   = 28
)

// Host owns the event loop for one screen and one stepper. The caller
// initializes and finalizes the screen.
type Host struct {
	screen tcell.Screen
	life   *life.Life
	clock  *core.FixedStep
	clicks *core.RNG
	stats  *bench.Stats

	live, dead tcell.Style
	paused     bool
	status     bool
	buttons    tcell.ButtonMask
}

// New prepares a host drawing l on screen with the colors and rate in cfg.
func New(screen tcell.Screen, l *life.Life, cfg *app.Config) *Host {
	screen.EnableMouse()
	return &Host{
		screen: screen,
		life:   l,
		clock:  core.NewFixedStep(cfg.FPS),
		clicks: core.NewRNG(cfg.RandomSeed()),
		stats:  bench.NewStats(),
		live:   tcell.StyleDefault.Background(tcellColor(cfg.Live)),
		dead:   tcell.StyleDefault.Background(tcellColor(cfg.Dead)),
		status: true,
	}
}

func tcellColor(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run processes events and steps the grid until the user quits or ctx is
// done.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		case <-ticker.C:
			if !h.paused && h.clock.ShouldStep() {
				h.tick()
				h.Draw()
			}
		}
	}
}

func (h *Host) tick() {
	start := time.Now()
	h.life.Tick()
	h.stats.Update(h.life.Generation(), h.life.Population(), time.Since(start))
}

// HandleEvent applies one input event and reports whether the host should
// quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
		h.clock.Reset()
	case 'n':
		h.tick()
	case 'r':
		h.life.SeedGliders()
	case 's':
		h.life.Randomize(time.Now().UnixNano())
	case 'h':
		h.status = !h.status
		h.screen.Clear()
	}
	return false
}

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  app.Button
}{
	{tcell.Button1, app.ButtonLeft},
	{tcell.Button2, app.ButtonRight},
	{tcell.Button3, app.ButtonMiddle},
}

// handleMouse acts on buttons that went down since the previous mouse event.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons
	h.buttons = buttons

	mx, my := ev.Position()
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	shift := ev.Modifiers()&tcell.ModShift != 0
	for _, mb := range mouseButtons {
		if pressed&mb.mask == 0 {
			continue
		}
		// Paint errors are impossible here: Click always builds w*h values.
		_ = app.Apply(h.life, app.Click(mb.btn, ctrl, shift, mx/2, my), h.clicks.Seed())
	}
}

// Draw renders the grid and, when enabled, the status panel to its right.
func (h *Host) Draw() {
	y := 0
	for row := range h.life.Rows() {
		x := 0
		for c := range row {
			style := h.dead
			if c != 0 {
				style = h.live
			}
			h.screen.SetContent(x, y, ' ', nil, style)
			h.screen.SetContent(x+1, y, ' ', nil, style)
			x += 2
		}
		y++
	}
	if h.status {
		left := 2*h.life.Size().W + 1
		lines := ui.Lines(h.life.Parameters(), ui.Status{Paused: h.paused, Stats: h.stats})
		for i, line := range lines {
			drawText(h.screen, left, i, line, statusWidth)
		}
	}
	h.screen.Show()
}

// drawText writes text at (x, y) and blanks the rest of a width-column field.
func drawText(s tcell.Screen, x, y int, text string, width int) {
	n := 0
	for _, r := range text {
		s.SetContent(x+n, y, r, nil, tcell.StyleDefault)
		n++
	}
	for ; n < width; n++ {
		s.SetContent(x+n, y, ' ', nil, tcell.StyleDefault)
	}
}
