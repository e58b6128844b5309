//go:build ebiten

package app

import (
	"log"
	"time"

	"lifewall/internal/bench"
	"lifewall/internal/core"
	"lifewall/internal/render"
	"lifewall/internal/sims/life"
	"lifewall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life stepper to the ebiten.Game interface. With a GPU stepper
// the grid state lives in textures and the CPU grid is only used for seeding.
type Game struct {
	life    *life.Life
	gpu     *render.GPUStepper
	painter *render.GridPainter
	hud     *ui.HUD
	stats   *bench.Stats
	clock   *core.FixedStep

	live, dead render.Color

	scale    int
	paused   bool
	tickOnce bool
	clicks   *core.RNG
}

// New constructs a Game for l using the host settings in cfg.
func New(l *life.Life, cfg *Config) (*Game, error) {
	size := l.Size()
	g := &Game{
		life:    l,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(l),
		stats:   bench.NewStats(),
		clock:   core.NewFixedStep(cfg.FPS),
		live:    cfg.Live,
		dead:    cfg.Dead,
		scale:   cfg.Pixels,
		clicks:  core.NewRNG(cfg.RandomSeed()),
	}
	if cfg.GPU {
		gpu, err := render.NewGPUStepper(size.W, size.H, l.Rule())
		if err != nil {
			return nil, err
		}
		gpu.Upload(l.Rows())
		g.gpu = gpu
	}
	return g, nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.life.SeedGliders()
		g.upload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.life.Randomize(time.Now().UnixNano())
		g.upload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.handleMouse()

	if (!g.paused && g.clock.ShouldStep()) || g.tickOnce {
		g.tick()
		g.tickOnce = false
	}

	st := ui.Status{Paused: g.paused, GPU: g.gpu != nil}
	if g.gpu != nil {
		st.Generation = g.gpu.Generation()
	} else {
		st.Stats = g.stats
	}
	g.hud.Update(st)
	return nil
}

func (g *Game) tick() {
	if g.gpu != nil {
		g.gpu.Step()
		return
	}
	start := time.Now()
	g.life.Tick()
	g.stats.Update(g.life.Generation(), g.life.Population(), time.Since(start))
}

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn Button
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, mb := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(mb.eb) {
			continue
		}
		var target Target = g.life
		if g.gpu != nil {
			target = gpuTarget{g}
		}
		if err := Apply(target, Click(mb.btn, ctrl, shift, x, y), g.clicks.Seed()); err != nil {
			log.Printf("click at (%d,%d): %v", x, y, err)
		}
	}
}

func (g *Game) upload() {
	if g.gpu != nil {
		g.gpu.Upload(g.life.Rows())
	}
}

// gpuTarget routes click edits to the shader state.
type gpuTarget struct{ g *Game }

func (t gpuTarget) Paint(x, y, w, h int, values []uint8) error {
	t.g.gpu.Paint(x, y, w, h, values)
	return nil
}

func (t gpuTarget) Randomize(seed int64) {
	t.g.life.Randomize(seed)
	t.g.upload()
}

func (t gpuTarget) Clear() {
	t.g.life.Clear()
	t.g.upload()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.gpu != nil {
		g.gpu.Draw(screen, g.live, g.dead, g.scale)
	} else {
		g.painter.Blit(screen, g.life.Rows(), g.live.RGBA(), g.dead.RGBA(), g.scale)
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.life.Size()
	return s.W * g.scale, s.H * g.scale
}
