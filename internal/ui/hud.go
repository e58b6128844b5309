//go:build ebiten

package ui

import (
	"image/color"

	"lifewall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent parameter panel over the top-left corner of the
// simulation view.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD for sim.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update refreshes the cached lines from the simulation.
func (h *HUD) Update(st Status) {
	if !h.Visible() {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = Lines(snap, st)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(h.lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}

const (
	panelPadding = 6
	lineHeight   = 14
)
