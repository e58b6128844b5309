//go:build ebiten

package render

import (
	"image"
	"image/color"
	"iter"

	"lifewall/internal/rule"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// GPUStepper keeps the grid in a pair of textures and advances it with a Kage
// shader. The state lives in the red channel, white for live cells.
type GPUStepper struct {
	w, h  int
	rule  rule.Rule
	life  *ebiten.Shader
	color *ebiten.Shader

	front, back *ebiten.Image
	gen         int
}

// NewGPUStepper compiles the generation shader for r and allocates the state
// textures.
func NewGPUStepper(w, h int, r rule.Rule) (*GPUStepper, error) {
	life, err := ebiten.NewShader(LifeShaderSource(r))
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGPUStepper] compiling %s", r)
	}
	col, err := ebiten.NewShader(ColorShaderSource())
	if err != nil {
		life.Dispose()
		return nil, errors.Wrap(err, "[NewGPUStepper] compiling color shader")
	}
	return &GPUStepper{
		w:     w,
		h:     h,
		rule:  r,
		life:  life,
		color: col,
		front: ebiten.NewImage(w, h),
		back:  ebiten.NewImage(w, h),
	}, nil
}

// Upload replaces the texture state with rows from a CPU grid.
func (g *GPUStepper) Upload(rows iter.Seq[iter.Seq[uint8]]) {
	buf := make([]byte, 4*g.w*g.h)
	fillBinaryRGBA(buf, rows, color.White, color.Black)
	g.front.WritePixels(buf)
	g.gen = 0
}

// Paint writes a block of cells at (x, y), clipped to the grid.
func (g *GPUStepper) Paint(x, y, w, h int, values []uint8) {
	if len(values) != w*h {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, g.w, g.h))
	if r.Empty() {
		return
	}
	clipped := make([]uint8, 0, r.Dx()*r.Dy())
	for row := r.Min.Y; row < r.Max.Y; row++ {
		start := (row-y)*w + (r.Min.X - x)
		clipped = append(clipped, values[start:start+r.Dx()]...)
	}
	g.front.SubImage(r).(*ebiten.Image).WritePixels(blockRGBA(clipped))
}

// Step renders one generation from the front texture into the back texture
// and swaps them.
func (g *GPUStepper) Step() {
	g.back.Clear()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = g.front
	g.back.DrawRectShader(g.w, g.h, g.life, op)
	g.front, g.back = g.back, g.front
	g.gen++
}

// Generation returns the number of steps since the last upload.
func (g *GPUStepper) Generation() int { return g.gen }

// Draw colors the current state and draws it scaled onto dst.
func (g *GPUStepper) Draw(dst *ebiten.Image, live, dead Color, scale int) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = g.front
	op.Uniforms = map[string]any{
		"Live": live.Floats(),
		"Dead": dead.Floats(),
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawRectShader(g.w, g.h, g.color, op)
}

// Dispose releases the shaders and textures.
func (g *GPUStepper) Dispose() {
	g.life.Dispose()
	g.color.Dispose()
	g.front.Dispose()
	g.back.Dispose()
}
