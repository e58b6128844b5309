package app

// Button identifies a mouse button independently of the windowing backend.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ActionKind says what a click does to the grid.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPaint
	ActionRandomize
	ActionClear
)

// Action is the grid edit produced by a click. Paint actions carry a block
// whose top-left corner is (X, Y).
type Action struct {
	Kind       ActionKind
	X, Y, W, H int
	Values     []uint8
}

// Glider stamps indexed by [ctrl][shift], rows top to bottom. Each is
// anchored on its bottom-left cell so the clicked cell starts the bottom row.
var gliderStamps = [2][2][]uint8{
	{
		{1, 1, 1, 1, 0, 0, 0, 1, 0},
		{1, 1, 1, 0, 0, 1, 0, 1, 0},
	},
	{
		{0, 1, 0, 1, 0, 0, 1, 1, 1},
		{0, 1, 0, 0, 0, 1, 1, 1, 1},
	},
}

// Click maps a button press on cell (x, y) to a grid edit:
//
//	left            kill the cell
//	ctrl+left       randomize the grid
//	ctrl+shift+left clear the grid
//	right           set the cell
//	middle          stamp a glider, ctrl and shift pick the direction
func Click(b Button, ctrl, shift bool, x, y int) Action {
	switch b {
	case ButtonLeft:
		switch {
		case ctrl && shift:
			return Action{Kind: ActionClear}
		case ctrl:
			return Action{Kind: ActionRandomize}
		}
		return Action{Kind: ActionPaint, X: x, Y: y, W: 1, H: 1, Values: []uint8{0}}
	case ButtonRight:
		return Action{Kind: ActionPaint, X: x, Y: y, W: 1, H: 1, Values: []uint8{1}}
	case ButtonMiddle:
		return Action{Kind: ActionPaint, X: x, Y: y - 2, W: 3, H: 3, Values: gliderStamps[b2i(ctrl)][b2i(shift)]}
	}
	return Action{}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Target is a grid that accepts click actions.
type Target interface {
	Paint(x, y, w, h int, values []uint8) error
	Randomize(seed int64)
	Clear()
}

// Apply performs a on t. Paint blocks are clipped to the grid by the target.
func Apply(t Target, a Action, seed int64) error {
	switch a.Kind {
	case ActionPaint:
		return t.Paint(a.X, a.Y, a.W, a.H, a.Values)
	case ActionRandomize:
		t.Randomize(seed)
	case ActionClear:
		t.Clear()
	}
	return nil
}
