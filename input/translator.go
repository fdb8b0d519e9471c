// Package input converts terminal events into view events and loads keymap overrides.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/view"
)

// Translator converts tcell events into view events
// Pointer positions are scaled from cells to virtual pixels so drag sensitivity is per pixel
type Translator struct {
	CellWidth  int
	CellHeight int
	HUDRows    int // Terminal rows below the canvas

	buttons tcell.ButtonMask
	lastX   int
	lastY   int
}

// NewTranslator creates a translator; non-positive cell sizes select the defaults
func NewTranslator(cellWidth, cellHeight, hudRows int) *Translator {
	if cellWidth <= 0 {
		cellWidth = constants.DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = constants.DefaultCellHeight
	}
	return &Translator{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		HUDRows:    max(hudRows, 0),
		lastX:      -1,
		lastY:      -1,
	}
}

// buttonMap pairs tcell button bits with view buttons
var buttonMap = [...]struct {
	mask tcell.ButtonMask
	btn  view.Button
}{
	{tcell.ButtonPrimary, view.ButtonLeft},
	{tcell.ButtonMiddle, view.ButtonMiddle},
	{tcell.ButtonSecondary, view.ButtonRight},
}

// Translate returns the view events for one tcell event, nil when nothing maps
func (t *Translator) Translate(ev tcell.Event) []view.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if r, ok := keyRune(e); ok {
			return []view.Event{view.KeyDown{Rune: r}}
		}
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventResize:
		return []view.Event{t.resize(e)}
	}
	return nil
}

// keyRune maps printable runes and the two quit control keys
func keyRune(e *tcell.EventKey) (rune, bool) {
	switch e.Key() {
	case tcell.KeyRune:
		return e.Rune(), true
	case tcell.KeyEscape:
		return view.KeyEscape, true
	case tcell.KeyCtrlC:
		return view.KeyCtrlC, true
	}
	return 0, false
}

func (t *Translator) mouse(e *tcell.EventMouse) []view.Event {
	cx, cy := e.Position()
	x, y := cx*t.CellWidth, cy*t.CellHeight
	mask := e.Buttons()

	var out []view.Event

	// Motion first so a drag observes the position before a release
	if x != t.lastX || y != t.lastY {
		if t.lastX >= 0 {
			out = append(out, view.PointerMove{X: x, Y: y})
		}
		t.lastX, t.lastY = x, y
	}

	for _, b := range buttonMap {
		was, is := t.buttons&b.mask != 0, mask&b.mask != 0
		if was != is {
			out = append(out, view.PointerButton{Button: b.btn, Pressed: is, X: x, Y: y})
		}
	}
	t.buttons = mask & (tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary)

	if mask&tcell.WheelUp != 0 {
		out = append(out, view.PointerWheel{Delta: 1})
	}
	if mask&tcell.WheelDown != 0 {
		out = append(out, view.PointerWheel{Delta: -1})
	}
	return out
}

// resize converts the terminal size to the canvas pixel viewport
// Terminals reporting their pixel size refine the cell scale
func (t *Translator) resize(e *tcell.EventResize) view.Resize {
	cols, rows := e.Size()
	if pw, ph := e.PixelSize(); pw > 0 && ph > 0 && cols > 0 && rows > 0 {
		t.CellWidth = max(pw/cols, 1)
		t.CellHeight = max(ph/rows, 1)
	}
	return view.Resize{
		Width:  cols,
		Height: max(rows-t.HUDRows, 0) * constants.PixelsPerCellRow,
	}
}
