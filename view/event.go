package view

// Event is the tagged union of everything the session consumes
type Event interface {
	isEvent()
}

// Button identifies a pointer button
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// DragButton is the button that orbits the camera
const DragButton = ButtonLeft

// KeyDown is an ASCII key press
type KeyDown struct {
	Rune rune
}

// PointerButton is a button transition at (X, Y)
type PointerButton struct {
	Button  Button
	Pressed bool
	X, Y    int
}

// PointerMove is pointer motion to (X, Y)
type PointerMove struct {
	X, Y int
}

// PointerWheel is a wheel notch, positive away from the user
type PointerWheel struct {
	Delta int
}

// Tick is one fixed-rate animation step
type Tick struct{}

// Resize carries new viewport dimensions in pixels
type Resize struct {
	Width, Height int
}

func (KeyDown) isEvent()       {}
func (PointerButton) isEvent() {}
func (PointerMove) isEvent()   {}
func (PointerWheel) isEvent()  {}
func (Tick) isEvent()          {}
func (Resize) isEvent()        {}
