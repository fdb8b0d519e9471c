package view

// Action is a semantic key binding target
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionToggleOrbits
	ActionTogglePause
	ActionShowAll

	// ActionSelect0..ActionSelect8 are contiguous, offset encodes the body index
	ActionSelect0
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionSelect4
	ActionSelect5
	ActionSelect6
	ActionSelect7
	ActionSelect8
)

// Key runes outside the printable range
const (
	KeyCtrlC  rune = 0x03
	KeyEscape rune = 0x1b
)

// SelectAction returns the select action for a body index
func SelectAction(idx int) Action {
	if idx < 0 || idx > int(ActionSelect8-ActionSelect0) {
		return ActionNone
	}
	return ActionSelect0 + Action(idx)
}

// SelectIndex returns the body index of a select action
func (a Action) SelectIndex() (int, bool) {
	if a < ActionSelect0 || a > ActionSelect8 {
		return 0, false
	}
	return int(a - ActionSelect0), true
}

// Keymap maps key runes to actions
type Keymap map[rune]Action

// DefaultKeymap returns the stock bindings
func DefaultKeymap() Keymap {
	km := Keymap{
		KeyEscape: ActionQuit,
		KeyCtrlC:  ActionQuit,
		'q':       ActionQuit,

		'w': ActionZoomIn,
		'W': ActionZoomIn,
		's': ActionZoomOut,
		'S': ActionZoomOut,

		'o': ActionToggleOrbits,
		'O': ActionToggleOrbits,
		'p': ActionTogglePause,
		'P': ActionTogglePause,

		'a': ActionShowAll,
		'A': ActionShowAll,
	}
	for d := 0; d <= 8; d++ {
		km[rune('0'+d)] = SelectAction(d)
	}
	return km
}

// Clone returns an independent copy
func (km Keymap) Clone() Keymap {
	out := make(Keymap, len(km))
	for k, v := range km {
		out[k] = v
	}
	return out
}
