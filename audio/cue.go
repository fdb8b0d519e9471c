// Package audio plays short synthesized cues for view changes through beep's speaker.
package audio

import "github.com/lixenwraith/orrery/view"

// Cue identifies a feedback sound
type Cue int

const (
	CueNone Cue = iota
	CueSelect
	CueToggle
	CueZoomLimit
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueToggle:
		return "toggle"
	case CueZoomLimit:
		return "zoom_limit"
	default:
		return "none"
	}
}

// CueFor maps a handled input result to its cue and, for selections, the body index
// ShowAll chimes at the star pitch
func CueFor(res view.Result) (Cue, int) {
	if res.Limit {
		return CueZoomLimit, 0
	}
	if idx, ok := res.Action.SelectIndex(); ok {
		return CueSelect, idx
	}
	switch res.Action {
	case view.ActionShowAll:
		return CueSelect, 0
	case view.ActionToggleOrbits, view.ActionTogglePause:
		return CueToggle, 0
	}
	return CueNone, 0
}
