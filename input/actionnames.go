package input

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/view"
)

// actionRegistry maps canonical action names to view actions
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]view.Action

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]view.Action {
	reg := map[string]view.Action{
		// Unbind sentinel
		"none": view.ActionNone,

		// System
		"quit": view.ActionQuit,

		// Camera
		"zoom_in":  view.ActionZoomIn,
		"zoom_out": view.ActionZoomOut,

		// Flags
		"toggle_orbits": view.ActionToggleOrbits,
		"toggle_pause":  view.ActionTogglePause,

		// Selection
		"show_all": view.ActionShowAll,
	}

	// select_0..select_8 and select_<bodyname>
	cat := catalog.Default()
	for i := range cat {
		a := view.SelectAction(i)
		reg["select_"+strconv.Itoa(i)] = a
		reg["select_"+strings.ToLower(cat[i].Name)] = a
	}
	return reg
}

// ActionByName resolves a case-insensitive action name
func ActionByName(name string) (view.Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionName returns the canonical name of an action, numeric form for selections
func ActionName(a view.Action) string {
	switch a {
	case view.ActionNone:
		return "none"
	case view.ActionQuit:
		return "quit"
	case view.ActionZoomIn:
		return "zoom_in"
	case view.ActionZoomOut:
		return "zoom_out"
	case view.ActionToggleOrbits:
		return "toggle_orbits"
	case view.ActionTogglePause:
		return "toggle_pause"
	case view.ActionShowAll:
		return "show_all"
	}
	if idx, ok := a.SelectIndex(); ok {
		return "select_" + strconv.Itoa(idx)
	}
	return "unknown"
}
