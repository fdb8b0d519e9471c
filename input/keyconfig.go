package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/orrery/view"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"esc":       view.KeyEscape,
	"escape":    view.KeyEscape,
	"ctrl-c":    view.KeyCtrlC,
}

// LoadKeymap parses [keys] config entries into a sparse override keymap
// Entries bound to "none" are kept as ActionNone so MergeKeymap can unbind them
// Returns error on unknown action names or invalid key names
func LoadKeymap(raw map[string]string) (view.Keymap, error) {
	km := make(view.Keymap, len(raw))
	for keyStr, actionName := range raw {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action: %q", keyStr, actionName)
		}
		km[r] = a
	}
	return km, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeymap returns a new keymap with base bindings overridden by override
// Override entries with ActionNone delete the key from the result
func MergeKeymap(base, override view.Keymap) view.Keymap {
	result := base.Clone()
	for k, v := range override {
		if v == view.ActionNone {
			delete(result, k)
		} else {
			result[k] = v
		}
	}
	return result
}

// DescribeKeymap lists bindings as "key  action" lines sorted by action then key
func DescribeKeymap(km view.Keymap) []string {
	type binding struct {
		key    string
		action view.Action
	}
	bs := make([]binding, 0, len(km))
	for r, a := range km {
		bs = append(bs, binding{keyLabel(r), a})
	}
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].action != bs[j].action {
			return bs[i].action < bs[j].action
		}
		return bs[i].key < bs[j].key
	})

	lines := make([]string, len(bs))
	for i, b := range bs {
		lines[i] = fmt.Sprintf("%-8s %s", b.key, ActionName(b.action))
	}
	return lines
}

func keyLabel(r rune) string {
	switch r {
	case view.KeyEscape:
		return "esc"
	case view.KeyCtrlC:
		return "ctrl-c"
	case ' ':
		return "space"
	}
	return string(r)
}
