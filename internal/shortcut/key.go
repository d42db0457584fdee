package shortcut

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Well-known key names
const (
	KeyEscape = "esc"
	KeyShift  = "shift"
	KeySpace  = "space"
)

// KeyEvent is one raw key press as delivered by the host runtime
type KeyEvent struct {
	Alt   bool
	Ctrl  bool
	Key   string // "n", "N", "esc", "space", "shift", ...
	Meta  bool
	Shift bool
}

// Name returns the case-folded key name used for matching
func (e KeyEvent) Name() string {
	return NormalizeKey(e.Key)
}

// NormalizeKey folds a key name to the form the registry matches against
func NormalizeKey(k string) string {
	switch k {
	case " ":
		return KeySpace
	case "escape":
		return KeyEscape
	}
	return strings.ToLower(k)
}

// chordRune returns the key as a single lower-case rune when it can take
// part in a chord. Named keys (esc, space, shift) cannot.
func chordRune(name string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return 0, false
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, false
	}
	return unicode.ToLower(r), true
}
