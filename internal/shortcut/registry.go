package shortcut

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateChord = errors.New("duplicate chord")
	ErrInvalidKey     = errors.New("invalid chord key")
	ErrNilHandler     = errors.New("chord has no handler")
)

// Handler runs a resolved shortcut. A returned error (or a panic) is
// reported as a failure notification by the dispatcher.
type Handler func(b Bundle) error

// Entry binds a two-key chord to a handler
type Entry struct {
	Description string
	First       rune
	Handler     Handler
	Second      rune
}

// Sequence renders the chord as "n c"
func (e Entry) Sequence() string {
	return string(e.First) + " " + string(e.Second)
}

// Registry maps a first key to the chords sharing it. It is built once
// and never mutated afterwards.
type Registry struct {
	byFirst map[rune][]Entry
	firsts  []rune // first keys in registration order
}

// NewRegistry validates entries and builds the lookup table. A
// duplicate (first, second) pair is a programming error and fails the
// whole construction.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byFirst: make(map[rune][]Entry)}

	for _, e := range entries {
		first, ok := chordRune(string(e.First))
		if !ok {
			return nil, fmt.Errorf("%w: first key %q of %q", ErrInvalidKey, e.First, e.Description)
		}
		second, ok := chordRune(string(e.Second))
		if !ok {
			return nil, fmt.Errorf("%w: second key %q of %q", ErrInvalidKey, e.Second, e.Description)
		}
		if e.Handler == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilHandler, e.Description)
		}
		e.First, e.Second = first, second

		existing, seen := r.byFirst[first]
		for _, other := range existing {
			if other.Second == second {
				return nil, fmt.Errorf("%w: %q is bound to both %q and %q",
					ErrDuplicateChord, e.Sequence(), other.Description, e.Description)
			}
		}
		if !seen {
			r.firsts = append(r.firsts, first)
		}
		r.byFirst[first] = append(existing, e)
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for tables known at compile time
func MustNewRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// LookupByFirstKey returns the chords starting with key, in registration
// order. The result is a copy; it is empty for unknown prefixes.
func (r *Registry) LookupByFirstKey(key string) []Entry {
	first, ok := chordRune(NormalizeKey(key))
	if !ok {
		return nil
	}
	entries := r.byFirst[first]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// HasFirstKey reports whether any chord starts with key
func (r *Registry) HasFirstKey(key string) bool {
	first, ok := chordRune(NormalizeKey(key))
	return ok && len(r.byFirst[first]) > 0
}

// LookupSecond finds the chord (first, key)
func (r *Registry) LookupSecond(first rune, key string) (Entry, bool) {
	second, ok := chordRune(NormalizeKey(key))
	if !ok {
		return Entry{}, false
	}
	for _, e := range r.byFirst[first] {
		if e.Second == second {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns every chord grouped by first key
func (r *Registry) Entries() []Entry {
	var out []Entry
	for _, first := range r.firsts {
		out = append(out, r.byFirst[first]...)
	}
	return out
}

// Len returns the number of chords
func (r *Registry) Len() int {
	n := 0
	for _, entries := range r.byFirst {
		n += len(entries)
	}
	return n
}

// ParseSequence parses "g x" (or "gx") into its two chord keys
func ParseSequence(seq string) (rune, rune, error) {
	compact := strings.Join(strings.Fields(seq), "")
	runes := []rune(compact)
	if len(runes) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must be exactly two keys", ErrInvalidKey, seq)
	}
	first, ok := chordRune(string(runes[0]))
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, seq)
	}
	second, ok := chordRune(string(runes[1]))
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, seq)
	}
	return first, second, nil
}
