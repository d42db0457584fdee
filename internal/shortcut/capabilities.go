package shortcut

import (
	"errors"
	"fmt"
	"sync"
)

// ErrCapabilityUnavailable is returned when no UI surface installed the
// capability a handler asked for
var ErrCapabilityUnavailable = errors.New("capability not available")

// Capability names an open/close surface a shortcut may drive
type Capability string

const (
	CommandMenu     Capability = "command_menu"
	IdentityPicker  Capability = "identity_picker"
	QuickFind       Capability = "quick_find"
	SequentialEntry Capability = "sequential_entry"
)

type opener struct {
	fn    func(open bool)
	token uint64
}

type navigator struct {
	fn    func(path string)
	token uint64
}

// Capabilities holds the setters installed by UI surfaces. Surfaces
// Acquire on mount and call the returned release on unmount; a later
// Acquire overwrites an earlier one, and a stale release is a no-op.
type Capabilities struct {
	mu        sync.RWMutex
	navigator navigator
	next      uint64
	openers   map[Capability]opener
}

// NewCapabilities creates an empty capability set
func NewCapabilities() *Capabilities {
	return &Capabilities{openers: make(map[Capability]opener)}
}

// Acquire installs the open function for capability c
func (c *Capabilities) Acquire(capability Capability, open func(bool)) (release func()) {
	c.mu.Lock()
	c.next++
	token := c.next
	c.openers[capability] = opener{fn: open, token: token}
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if current, ok := c.openers[capability]; ok && current.token == token {
				delete(c.openers, capability)
			}
		})
	}
}

// AcquireNavigator installs the router navigate function
func (c *Capabilities) AcquireNavigator(navigate func(path string)) (release func()) {
	c.mu.Lock()
	c.next++
	token := c.next
	c.navigator = navigator{fn: navigate, token: token}
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.navigator.token == token {
				c.navigator = navigator{}
			}
		})
	}
}

// Bundle snapshots the currently installed setters. Call it at the
// moment a handler runs, never earlier.
func (c *Capabilities) Bundle() Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	openers := make(map[Capability]func(bool), len(c.openers))
	for name, o := range c.openers {
		openers[name] = o.fn
	}
	return Bundle{navigate: c.navigator.fn, openers: openers}
}

// Bundle is the set of capabilities handed to a handler
type Bundle struct {
	navigate func(path string)
	openers  map[Capability]func(bool)
}

// Open opens or closes the surface behind capability c
func (b Bundle) Open(c Capability, open bool) error {
	fn := b.openers[c]
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrCapabilityUnavailable, c)
	}
	fn(open)
	return nil
}

// Navigate routes to path
func (b Bundle) Navigate(path string) error {
	if b.navigate == nil {
		return fmt.Errorf("%w: navigate", ErrCapabilityUnavailable)
	}
	b.navigate(path)
	return nil
}

func (b Bundle) OpenCommandMenu(open bool) error     { return b.Open(CommandMenu, open) }
func (b Bundle) OpenIdentityPicker(open bool) error  { return b.Open(IdentityPicker, open) }
func (b Bundle) OpenQuickFind(open bool) error       { return b.Open(QuickFind, open) }
func (b Bundle) OpenSequentialEntry(open bool) error { return b.Open(SequentialEntry, open) }
