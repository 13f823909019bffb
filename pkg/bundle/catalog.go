package bundle

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Factory builds a fresh Bundle.
type Factory func() Bundle

// Catalog resolves bundles by name. The zero value is empty and ready to use.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewCatalog returns a catalog with the built-in presets registered.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.registerBuiltins()
	return c
}

func (c *Catalog) registerBuiltins() {
	c.Register(PresetPercent, Percent)
	c.Register(PresetHexColor, HexColor)
	c.Register(PresetIntegerPercent, IntegerPercent)
	c.Register(PresetInteger, func() Bundle { return IntegerWithin(nil, nil) })
	c.Register(PresetEmail, Email)
	c.Register(PresetTitle, Title)
	c.Register(PresetDate, Date)
	c.Register(PresetURL, URL)
	c.Register(PresetPhone, Phone)
	c.Register(PresetAmount, func() Bundle { return Amount(language.English) })
	c.Register(PresetReadOnly, ReadOnly)
}

// Register adds or replaces a named factory.
func (c *Catalog) Register(name string, factory Factory) {
	if c == nil || factory == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.factories == nil {
		c.factories = make(map[string]Factory)
	}
	c.factories[trimmed] = factory
}

// Lookup builds the bundle registered under name. The returned bundle carries
// name in Bundle.Name.
func (c *Catalog) Lookup(name string) (Bundle, bool) {
	if c == nil {
		return Bundle{}, false
	}
	c.mu.RLock()
	factory, ok := c.factories[strings.TrimSpace(name)]
	c.mu.RUnlock()
	if !ok {
		return Bundle{}, false
	}
	b := factory().Clone()
	b.Name = strings.TrimSpace(name)
	return b, true
}

// Names lists registered names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}
