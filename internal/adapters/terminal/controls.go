package terminal

import (
	"strings"
	"sync"
)

// Checkboxes is the set of category controls. All options start checked.
type Checkboxes struct {
	mu      sync.RWMutex
	options []string
	checked map[string]bool
}

func NewCheckboxes(options []string) *Checkboxes {
	c := &Checkboxes{checked: make(map[string]bool, len(options))}
	for _, o := range options {
		c.add(o)
		c.checked[strings.TrimSpace(o)] = true
	}
	return c
}

func (c *Checkboxes) add(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if _, ok := c.checked[id]; ok {
		return
	}
	c.options = append(c.options, id)
	c.checked[id] = false
}

// Check ticks id, adding it as an option when unknown.
func (c *Checkboxes) Check(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id = strings.TrimSpace(id)
	c.add(id)
	if id != "" {
		c.checked[id] = true
	}
}

func (c *Checkboxes) Uncheck(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id = strings.TrimSpace(id)
	if _, ok := c.checked[id]; ok {
		c.checked[id] = false
	}
}

// Set leaves exactly ids checked.
func (c *Checkboxes) Set(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.checked {
		c.checked[k] = false
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		c.add(id)
		if id != "" {
			c.checked[id] = true
		}
	}
}

// CheckedCategories returns the ticked ids in option order.
func (c *Checkboxes) CheckedCategories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.options))
	for _, o := range c.options {
		if c.checked[o] {
			out = append(out, o)
		}
	}
	return out
}
