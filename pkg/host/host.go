// Package host keeps the containers charts can be attached to, addressed by
// id.
package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
)

var ErrNotFound = errors.New("container not found")

type Registry struct {
	mu         sync.RWMutex
	containers map[string]*fyne.Container
}

func NewRegistry() *Registry {
	return &Registry{
		containers: make(map[string]*fyne.Container),
	}
}

// Register binds id to c, replacing any previous binding. A nil container
// removes the id.
func (r *Registry) Register(id string, c *fyne.Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c == nil {
		delete(r.containers, id)
		return
	}
	r.containers[id] = c
}

// Reset drops every binding.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.containers)
}

func (r *Registry) Lookup(id string) (*fyne.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.containers))
	for id := range r.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
