// Package registry provides a global registry for background factories.
// Backgrounds register themselves in init() functions, allowing the platform
// to mount the one a theme asks for without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wow-terminal/internal/core"
)

// Background is the interface every animated backdrop implements.
// Backgrounds contain pure drawing logic with no Bubble Tea dependency;
// the platform owns the timer and the terminal.
type Background interface {
	// ID returns a unique identifier for this background (e.g., "grid", "rain").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset sizes the drawing surface to the viewport and reseeds randomness.
	// Called when the background is mounted and again on every resize.
	Reset(cfg core.RuntimeConfig)

	// Step advances the animation by one redraw tick.
	// A background with no surface yet must treat Step as a no-op.
	Step()

	// Render copies the current frame into dst.
	Render(dst *core.Screen)
}

// Info contains metadata about a registered background.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a background.
type Factory func() Background

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a background factory to the registry.
// Typically called from a background's init() function.
// Panics if a background with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: background %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backgrounds, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new background by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Background, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown background %q", id)
	}

	return f(), nil
}
