// Package registry keeps the courses the platforms can offer. Each course
// registers itself from init(), so front ends list and create courses
// without importing them by name.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/dash-runner/internal/core"
)

// Game is the interface every course implements. Games hold pure logic:
// the platform maps input, measures frame time and draws the screen.
type Game interface {
	// ID is the unique identifier used by the CLI and score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step feeds one host frame of length dt. The game runs as many fixed
	// simulation steps as its clock grants; the result reports how many.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, best and run phase.
	State() core.GameState
}

// Info describes a registered course.
type Info struct {
	ID      string
	Title   string
	Summary string // one line for menus
}

// Factory creates a new instance of a course.
type Factory func() Game

// ErrUnknown is returned by Create for an ID nobody registered.
var ErrUnknown = errors.New("registry: unknown course")

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a course. It panics on an empty or duplicate ID, which is
// a programming error caught at start-up.
func Register(info Info, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: course needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: course %q already registered", info.ID))
	}
	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every course in registration order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Lookup returns the description of a course.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return Info{}, false
	}
	return entries[i].info, true
}

// Create instantiates a course by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return f(), nil
}

// Exists reports whether a course with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
