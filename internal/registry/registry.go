// Package registry provides a global registry for robot policy factories.
// Bots register themselves in init() functions, allowing the match runner
// and the CLI to discover and instantiate them by name.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/robot-arena/internal/arena"
)

// Policy is the decision logic of one robot. Stock bots use string timeout
// payloads.
type Policy = arena.Control[string]

// Factory creates a fresh policy. rng is owned by the match and may be used
// for the policy's own random decisions.
type Factory func(rng *rand.Rand) Policy

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	Name        string
	Description string
}

// ErrUnknownBot is returned by Create for names that were never registered.
var ErrUnknownBot = errors.New("registry: unknown bot")

type entry struct {
	factory     Factory
	description string
}

var (
	bots = make(map[string]entry)
	mu   sync.RWMutex
)

// Register adds a bot factory to the registry.
// Typically called from a bot's init() function.
// Panics if a bot with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if name == "" {
		panic("registry: bot name is empty")
	}
	if _, exists := bots[name]; exists {
		panic(fmt.Sprintf("registry: bot %q already registered", name))
	}

	bots[name] = entry{factory: f, description: description}
}

// List returns information about all registered bots, sorted by name.
func List() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(bots))
	for name, e := range bots {
		result = append(result, BotInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new policy by bot name.
func Create(name string, rng *rand.Rand) (Policy, error) {
	mu.RLock()
	e, ok := bots[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBot, name)
	}

	return e.factory(rng), nil
}

// Exists checks if a bot with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := bots[name]
	return ok
}
