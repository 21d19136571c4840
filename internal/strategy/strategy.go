// Package strategy holds the deck pilots: the decision logic that
// drives a game of a particular deck, together with its stock decklist.
package strategy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/premodern/goldfisher/internal/game"
)

// ErrUnknownStrategy is returned when no pilot is registered under the
// requested key.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Constructor builds a fresh pilot. Pilots may carry per-game state, so
// every simulated game gets its own instance.
type Constructor func() game.Strategy

var registry = map[string]Constructor{}

func register(key string, c Constructor) {
	registry[key] = c
}

// New builds the pilot registered under the key.
func New(key string) (game.Strategy, error) {
	c, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, key, Names())
	}
	return c(), nil
}

// Constructor returns the constructor registered under the key, so
// callers can build one pilot per game.
func ConstructorFor(key string) (Constructor, error) {
	c, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, key, Names())
	}
	return c, nil
}

// Names lists the registered strategy keys in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for key := range registry {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

func mustParseDecklist(text string) *game.Decklist {
	list, err := game.ParseDecklist(text)
	if err != nil {
		panic(fmt.Sprintf("bad embedded decklist: %v", err))
	}
	return list
}
