package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrInvalidDeck     = errors.New("invalid deck")
	ErrInvalidCooldown = errors.New("invalid cooldown")
)

// DefaultSymbols are the eight faces of the standard 4x4 game
var DefaultSymbols = []Symbol{
	{Glyph: "🐱", Name: "cat"},
	{Glyph: "🐶", Name: "dog"},
	{Glyph: "👻", Name: "ghost"},
	{Glyph: "👽", Name: "alien"},
	{Glyph: "💻", Name: "laptop"},
	{Glyph: "🚀", Name: "rocket"},
	{Glyph: "🔥", Name: "fire"},
	{Glyph: "🐞", Name: "bug"},
}

// RNG is the random source used to shuffle the deck
type RNG interface {
	IntN(n int) int
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) }

// NewSeededRNG returns a deterministic RNG for reproducible shuffles
func NewSeededRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// BuildDeck pairs every symbol, producing two face-down cards per symbol
func BuildDeck(symbols []Symbol) []Card {
	cards := make([]Card, 0, len(symbols)*2)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s, State: Hidden}, Card{Symbol: s, State: Hidden})
	}
	return cards
}

// Shuffle applies a Fisher-Yates permutation so every ordering is equally likely
func Shuffle(cards []Card, rng RNG) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ValidateSymbols checks a symbol set used to build a paired deck
func ValidateSymbols(symbols []Symbol) error {
	if len(symbols) == 0 {
		return fmt.Errorf("%w: at least one symbol is required", ErrInvalidDeck)
	}

	seen := make(map[Symbol]bool, len(symbols))
	for i, s := range symbols {
		if s.Glyph == "" {
			return fmt.Errorf("%w: symbol %d has an empty glyph", ErrInvalidDeck, i)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidDeck, s.Glyph)
		}
		seen[s] = true
	}
	return nil
}

// ValidateDeck checks an explicit card order: every symbol must appear exactly twice
func ValidateDeck(order []Symbol) error {
	if len(order) == 0 || len(order)%2 != 0 {
		return fmt.Errorf("%w: deck must have a positive even number of cards, got %d", ErrInvalidDeck, len(order))
	}

	counts := make(map[Symbol]int, len(order)/2)
	for i, s := range order {
		if s.Glyph == "" {
			return fmt.Errorf("%w: card %d has an empty glyph", ErrInvalidDeck, i)
		}
		counts[s]++
	}
	for s, n := range counts {
		if n != 2 {
			return fmt.Errorf("%w: symbol %q appears %d times, want 2", ErrInvalidDeck, s.Glyph, n)
		}
	}
	return nil
}
