package engine

import (
	"fmt"
	"time"
)

// Option configures a Game at construction
type Option func(*Game) error

// WithSymbols builds the deck from the given symbols, two cards each
func WithSymbols(symbols []Symbol) Option {
	return func(g *Game) error {
		if err := ValidateSymbols(symbols); err != nil {
			return err
		}
		g.symbols = append([]Symbol(nil), symbols...)
		g.order = nil
		return nil
	}
}

// WithDeck fixes the exact card order and disables shuffling
func WithDeck(order []Symbol) Option {
	return func(g *Game) error {
		if err := ValidateDeck(order); err != nil {
			return err
		}
		g.order = append([]Symbol(nil), order...)
		return nil
	}
}

// WithRNG sets the random source used by the shuffle
func WithRNG(rng RNG) Option {
	return func(g *Game) error {
		if rng == nil {
			return fmt.Errorf("rng cannot be nil")
		}
		g.rng = rng
		return nil
	}
}

// WithCooldown overrides the delay between the second selection and resolution
func WithCooldown(d time.Duration) Option {
	return func(g *Game) error {
		if d <= 0 {
			return fmt.Errorf("%w: must be positive, got %s", ErrInvalidCooldown, d)
		}
		g.delay = d
		return nil
	}
}

// Game is a single memory game session
type Game struct {
	grid     []Card
	first    int
	second   int
	moves    int
	cooldown time.Duration

	delay   time.Duration
	symbols []Symbol
	order   []Symbol
	rng     RNG
	pending []Event
}

// NewGame creates a new game with the provided options and deals the first deck
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		delay:   DefaultCooldown,
		symbols: DefaultSymbols,
		rng:     stdRNG{},
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	g.deal()
	return g, nil
}

// NewDefaultGame creates the standard 16 card game
func NewDefaultGame() *Game {
	g := &Game{
		delay:   DefaultCooldown,
		symbols: DefaultSymbols,
		rng:     stdRNG{},
	}
	g.deal()
	return g
}

// Reset deals a fresh deck and clears all counters
func (g *Game) Reset() {
	g.deal()
	g.pending = append(g.pending, Event{Type: EventNewGame})
}

func (g *Game) deal() {
	if g.order != nil {
		g.grid = make([]Card, len(g.order))
		for i, s := range g.order {
			g.grid[i] = Card{Symbol: s, State: Hidden}
		}
	} else {
		g.grid = BuildDeck(g.symbols)
		Shuffle(g.grid, g.rng)
	}

	g.first = NoSelection
	g.second = NoSelection
	g.moves = 0
	g.cooldown = 0
	g.pending = nil
}

// Update advances the game by one frame and returns what to draw.
// Clicks are ignored once the game is won or while the cooldown runs.
func (g *Game) Update(elapsed time.Duration, clicks []int) Frame {
	if elapsed < 0 {
		elapsed = 0
	}

	if g.Won() {
		return g.flush(false)
	}

	if g.cooldown > 0 {
		g.cooldown -= elapsed
		if g.cooldown <= 0 {
			g.resolve()
		}
		return g.flush(true)
	}

	for _, idx := range clicks {
		g.Click(idx)
	}
	return g.flush(g.cooldown > 0)
}

// Click reveals the card at idx if the game accepts input.
// It returns true when the click changed the game state.
func (g *Game) Click(idx int) bool {
	if g.Won() || g.cooldown > 0 {
		return false
	}
	if idx < 0 || idx >= len(g.grid) || g.grid[idx].State != Hidden {
		return false
	}
	if g.second != NoSelection {
		return false
	}

	g.grid[idx].State = Revealed
	if g.first == NoSelection {
		g.first = idx
	} else {
		g.second = idx
		g.moves++
		g.cooldown = g.delay
	}

	g.pending = append(g.pending, Event{Type: EventReveal, Indices: []int{idx}, Moves: g.moves})
	return true
}

// resolve compares the two selections once the cooldown has elapsed
func (g *Game) resolve() {
	g.cooldown = 0
	a, b := g.first, g.second
	g.first = NoSelection
	g.second = NoSelection
	if a == NoSelection || b == NoSelection {
		return
	}

	if g.grid[a].Symbol == g.grid[b].Symbol {
		g.grid[a].State = Matched
		g.grid[b].State = Matched
		g.pending = append(g.pending, Event{Type: EventMatch, Indices: []int{a, b}, Moves: g.moves})
		if g.Won() {
			g.pending = append(g.pending, Event{Type: EventVictory, Moves: g.moves})
		}
		return
	}

	g.grid[a].State = Hidden
	g.grid[b].State = Hidden
	g.pending = append(g.pending, Event{Type: EventMismatch, Indices: []int{a, b}, Moves: g.moves})
}

func (g *Game) flush(redraw bool) Frame {
	frame := g.Render()
	frame.Redraw = redraw || g.cooldown > 0
	frame.Events = g.pending
	g.pending = nil
	return frame
}

// Won returns whether every card has been matched
func (g *Game) Won() bool {
	for _, c := range g.grid {
		if c.State != Matched {
			return false
		}
	}
	return len(g.grid) > 0
}

// Moves returns the number of completed selection pairs
func (g *Game) Moves() int {
	return g.moves
}

// Cooldown returns the time left before the pending pair resolves
func (g *Game) Cooldown() time.Duration {
	return g.cooldown
}

// Selections returns the first and second selected indices, or NoSelection
func (g *Game) Selections() (int, int) {
	return g.first, g.second
}

// Cards returns a copy of the grid
func (g *Game) Cards() []Card {
	cards := make([]Card, len(g.grid))
	copy(cards, g.grid)
	return cards
}

// Len returns the number of cards in the grid
func (g *Game) Len() int {
	return len(g.grid)
}

// CountState counts the cards in the given state
func (g *Game) CountState(state CardState) int {
	count := 0
	for _, c := range g.grid {
		if c.State == state {
			count++
		}
	}
	return count
}
