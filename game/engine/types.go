package engine

import "time"

// CardState represents the visibility of a card
type CardState string

const (
	Hidden   CardState = "hidden"
	Revealed CardState = "revealed"
	Matched  CardState = "matched"

	// Default deck and timing
	PairCount       = 8
	DeckSize        = PairCount * 2
	DefaultCooldown = time.Second
	FaceDownMarker  = "🎴"
	NoSelection     = -1
)

// Symbol identifies a card face
type Symbol struct {
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
}

// Card is a single grid cell
type Card struct {
	Symbol Symbol    `json:"symbol"`
	State  CardState `json:"state"`
}

// EventType names something that happened during a frame
type EventType string

const (
	EventReveal   EventType = "reveal"
	EventMatch    EventType = "match"
	EventMismatch EventType = "mismatch"
	EventVictory  EventType = "victory"
	EventNewGame  EventType = "new_game"
)

// Event represents a state transition that occurred during an update
type Event struct {
	Type    EventType `json:"type"`
	Indices []int     `json:"indices,omitempty"`
	Moves   int       `json:"moves"`
}

// Face is the render instruction for one card
type Face struct {
	Index  int       `json:"index"`
	State  CardState `json:"state"`
	Symbol Symbol    `json:"symbol"`
	Label  string    `json:"label"`
}

// Shown reports whether the card's symbol is visible
func (f Face) Shown() bool {
	return f.State != Hidden
}

// Frame is everything a host needs to draw one frame
type Frame struct {
	Faces    []Face        `json:"faces"`
	Moves    int           `json:"moves"`
	Won      bool          `json:"won"`
	Cooldown time.Duration `json:"cooldown"`

	// Redraw asks the host to deliver another frame even without input.
	Redraw bool    `json:"redraw"`
	Events []Event `json:"events,omitempty"`
}
