package session

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/wricardo/memory-game/game/engine"
)

// Session feeds frames into a single game
type Session struct {
	ID        string
	StartedAt time.Time

	game   *engine.Game
	clock  clock.Clock
	last   time.Time
	clicks []int
	frame  engine.Frame
	debug  bool
}

// New creates a session around game, timing frames with clk
func New(game *engine.Game, clk clock.Clock) *Session {
	if clk == nil {
		clk = clock.New()
	}

	now := clk.Now()
	s := &Session{
		ID:        generateGameID(),
		StartedAt: now,
		game:      game,
		clock:     clk,
		last:      now,
	}
	s.frame = game.Render()
	return s
}

// SetDebug enables per-event logging
func (s *Session) SetDebug(debug bool) {
	s.debug = debug
}

// Game returns the underlying game
func (s *Session) Game() *engine.Game {
	return s.game
}

// Click queues a grid index for the next frame
func (s *Session) Click(idx int) {
	s.clicks = append(s.clicks, idx)
}

// Pending returns the number of clicks waiting for the next frame
func (s *Session) Pending() int {
	return len(s.clicks)
}

// Advance runs one frame using the time elapsed since the previous one
func (s *Session) Advance() engine.Frame {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now

	clicks := s.clicks
	s.clicks = nil

	s.frame = s.game.Update(elapsed, clicks)
	s.logEvents(s.frame.Events)
	return s.frame
}

// Last returns the most recent frame without advancing the game
func (s *Session) Last() engine.Frame {
	return s.frame
}

// NewGame reshuffles and restarts the frame clock
func (s *Session) NewGame() engine.Frame {
	s.game.Reset()
	s.clicks = nil
	s.ID = generateGameID()
	s.StartedAt = s.clock.Now()
	s.last = s.StartedAt
	return s.Advance()
}

func (s *Session) logEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventVictory:
			log.Printf("[%s] game won in %d moves (%s)", s.ID, ev.Moves, s.clock.Since(s.StartedAt).Round(time.Second))
		case engine.EventNewGame:
			log.Printf("[%s] new game dealt", s.ID)
		default:
			if s.debug {
				log.Printf("[%s] %s %v (moves: %d)", s.ID, ev.Type, ev.Indices, ev.Moves)
			}
		}
	}
}

// generateGameID generates a random 4-character game ID
func generateGameID() string {
	bytes := make([]byte, 2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
