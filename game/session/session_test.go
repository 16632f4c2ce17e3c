package session

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/wricardo/memory-game/game/engine"
)

var (
	symA = engine.Symbol{Glyph: "A", Name: "a"}
	symB = engine.Symbol{Glyph: "B", Name: "b"}
)

func createTestSession(t *testing.T) (*Session, *clock.Mock) {
	t.Helper()
	game, err := engine.NewGame(engine.WithDeck([]engine.Symbol{symA, symA, symB, symB}))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mock := clock.NewMock()
	return New(game, mock), mock
}

func TestNew(t *testing.T) {
	sess, mock := createTestSession(t)

	if len(sess.ID) != 4 {
		t.Errorf("Expected 4 character ID, got %q", sess.ID)
	}
	if !sess.StartedAt.Equal(mock.Now()) {
		t.Errorf("Expected start time %v, got %v", mock.Now(), sess.StartedAt)
	}
	if got := len(sess.Last().Faces); got != 4 {
		t.Errorf("Expected initial frame with 4 faces, got %d", got)
	}
}

func TestNew_DefaultClock(t *testing.T) {
	sess := New(engine.NewDefaultGame(), nil)
	if sess.clock == nil {
		t.Fatal("Expected a wall clock when none is given")
	}
}

func TestSession_ClickQueue(t *testing.T) {
	sess, _ := createTestSession(t)

	sess.Click(0)
	sess.Click(2)
	if sess.Pending() != 2 {
		t.Fatalf("Expected 2 pending clicks, got %d", sess.Pending())
	}

	frame := sess.Advance()
	if sess.Pending() != 0 {
		t.Errorf("Expected queue cleared, got %d", sess.Pending())
	}
	if frame.Moves != 1 {
		t.Errorf("Expected 1 move, got %d", frame.Moves)
	}
	if !frame.Redraw {
		t.Error("Expected redraw while cooldown runs")
	}
}

func TestSession_AdvanceUsesClock(t *testing.T) {
	sess, mock := createTestSession(t)
	sess.Click(0)
	sess.Click(2)
	sess.Advance()

	mock.Add(400 * time.Millisecond)
	frame := sess.Advance()
	if frame.Cooldown != 600*time.Millisecond {
		t.Errorf("Expected 600ms left, got %s", frame.Cooldown)
	}

	// No time passes: cooldown stays put
	frame = sess.Advance()
	if frame.Cooldown != 600*time.Millisecond {
		t.Errorf("Expected 600ms left without elapsed time, got %s", frame.Cooldown)
	}

	mock.Add(600 * time.Millisecond)
	frame = sess.Advance()
	if frame.Cooldown != 0 || frame.Redraw != true {
		t.Errorf("Expected resolving frame, got cooldown=%s redraw=%v", frame.Cooldown, frame.Redraw)
	}
	for i, f := range frame.Faces {
		if f.State != engine.Hidden {
			t.Errorf("Card %d: expected hidden after mismatch, got %s", i, f.State)
		}
	}

	mock.Add(16 * time.Millisecond)
	if sess.Advance().Redraw {
		t.Error("Expected no redraw once idle")
	}
}

func TestSession_ClicksDuringCooldownAreDropped(t *testing.T) {
	sess, mock := createTestSession(t)
	sess.Click(0)
	sess.Click(1)
	sess.Advance()

	sess.Click(2)
	mock.Add(100 * time.Millisecond)
	sess.Advance()
	if sess.Pending() != 0 {
		t.Errorf("Expected ignored clicks to be discarded, got %d pending", sess.Pending())
	}

	mock.Add(time.Second)
	frame := sess.Advance()
	if frame.Faces[2].State != engine.Hidden {
		t.Errorf("Expected card 2 hidden, got %s", frame.Faces[2].State)
	}
	if frame.Faces[0].State != engine.Matched || frame.Faces[1].State != engine.Matched {
		t.Error("Expected first pair matched")
	}
}

func TestSession_NewGame(t *testing.T) {
	sess, mock := createTestSession(t)
	sess.SetDebug(true)

	sess.Click(0)
	sess.Click(1)
	sess.Advance()
	mock.Add(time.Second)
	sess.Advance()

	mock.Add(time.Minute)
	sess.Click(3)
	frame := sess.NewGame()

	if frame.Moves != 0 {
		t.Errorf("Expected moves reset, got %d", frame.Moves)
	}
	for i, f := range frame.Faces {
		if f.State != engine.Hidden {
			t.Errorf("Card %d: expected hidden, got %s", i, f.State)
		}
	}
	if len(frame.Events) != 1 || frame.Events[0].Type != engine.EventNewGame {
		t.Errorf("Expected new_game event, got %+v", frame.Events)
	}
	if !sess.StartedAt.Equal(mock.Now()) {
		t.Error("Expected start time to move to the new game")
	}
	if sess.ID == "" {
		t.Error("Expected a game ID")
	}
}
