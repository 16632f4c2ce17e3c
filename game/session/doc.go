// Package session drives a Memory Game from a host UI loop.
//
// The session package implements:
//   - Per-frame elapsed time measured from an injectable clock
//   - Queueing of clicks between frames
//   - New game handling (re-running initialization)
//   - Logging of game events
//
// Core Types:
//
// Session wraps one engine.Game. Hosts call Click as input arrives and
// Advance once per frame; Advance feeds the elapsed time and queued clicks
// into the engine and returns the frame to draw.
//
// Session Identifiers:
//
// Every game dealt by a session gets a short random hex ID so log lines
// from consecutive games can be told apart.
//
// Concurrency:
//
// A Session is not safe for concurrent use. Hosts own it from their single
// update goroutine, which is how both ebiten and Bubble Tea deliver frames.
//
// Usage:
//
//	sess := session.New(engine.NewDefaultGame(), clock.New())
//
//	// On input
//	sess.Click(index)
//
//	// Once per frame
//	frame := sess.Advance()
//	if frame.Redraw {
//		// schedule another frame
//	}
package session
