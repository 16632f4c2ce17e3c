// Package engine provides the core game logic for the Memory Game.
//
// The engine package implements the game mechanics including:
//   - Deck construction from symbol pairs and a uniform shuffle
//   - Click-to-reveal selection of two cards per move
//   - Cooldown-delayed match and mismatch resolution
//   - Move counting and the win condition
//
// Core Types:
//
// Game is the session state machine. It owns the card grid, the two
// selection slots, the move counter and the cooldown. A host UI loop drives
// it once per frame through Update, supplying the elapsed time and the
// clicked grid indices, and draws the returned Frame.
//
// Usage:
//
//	game := engine.NewDefaultGame()
//
//	// Once per rendered frame
//	frame := game.Update(elapsed, clicks)
//	for _, face := range frame.Faces {
//		draw(face.Index, face.Label)
//	}
//	if frame.Redraw {
//		// keep ticking while the cooldown runs
//	}
//
// Game Rules:
//
// All cards start face down. The player reveals two cards; after a short
// cooldown equal symbols stay face up as a match and different symbols turn
// back over. Clicks during the cooldown are ignored. The game is won when
// every card is matched.
package engine
