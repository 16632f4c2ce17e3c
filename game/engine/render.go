package engine

// Label returns what a card shows: the face-down marker or its glyph
func Label(c Card) string {
	if c.State == Hidden {
		return FaceDownMarker
	}
	return c.Symbol.Glyph
}

// Render maps the current state to render instructions without mutating it
func (g *Game) Render() Frame {
	faces := make([]Face, len(g.grid))
	for i, c := range g.grid {
		faces[i] = Face{
			Index:  i,
			State:  c.State,
			Symbol: c.Symbol,
			Label:  Label(c),
		}
	}

	return Frame{
		Faces:    faces,
		Moves:    g.moves,
		Won:      g.Won(),
		Cooldown: g.cooldown,
		Redraw:   g.cooldown > 0,
	}
}
