// Package desktop runs the Memory Game in an ebiten window.
package desktop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wricardo/memory-game/game/board"
	"github.com/wricardo/memory-game/game/engine"
	"github.com/wricardo/memory-game/game/session"
)

const (
	WindowTitle  = "🧠 Memory Game"
	tileGap      = 8
	margin       = 20
	headerHeight = 70 // Title, moves and the cooldown bar
	footerHeight = 60 // Win banner and controls
	glyphWidth   = 6  // ebitenutil debug font cell
	glyphHeight  = 16
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	hiddenColor     = color.RGBA{55, 65, 90, 255}
	hoverColor      = color.RGBA{200, 200, 220, 255}
	cooldownColor   = color.RGBA{97, 175, 239, 255}
	bannerColor     = color.RGBA{255, 215, 0, 255} // Gold
)

// Symbol colors for the default deck
var symbolColors = map[string]color.RGBA{
	"cat":    {229, 192, 123, 255}, // Yellow
	"dog":    {209, 154, 102, 255}, // Orange
	"ghost":  {171, 178, 191, 255}, // Light gray
	"alien":  {152, 195, 121, 255}, // Green
	"laptop": {97, 175, 239, 255},  // Blue
	"rocket": {198, 120, 221, 255}, // Magenta
	"fire":   {224, 108, 117, 255}, // Red
	"bug":    {86, 182, 194, 255},  // Cyan
}

// Game adapts a session to ebiten's Update/Draw/Layout loop
type Game struct {
	session *session.Session
	layout  board.Layout
	frame   engine.Frame
	width   int
	height  int
}

// NewGame creates the desktop client for sess with square tiles of tileSize pixels
func NewGame(sess *session.Session, tileSize int) *Game {
	layout := board.NewLayout(tileSize, tileGap, margin, headerHeight)
	frame := sess.Last()
	w, h := layout.Size(len(frame.Faces))

	width := w + margin
	if minWidth := 2*margin + 42*glyphWidth; width < minWidth {
		width = minWidth
	}

	return &Game{
		session: sess,
		layout:  layout,
		frame:   frame,
		width:   width,
		height:  h + footerHeight,
	}
}

// Update collects input for this tick and advances the session one frame.
// ebiten calls Update at a fixed rate, so redraw requests are always met.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.frame = g.session.NewGame()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clickAt(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.clickAt(ebiten.TouchPosition(id))
	}

	g.frame = g.session.Advance()
	return nil
}

func (g *Game) clickAt(x, y int) {
	if idx, ok := g.layout.TileAt(x, y, len(g.frame.Faces)); ok {
		g.session.Click(idx)
	}
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	ebitenutil.DebugPrintAt(screen, "=== MEMORY GAME ===", margin, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Moves: %d", g.frame.Moves), margin, 32)
	g.drawCooldown(screen)

	cx, cy := ebiten.CursorPosition()
	hovered, hovering := g.layout.TileAt(cx, cy, len(g.frame.Faces))

	for _, face := range g.frame.Faces {
		g.drawTile(screen, face, hovering && hovered == face.Index && face.State == engine.Hidden)
	}

	_, gridBottom := g.layout.Size(len(g.frame.Faces))
	y := gridBottom + 12
	if g.frame.Won {
		vector.DrawFilledRect(screen, float32(margin), float32(y), float32(g.width-2*margin), 20, bannerColor, false)
		ebitenutil.DebugPrintAt(screen, "*** YOU WIN! ***", margin+6, y+2)
		y += 26
	}
	ebitenutil.DebugPrintAt(screen, "Click: flip | N: New Game | ESC: Quit", margin, y)
}

func (g *Game) drawCooldown(screen *ebiten.Image) {
	if g.frame.Cooldown <= 0 {
		return
	}
	frac := float32(g.frame.Cooldown) / float32(engine.DefaultCooldown)
	if frac > 1 {
		frac = 1
	}
	w, _ := g.layout.Size(len(g.frame.Faces))
	vector.DrawFilledRect(screen, float32(margin), headerHeight-14, float32(w-margin)*frac, 4, cooldownColor, false)
}

func (g *Game) drawTile(screen *ebiten.Image, face engine.Face, hover bool) {
	r := g.layout.TileRect(face.Index)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, tileColor(face), false)
	if hover {
		vector.StrokeRect(screen, x, y, w, h, 2, hoverColor, false)
	}

	label := "?"
	if face.Shown() {
		label = strings.ToUpper(face.Symbol.Name)
		if label == "" {
			label = face.Label
		}
	}
	pos := centerText(r, label)
	ebitenutil.DebugPrintAt(screen, label, pos.X, pos.Y)
}

// tileColor returns the fill for a card in the given state
func tileColor(face engine.Face) color.Color {
	switch face.State {
	case engine.Revealed:
		return symbolColor(face.Symbol)
	case engine.Matched:
		c := symbolColor(face.Symbol)
		return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255} // Dimmed once matched
	default:
		return hiddenColor
	}
}

func symbolColor(s engine.Symbol) color.RGBA {
	if c, ok := symbolColors[s.Name]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

func centerText(r image.Rectangle, text string) image.Point {
	return image.Pt(
		r.Min.X+(r.Dx()-len(text)*glyphWidth)/2,
		r.Min.Y+(r.Dy()-glyphHeight)/2,
	)
}

// Layout returns the game screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed
func Run(sess *session.Session, tileSize int) error {
	game := NewGame(sess, tileSize)

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(WindowTitle)

	log.Printf("Opening desktop window (%dx%d)", game.width, game.height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
