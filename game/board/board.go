// Package board maps a row-major card grid onto a drawing surface.
//
// Both hosts share the same arithmetic: the desktop window measures tiles
// in pixels and the terminal measures them in character cells.
package board

import "image"

// Columns is the number of tiles per row in the standard grid
const Columns = 4

// Layout describes where tiles sit on the surface
type Layout struct {
	Columns    int
	TileWidth  int
	TileHeight int
	GapX       int
	GapY       int
	OriginX    int
	OriginY    int
}

// NewLayout returns a Columns-wide layout of square tiles
func NewLayout(tileSize, gap, originX, originY int) Layout {
	return Layout{
		Columns:    Columns,
		TileWidth:  tileSize,
		TileHeight: tileSize,
		GapX:       gap,
		GapY:       gap,
		OriginX:    originX,
		OriginY:    originY,
	}
}

func (l Layout) columns() int {
	if l.Columns <= 0 {
		return Columns
	}
	return l.Columns
}

// Cell returns the column and row of tile i
func (l Layout) Cell(i int) (col, row int) {
	c := l.columns()
	return i % c, i / c
}

// EndsRow reports whether tile i is the last one in its row
func (l Layout) EndsRow(i int) bool {
	return (i+1)%l.columns() == 0
}

// Rows returns how many rows n tiles occupy
func (l Layout) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	c := l.columns()
	return (n + c - 1) / c
}

// TileRect returns the bounds of tile i
func (l Layout) TileRect(i int) image.Rectangle {
	col, row := l.Cell(i)
	x := l.OriginX + col*(l.TileWidth+l.GapX)
	y := l.OriginY + row*(l.TileHeight+l.GapY)
	return image.Rect(x, y, x+l.TileWidth, y+l.TileHeight)
}

// Size returns the width and height needed to draw n tiles, origin included
func (l Layout) Size(n int) (int, int) {
	rows := l.Rows(n)
	if rows == 0 {
		return l.OriginX, l.OriginY
	}
	cols := l.columns()
	if n < cols {
		cols = n
	}
	w := l.OriginX + cols*l.TileWidth + (cols-1)*l.GapX
	h := l.OriginY + rows*l.TileHeight + (rows-1)*l.GapY
	return w, h
}

// TileAt returns the index of the tile under (x, y), if any of the n tiles is there
func (l Layout) TileAt(x, y, n int) (int, bool) {
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return 0, false
	}

	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, false
	}

	strideX := l.TileWidth + l.GapX
	strideY := l.TileHeight + l.GapY
	col, row := dx/strideX, dy/strideY
	if dx%strideX >= l.TileWidth || dy%strideY >= l.TileHeight {
		return 0, false
	}
	if col >= l.columns() {
		return 0, false
	}

	i := row*l.columns() + col
	if i >= n {
		return 0, false
	}
	return i, true
}
