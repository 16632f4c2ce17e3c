package board

import (
	"image"
	"testing"
)

func TestLayout_TileRect(t *testing.T) {
	l := NewLayout(60, 8, 20, 80)

	tests := []struct {
		idx  int
		want image.Rectangle
	}{
		{0, image.Rect(20, 80, 80, 140)},
		{3, image.Rect(224, 80, 284, 140)},
		{4, image.Rect(20, 148, 80, 208)},
		{15, image.Rect(224, 284, 284, 344)},
	}

	for _, tt := range tests {
		if got := l.TileRect(tt.idx); got != tt.want {
			t.Errorf("TileRect(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestLayout_TileAt(t *testing.T) {
	l := NewLayout(60, 8, 20, 80)

	t.Run("round trip through tile centers", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			r := l.TileRect(i)
			c := r.Min.Add(r.Size().Div(2))
			got, ok := l.TileAt(c.X, c.Y, 16)
			if !ok || got != i {
				t.Errorf("TileAt(center of %d) = %d,%v", i, got, ok)
			}
		}
	})

	t.Run("misses", func(t *testing.T) {
		misses := []image.Point{
			{0, 0},     // margin
			{19, 100},  // left of grid
			{85, 100},  // horizontal gap
			{30, 143},  // vertical gap
			{300, 100}, // right of grid
			{30, 400},  // below the last row
		}
		for _, p := range misses {
			if i, ok := l.TileAt(p.X, p.Y, 16); ok {
				t.Errorf("TileAt(%v) = %d, expected miss", p, i)
			}
		}
	})

	t.Run("fewer tiles than grid slots", func(t *testing.T) {
		r := l.TileRect(5)
		if _, ok := l.TileAt(r.Min.X, r.Min.Y, 4); ok {
			t.Error("Expected tile 5 to be out of range for a 4 card deck")
		}
	})

	t.Run("zero sized tiles", func(t *testing.T) {
		if _, ok := (Layout{}).TileAt(0, 0, 16); ok {
			t.Error("Expected empty layout to hit nothing")
		}
	})
}

func TestLayout_EndsRow(t *testing.T) {
	l := NewLayout(1, 0, 0, 0)
	for i := 0; i < 16; i++ {
		want := i == 3 || i == 7 || i == 11 || i == 15
		if got := l.EndsRow(i); got != want {
			t.Errorf("EndsRow(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestLayout_Size(t *testing.T) {
	l := NewLayout(60, 8, 20, 80)

	w, h := l.Size(16)
	if w != 284 || h != 344 {
		t.Errorf("Size(16) = %d,%d want 284,344", w, h)
	}

	w, h = l.Size(2)
	if w != 148 || h != 140 {
		t.Errorf("Size(2) = %d,%d want 148,140", w, h)
	}

	if l.Rows(0) != 0 || l.Rows(5) != 2 {
		t.Errorf("Unexpected row counts: %d %d", l.Rows(0), l.Rows(5))
	}
}
