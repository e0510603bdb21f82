// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top left", Point{10, 20}, true},
		{"inside", Point{25, 40}, true},
		{"right edge", Point{40, 30}, false},
		{"bottom edge", Point{20, 60}, false},
		{"left of", Point{9.9, 30}, false},
		{"above", Point{20, 19}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 3, 4, 5}, Rect{2, 3, 4, 5}},
		{"touching", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Rect{}},
		{"disjoint", Rect{0, 0, 1, 1}, Rect{5, 5, 1, 1}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	if r.Right() != 4 || r.Bottom() != 6 {
		t.Errorf("Right, Bottom = %v, %v", r.Right(), r.Bottom())
	}
	if r.Size() != (Size{3, 4}) {
		t.Errorf("Size = %v", r.Size())
	}
	if r.Center() != (Point{2.5, 4}) {
		t.Errorf("Center = %v", r.Center())
	}
	if r.Translate(1, -2) != (Rect{2, 0, 3, 4}) {
		t.Errorf("Translate = %v", r.Translate(1, -2))
	}
	if r.Empty() || !(Rect{W: 0, H: 5}).Empty() || !(Rect{W: 5, H: -1}).Empty() {
		t.Error("Empty misreports")
	}
	if got := r.String(); got != "(1, 2, 3, 4)" {
		t.Errorf("String = %q", got)
	}
}
