package world

import (
	"math/rand/v2"
	"testing"
)

func TestRectInner(t *testing.T) {
	r := NewRect(2, 3, 4, 3)
	inner := r.Inner()
	// x 3..5, y 4..5
	if len(inner) != 6 {
		t.Fatalf("len(Inner()) = %d, want 6", len(inner))
	}
	for _, p := range inner {
		if p.X < 3 || p.X > 5 || p.Y < 4 || p.Y > 5 {
			t.Errorf("Inner() contains border point %v", p)
		}
	}
	if got, want := r.Center(), (Point{X: 4, Y: 4}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestCircleInner(t *testing.T) {
	c := NewCircle(0, 0, 2)
	center := c.Center()
	if center != (Point{X: 3, Y: 3}) {
		t.Errorf("Center() = %v, want (3,3)", center)
	}
	x1, y1, x2, y2 := c.Bounds()
	for _, p := range c.Inner() {
		dx, dy := p.X-center.X, p.Y-center.Y
		if dx*dx+dy*dy > 4 {
			t.Errorf("Inner() point %v outside radius", p)
		}
		if p.X <= x1 || p.X >= x2 || p.Y <= y1 || p.Y >= y2 {
			t.Errorf("Inner() point %v touches the bounding box", p)
		}
	}
	// 13 lattice points lie within radius 2
	if n := len(c.Inner()); n != 13 {
		t.Errorf("len(Inner()) = %d, want 13", n)
	}
}

func TestEllipseInner(t *testing.T) {
	e := NewEllipse(0, 0, 10, 6)
	x1, y1, x2, y2 := e.Bounds()
	inner := e.Inner()
	if len(inner) == 0 {
		t.Fatal("Inner() is empty")
	}
	hasCenter := false
	for _, p := range inner {
		if p == e.Center() {
			hasCenter = true
		}
		if p.X <= x1 || p.X >= x2 || p.Y <= y1 || p.Y >= y2 {
			t.Errorf("Inner() point %v touches the bounding box", p)
		}
	}
	if !hasCenter {
		t.Error("Inner() does not contain the center")
	}
}

func TestIntersectsInclusive(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"overlap", NewRect(0, 0, 5, 5), NewRect(3, 3, 5, 5), true},
		{"shared edge", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), true},
		{"apart", NewRect(0, 0, 5, 5), NewRect(6, 0, 5, 5), false},
		{"circle vs rect", NewCircle(0, 0, 2), NewRect(6, 6, 3, 3), true},
		{"ellipse apart", NewEllipse(0, 0, 4, 4), NewRect(10, 10, 3, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTunnel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	start, end := Point{X: 2, Y: 3}, Point{X: 7, Y: 9}
	for range 10 {
		path := Tunnel(rng, start, end)
		if path[0] != start || path[len(path)-1] != end {
			t.Fatalf("Tunnel() endpoints = %v..%v, want %v..%v", path[0], path[len(path)-1], start, end)
		}
		// Manhattan length plus the start tile
		if len(path) != 5+6+1 {
			t.Errorf("len(Tunnel()) = %d, want 12", len(path))
		}
		for i := 1; i < len(path); i++ {
			dx := abs(path[i].X - path[i-1].X)
			dy := abs(path[i].Y - path[i-1].Y)
			if dx+dy != 1 {
				t.Fatalf("Tunnel() step %v -> %v is not orthogonal", path[i-1], path[i])
			}
		}
	}
}
