package world

import "math/rand/v2"

// Tunnel returns the L-shaped path between start and end, both included.
// The elbow is horizontal-then-vertical or vertical-then-horizontal with
// equal probability.
func Tunnel(rng *rand.Rand, start, end Point) []Point {
	var corner Point
	if rng.IntN(2) == 0 {
		corner = Point{X: end.X, Y: start.Y}
	} else {
		corner = Point{X: start.X, Y: end.Y}
	}

	path := line(start, corner)
	rest := line(corner, end)
	return append(path, rest[1:]...)
}

// line walks an axis-aligned segment from a to b inclusive.
func line(a, b Point) []Point {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	pts := []Point{a}
	for p := a; p != b; {
		p.X += dx
		p.Y += dy
		pts = append(pts, p)
	}
	return pts
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
