package world

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Shape is a room used during generation. Rooms are discarded once the
// floor is carved.
type Shape interface {
	// Bounds returns the inclusive bounding box.
	Bounds() (x1, y1, x2, y2 int)
	// Center returns the integer-truncated midpoint.
	Center() Point
	// Inner returns every coordinate to carve as floor.
	Inner() []Point
}

// Intersects reports whether two shapes' bounding boxes overlap.
// Shapes sharing an edge intersect.
func Intersects(a, b Shape) bool {
	ax1, ay1, ax2, ay2 := a.Bounds()
	bx1, by1, bx2, by2 := b.Bounds()
	return ax1 <= bx2 && ax2 >= bx1 && ay1 <= by2 && ay2 >= by1
}

// Rect is a rectangular room. Its outer ring stays wall.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle with top-left x, y.
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Bounds returns the inclusive bounding box.
func (r Rect) Bounds() (int, int, int, int) {
	return r.X1, r.Y1, r.X2, r.Y2
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Inner returns the rectangle minus its one-tile border.
func (r Rect) Inner() []Point {
	var pts []Point
	for y := r.Y1 + 1; y <= r.Y2-1; y++ {
		for x := r.X1 + 1; x <= r.X2-1; x++ {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

// Circle is a round room inscribed in a square box with a one-tile margin.
type Circle struct {
	X, Y   int // Top-left of the bounding box
	Radius int
}

// NewCircle creates a circle whose bounding box starts at x, y.
func NewCircle(x, y, radius int) Circle {
	return Circle{X: x, Y: y, Radius: radius}
}

// Bounds returns the inclusive bounding box.
func (c Circle) Bounds() (int, int, int, int) {
	size := 2*c.Radius + 2
	return c.X, c.Y, c.X + size, c.Y + size
}

// Center returns the circle's middle.
func (c Circle) Center() Point {
	return Point{X: c.X + c.Radius + 1, Y: c.Y + c.Radius + 1}
}

// Inner returns every box point with dx²+dy² <= r².
func (c Circle) Inner() []Point {
	x1, y1, x2, y2 := c.Bounds()
	center := c.Center()
	r2 := c.Radius * c.Radius

	var pts []Point
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= r2 {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Ellipse is an oval room filling its bounding box minus a one-tile margin.
type Ellipse struct {
	X, Y          int
	Width, Height int
}

// NewEllipse creates an ellipse whose bounding box starts at x, y.
func NewEllipse(x, y, width, height int) Ellipse {
	return Ellipse{X: x, Y: y, Width: width, Height: height}
}

// Bounds returns the inclusive bounding box.
func (e Ellipse) Bounds() (int, int, int, int) {
	return e.X, e.Y, e.X + e.Width, e.Y + e.Height
}

// Center returns the ellipse's middle.
func (e Ellipse) Center() Point {
	return Point{X: e.X + e.Width/2, Y: e.Y + e.Height/2}
}

// Inner returns every box point inside the normalized ellipse equation.
// Evaluated as dx²b² + dy²a² <= a²b² to stay in integers.
func (e Ellipse) Inner() []Point {
	a := max(e.Width/2-1, 1)
	b := max(e.Height/2-1, 1)
	center := e.Center()
	x1, y1, x2, y2 := e.Bounds()

	var pts []Point
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx*b*b+dy*dy*a*a <= a*a*b*b {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
