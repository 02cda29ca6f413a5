package world

// UpdateFOV recomputes the visible set from x, y out to radius and folds
// it into the explored set. The whole map is recomputed on every call.
func (m *Map) UpdateFOV(x, y, radius int) {
	clear(m.visible)
	if !m.InBounds(x, y) {
		return
	}

	m.computeFOV(Point{X: x, Y: y}, radius)

	for i, v := range m.visible {
		if v {
			m.explored[i] = true
		}
	}
}

// ============================================================================
// Symmetric shadowcasting
// ============================================================================

// quadrant maps (depth, col) in a canonical quadrant onto the map.
type quadrant struct {
	cardinal int // 0 north, 1 east, 2 south, 3 west
	origin   Point
}

func (q quadrant) transform(depth, col int) Point {
	switch q.cardinal {
	case 0:
		return Point{X: q.origin.X + col, Y: q.origin.Y - depth}
	case 1:
		return Point{X: q.origin.X + depth, Y: q.origin.Y + col}
	case 2:
		return Point{X: q.origin.X + col, Y: q.origin.Y + depth}
	default:
		return Point{X: q.origin.X - depth, Y: q.origin.Y + col}
	}
}

// slope is an exact fraction num/den with den > 0.
type slope struct {
	num, den int
}

// row is one depth of a quadrant scan bounded by two slopes.
type row struct {
	depth int
	start slope
	end   slope
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// minCol rounds depth*start half up.
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol rounds depth*end half down.
func (r row) maxCol() int {
	return ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
}

// isSymmetric reports whether col lies within the row's slopes exactly.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

func (m *Map) computeFOV(origin Point, radius int) {
	m.visible[m.index(origin.X, origin.Y)] = true
	r2 := radius * radius

	for cardinal := 0; cardinal < 4; cardinal++ {
		q := quadrant{cardinal: cardinal, origin: origin}

		reveal := func(depth, col int) {
			p := q.transform(depth, col)
			dx, dy := p.X-origin.X, p.Y-origin.Y
			if m.InBounds(p.X, p.Y) && dx*dx+dy*dy <= r2 {
				m.visible[m.index(p.X, p.Y)] = true
			}
		}
		isWall := func(depth, col int) bool {
			p := q.transform(depth, col)
			return !m.IsTransparent(p.X, p.Y)
		}

		var scan func(r row)
		scan = func(r row) {
			if r.depth > radius {
				return
			}
			hasPrev := false
			prevWall := false
			for col := r.minCol(); col <= r.maxCol(); col++ {
				wall := isWall(r.depth, col)
				if wall || r.isSymmetric(col) {
					reveal(r.depth, col)
				}
				if hasPrev && prevWall && !wall {
					r.start = tileSlope(r.depth, col)
				}
				if hasPrev && !prevWall && wall {
					next := r.next()
					next.end = tileSlope(r.depth, col)
					scan(next)
				}
				hasPrev = true
				prevWall = wall
			}
			if hasPrev && !prevWall {
				scan(r.next())
			}
		}

		scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
