package world

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// CostFunc returns the cost of entering p, or 0 if p cannot be entered.
type CostFunc func(p Point) int

// WalkableCost allows every walkable tile at unit cost.
func (m *Map) WalkableCost(p Point) int {
	if m.IsWalkable(p.X, p.Y) {
		return 1
	}
	return 0
}

var neighbors = [...]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type pathNode struct {
	p        Point
	priority int
}

// FindPath returns the cheapest 8-connected path from start to goal,
// excluding start and including goal, or nil if the goal is unreachable.
// The goal is always enterable so callers can path onto an occupied tile.
func (m *Map) FindPath(start, goal Point, cost CostFunc) []Point {
	if start == goal || !m.InBounds(goal.X, goal.Y) {
		return nil
	}

	open := heap.New[pathNode](func(a, b pathNode) bool { return a.priority < b.priority })
	closed := mapset.New[Point]()
	cameFrom := map[Point]Point{}
	gScore := map[Point]int{start: 0}
	open.Push(pathNode{p: start})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.p == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if closed.Has(cur.p) {
			continue
		}
		closed.Put(cur.p)

		for _, d := range neighbors {
			next := Point{X: cur.p.X + d.X, Y: cur.p.Y + d.Y}
			if !m.InBounds(next.X, next.Y) || closed.Has(next) {
				continue
			}
			step := cost(next)
			if next == goal {
				step = max(step, 1)
			}
			if step <= 0 {
				continue
			}
			g := gScore[cur.p] + step
			if old, ok := gScore[next]; ok && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur.p
			open.Push(pathNode{p: next, priority: g + chebyshev(next, goal)})
		}
	}
	return nil
}

func reconstruct(cameFrom map[Point]Point, start, goal Point) []Point {
	var path []Point
	for p := goal; p != start; p = cameFrom[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
