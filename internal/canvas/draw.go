package canvas

import "fmt"

// editList accumulates edits for one rasterizer call, collapsing repeated
// visits to the same point. All points in one call paint the same cell, so
// keeping the first visit preserves both order and the original old value.
type editList struct {
	canvas *Canvas
	edits  []Edit
	seen   map[Point]struct{}
}

func newEditList(c *Canvas) *editList {
	return &editList{canvas: c, seen: make(map[Point]struct{})}
}

// add records a paint of cell at p. Out-of-bounds points are a programming
// error in the rasterizer and are reported, not clamped.
func (el *editList) add(p Point, cell Cell) error {
	if _, ok := el.seen[p]; ok {
		return nil
	}
	old, err := el.canvas.Get(p)
	if err != nil {
		return err
	}
	el.seen[p] = struct{}{}
	el.edits = append(el.edits, Edit{At: p, Old: old, New: cell})
	return nil
}

// DrawLine rasterizes a straight line from from to to using Bresenham's
// integer algorithm. Both endpoints are always included and repeated calls
// are deterministic. The canvas is not mutated; the ordered edit list is
// returned for command construction.
func (c *Canvas) DrawLine(from, to Point, cell Cell) ([]Edit, error) {
	if !c.Contains(from) {
		return nil, fmt.Errorf("draw line from %s: %w", from, ErrOutOfBounds)
	}
	if !c.Contains(to) {
		return nil, fmt.Errorf("draw line to %s: %w", to, ErrOutOfBounds)
	}

	el := newEditList(c)
	if err := rasterLine(el, from, to, cell); err != nil {
		return nil, err
	}
	return el.edits, nil
}

// rasterLine walks the Bresenham line into el.
func rasterLine(el *editList, from, to Point, cell Cell) error {
	dCol := abs(to.Col - from.Col)
	dRow := -abs(to.Row - from.Row)
	stepCol := 1
	if from.Col > to.Col {
		stepCol = -1
	}
	stepRow := 1
	if from.Row > to.Row {
		stepRow = -1
	}
	err := dCol + dRow

	p := from
	for {
		if addErr := el.add(p, cell); addErr != nil {
			return addErr
		}
		if p.Equals(to) {
			return nil
		}
		e2 := 2 * err
		if e2 >= dRow {
			err += dRow
			p.Col += stepCol
		}
		if e2 <= dCol {
			err += dCol
			p.Row += stepRow
		}
	}
}

// DrawRect rasterizes a rectangle spanning the two corners. Corners are
// normalized min/max per axis before rasterizing. Outline mode draws only
// the four border lines; filled mode paints the full interior.
func (c *Canvas) DrawRect(corner1, corner2 Point, cell Cell, filled bool) ([]Edit, error) {
	if !c.Contains(corner1) {
		return nil, fmt.Errorf("draw rect corner %s: %w", corner1, ErrOutOfBounds)
	}
	if !c.Contains(corner2) {
		return nil, fmt.Errorf("draw rect corner %s: %w", corner2, ErrOutOfBounds)
	}

	top, bottom := minMax(corner1.Row, corner2.Row)
	left, right := minMax(corner1.Col, corner2.Col)

	el := newEditList(c)
	if filled {
		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				if err := el.add(Pt(row, col), cell); err != nil {
					return nil, err
				}
			}
		}
		return el.edits, nil
	}

	corners := [4]Point{Pt(top, left), Pt(top, right), Pt(bottom, right), Pt(bottom, left)}
	for i := range corners {
		if err := rasterLine(el, corners[i], corners[(i+1)%4], cell); err != nil {
			return nil, err
		}
	}
	return el.edits, nil
}

// DrawEllipse rasterizes an ellipse inscribed in the bounding box spanned by
// the two corners. The inside test works in doubled coordinates so odd-sized
// boxes keep an exact center with integer arithmetic only. Outline mode marks
// the first and last inside cell of every row and every column, which keeps
// the outline connected through the steep regions near the poles.
func (c *Canvas) DrawEllipse(corner1, corner2 Point, cell Cell, filled bool) ([]Edit, error) {
	if !c.Contains(corner1) {
		return nil, fmt.Errorf("draw ellipse corner %s: %w", corner1, ErrOutOfBounds)
	}
	if !c.Contains(corner2) {
		return nil, fmt.Errorf("draw ellipse corner %s: %w", corner2, ErrOutOfBounds)
	}

	top, bottom := minMax(corner1.Row, corner2.Row)
	left, right := minMax(corner1.Col, corner2.Col)

	el := newEditList(c)

	// Doubled semi-axes: a cell (row, col) sits at doubled offset
	// (2*row - (top+bottom), 2*col - (left+right)) from the center.
	a := int64(right - left)
	b := int64(bottom - top)
	if a == 0 || b == 0 {
		// Degenerate box collapses to a line.
		if err := rasterLine(el, Pt(top, left), Pt(bottom, right), cell); err != nil {
			return nil, err
		}
		return el.edits, nil
	}

	inside := func(row, col int) bool {
		dy := int64(2*row - (top + bottom))
		dx := int64(2*col - (left + right))
		return dx*dx*b*b+dy*dy*a*a <= a*a*b*b
	}

	if filled {
		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				if !inside(row, col) {
					continue
				}
				if err := el.add(Pt(row, col), cell); err != nil {
					return nil, err
				}
			}
		}
		return el.edits, nil
	}

	// Row extremes.
	for row := top; row <= bottom; row++ {
		first, last := -1, -1
		for col := left; col <= right; col++ {
			if inside(row, col) {
				if first < 0 {
					first = col
				}
				last = col
			}
		}
		if first < 0 {
			continue
		}
		if err := el.add(Pt(row, first), cell); err != nil {
			return nil, err
		}
		if err := el.add(Pt(row, last), cell); err != nil {
			return nil, err
		}
	}

	// Column extremes.
	for col := left; col <= right; col++ {
		first, last := -1, -1
		for row := top; row <= bottom; row++ {
			if inside(row, col) {
				if first < 0 {
					first = row
				}
				last = row
			}
		}
		if first < 0 {
			continue
		}
		if err := el.add(Pt(first, col), cell); err != nil {
			return nil, err
		}
		if err := el.add(Pt(last, col), cell); err != nil {
			return nil, err
		}
	}

	return el.edits, nil
}

// FloodFill computes a 4-connected flood fill from seed, bounded by cells
// that differ from the seed's original cell. Returns an empty edit list if
// the seed already equals the fill cell (the fill would be a no-op). Uses an
// explicit work queue rather than recursion so large regions cannot exhaust
// the stack.
func (c *Canvas) FloodFill(seed Point, cell Cell) ([]Edit, error) {
	origin, err := c.Get(seed)
	if err != nil {
		return nil, fmt.Errorf("flood fill: %w", err)
	}
	if origin.Equals(cell) {
		return nil, nil
	}

	el := newEditList(c)
	queue := []Point{seed}
	visited := map[Point]struct{}{seed: {}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if err := el.add(p, cell); err != nil {
			return nil, err
		}

		neighbors := [4]Point{
			{Row: p.Row - 1, Col: p.Col},
			{Row: p.Row + 1, Col: p.Col},
			{Row: p.Row, Col: p.Col - 1},
			{Row: p.Row, Col: p.Col + 1},
		}
		for _, n := range neighbors {
			if !c.Contains(n) {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			got, getErr := c.Get(n)
			if getErr != nil {
				return nil, getErr
			}
			if !got.Equals(origin) {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return el.edits, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minMax(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}
