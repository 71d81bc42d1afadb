package world

// Field of view is Björn Bergström's recursive shadowcasting: each of the
// eight octants is scanned row by row outward from the origin, and every
// opaque run narrows the slope window for the rows behind it.

// octant maps a sweep offset (dx, dy) to a world offset:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
type octant struct {
	xx, xy, yx, yy int
}

var octants = [8]octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// shadowcaster holds the fixed inputs of one FOV pass.
type shadowcaster struct {
	m      *GridMap
	lit    *BoolGrid
	cx, cy int
	radius int
}

// ComputeFOV lights every cell visible from (ox, oy) within radius and
// records the result in m.Vis. The origin is always visible. A negative or
// zero radius lights only the origin.
func ComputeFOV(m *GridMap, ox, oy, radius int) {
	lit := NewBoolGrid(m.Width, m.Height)
	if m.InBounds(ox, oy) {
		lit.Set(ox, oy, true)
		sc := &shadowcaster{m: m, lit: lit, cx: ox, cy: oy, radius: radius}
		for _, o := range octants {
			sc.scan(o, 1, 1.0, 0.0)
		}
	}
	m.Vis.Observe(lit)
}

// scan lights rows row..radius of one octant between slopes start and end,
// recursing past each opaque run.
func (sc *shadowcaster) scan(o octant, row int, start, end float64) {
	if start < end {
		return
	}
	radiusSq := sc.radius * sc.radius
	newStart := start

	for j := row; j <= sc.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := sc.cx + dx*o.xx + dy*o.xy
			wy := sc.cy + dx*o.yx + dy*o.yy

			// Slopes through the cell's far and near corners.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy < radiusSq {
				sc.lit.Set(wx, wy, true)
			}

			opaque := !sc.m.IsTransparent(wx, wy)
			switch {
			case blocked && opaque:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case opaque && j < sc.radius:
				blocked = true
				sc.scan(o, j+1, start, lSlope)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
