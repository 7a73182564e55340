package sevenseg

// Logical drawing space of a single digit cell. All segment geometry is
// expressed in these units; hosts scale the composed paths to the target
// surface.
const (
	CellWidth  = 250
	CellHeight = 492

	// segThickness is the bar thickness of every segment; segLength is
	// the long dimension of the canonical outlines.
	segThickness = 46
	segHalf      = segThickness / 2
	segLength    = 204
)

// SegmentRole identifies one of the seven segments of a digit cell.
type SegmentRole int

const (
	SegmentTop SegmentRole = iota
	SegmentTopLeft
	SegmentTopRight
	SegmentBottomLeft
	SegmentBottomRight
	SegmentBottom
	SegmentCenter

	numSegmentRoles
)

// String returns the role name.
func (r SegmentRole) String() string {
	switch r {
	case SegmentTop:
		return "Top"
	case SegmentTopLeft:
		return "TopLeft"
	case SegmentTopRight:
		return "TopRight"
	case SegmentBottomLeft:
		return "BottomLeft"
	case SegmentBottomRight:
		return "BottomRight"
	case SegmentBottom:
		return "Bottom"
	case SegmentCenter:
		return "Center"
	}
	return "Unknown"
}

// chevronOutline is the canonical outline shared by the six outer
// segments, drawn horizontally with 45-degree tips at mid-thickness.
// The list closes back onto its first point.
var chevronOutline = []Point{
	{0, segHalf},
	{segHalf, 0},
	{segLength - segHalf, 0},
	{segLength, segHalf},
	{segLength - segHalf, segThickness},
	{segHalf, segThickness},
	{0, segHalf},
}

// diamondOutline is the canonical outline of the center segment: a
// hexagonal diamond with shallower tips than the outer chevron.
var diamondOutline = []Point{
	{0, segHalf},
	{segThickness, 0},
	{segLength - segThickness, 0},
	{segLength, segHalf},
	{segLength - segThickness, segThickness},
	{segThickness, segThickness},
	{0, segHalf},
}

// segmentPlacement positions one role's outline within the digit cell:
// the canonical outline is rotated by turns quarter-turns about the
// origin, then translated so its bounding-box origin lands on offset.
type segmentPlacement struct {
	turns  int // quarter-turns: 0, 1 (+90), -1 (-90), 2 (180)
	offset Point
}

// placements is the fixed per-role rotation and offset table. Tip points
// of adjacent placements coincide at the four cell corners, so the outer
// segments meet flush there; the offsets must not be adjusted
// independently of the canonical outlines.
var placements = [numSegmentRoles]segmentPlacement{
	SegmentTop:         {0, Point{segHalf, 0}},
	SegmentTopLeft:     {-1, Point{0, segHalf}},
	SegmentTopRight:    {1, Point{CellWidth - segThickness, segHalf}},
	SegmentBottomLeft:  {-1, Point{0, CellHeight - segHalf - segLength}},
	SegmentBottomRight: {1, Point{CellWidth - segThickness, CellHeight - segHalf - segLength}},
	SegmentBottom:      {2, Point{segHalf, CellHeight - segThickness}},
	SegmentCenter:      {0, Point{segHalf, CellHeight/2 - segHalf}},
}

// quarterTurn rotates a point about the origin by the given number of
// quarter-turns. Exact integer-friendly rotation; no trigonometry, so
// coordinates stay bit-exact across roles.
func quarterTurn(p Point, turns int) Point {
	switch ((turns % 4) + 4) % 4 {
	case 1: // +90
		return Point{-p.Y, p.X}
	case 2: // 180
		return Point{-p.X, -p.Y}
	case 3: // -90
		return Point{p.Y, -p.X}
	}
	return p
}

// SegmentPath returns the closed outline for a segment role, positioned
// in the digit cell's 250x492 logical space. It is a pure function of
// the role; unknown roles yield an empty path.
func SegmentPath(role SegmentRole) *Path {
	if role < 0 || role >= numSegmentRoles {
		return NewPath()
	}

	outline := chevronOutline
	if role == SegmentCenter {
		outline = diamondOutline
	}
	pl := placements[role]

	pts := make([]Point, len(outline))
	for i, p := range outline {
		pts[i] = quarterTurn(p, pl.turns)
	}

	// Rotation about the origin moves the bounding-box origin negative
	// on one or both axes depending on the turn direction; re-anchor it
	// onto the role's offset.
	minX, minY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	d := Pt(pl.offset.X-minX, pl.offset.Y-minY)
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}

	return Polygon(pts...)
}
