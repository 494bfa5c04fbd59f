package pdf

// BoundingBox is an axis-aligned rectangle in top-down page coordinates:
// Y0 is the top edge, Y1 the bottom edge.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Area returns the area of the bounding box
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// ContainsWithin checks if a point is within the bounding box expanded
// by tol on every side.
func (b BoundingBox) ContainsWithin(x, y, tol float64) bool {
	return x >= b.X0-tol && x <= b.X1+tol && y >= b.Y0-tol && y <= b.Y1+tol
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Metadata represents PDF document metadata
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// CharObject represents a positioned character on a page
type CharObject struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Width    float64
	Height   float64
}

// GetBBox returns the character's bounding box
func (c CharObject) GetBBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// LineObject represents a ruled line on a page
type LineObject struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// GetBBox returns the line's bounding box
func (l LineObject) GetBBox() BoundingBox {
	return BoundingBox{
		X0: min(l.X0, l.X1),
		Y0: min(l.Y0, l.Y1),
		X1: max(l.X0, l.X1),
		Y1: max(l.Y0, l.Y1),
	}
}

// RectObject represents a filled or stroked rectangle on a page
type RectObject struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// GetBBox returns the rectangle's bounding box
func (r RectObject) GetBBox() BoundingBox {
	return BoundingBox{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

// Objects is the collection of geometric objects extracted from one page
type Objects struct {
	Chars []CharObject
	Lines []LineObject
	Rects []RectObject
}

// Word is a positioned text token assembled from adjacent characters
type Word struct {
	Text       string
	X0         float64
	Y0         float64 // top
	X1         float64
	Y1         float64 // bottom
	Characters []CharObject
}

// GetBBox returns the word's bounding box
func (w Word) GetBBox() BoundingBox {
	return BoundingBox{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}

// Center returns the geometric center of the word
func (w Word) Center() (float64, float64) {
	return (w.X0 + w.X1) / 2, (w.Y0 + w.Y1) / 2
}

// Table is a detected table: the candidate cell boxes plus the overall
// bounds. Cell text is not resolved here; callers assign words to cells.
type Table struct {
	Cells []BoundingBox
	BBox  BoundingBox
}

// Strategy names for table boundary detection, per axis.
const (
	StrategyLines = "lines"
	StrategyText  = "text"
)

// Settings selects the boundary-detection strategy for each table axis.
type Settings struct {
	VerticalStrategy   string // column boundaries: "lines" or "text"
	HorizontalStrategy string // row boundaries: "lines" or "text"
}

// WordExtractionOption modifies word extraction behavior
type WordExtractionOption func(*wordExtractionConfig)

type wordExtractionConfig struct {
	XTolerance float64
	YTolerance float64
}

// WithXTolerance sets the maximum horizontal gap between characters of one word
func WithXTolerance(tol float64) WordExtractionOption {
	return func(c *wordExtractionConfig) {
		c.XTolerance = tol
	}
}

// WithYTolerance sets the vertical tolerance for grouping characters into lines
func WithYTolerance(tol float64) WordExtractionOption {
	return func(c *wordExtractionConfig) {
		c.YTolerance = tol
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
