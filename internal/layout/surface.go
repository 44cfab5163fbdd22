// Package layout implements the paginated document layout engine: a
// cursor-based flow layout that places labeled fields, record cards, and
// titled sections onto fixed-size pages, breaking to a new page when a unit
// would overflow. It draws against the Surface primitives only and knows
// nothing about any concrete graphics backend.
package layout

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Font selects a registered font face.
type Font struct {
	Family string
	Style  string // "", "B", "I"
	Size   float64
}

// RectStyle controls how rectangles, rounded rectangles, and circles are
// painted.
type RectStyle struct {
	Fill      bool
	Stroke    bool
	FillColor Color
	LineColor Color
	LineWidth float64
}

// Surface is the drawing backend the engine renders against. Coordinates
// and sizes are in millimetres with the origin at the top-left of the page.
type Surface interface {
	// MeasureTextHeight returns the height the text would consume when
	// soft-wrapped at maxWidth. Empty text measures one line height, which
	// matches what Text draws for an empty string.
	MeasureTextHeight(text string, f Font, maxWidth float64) float64

	// TextWidth returns the unwrapped width of the text.
	TextWidth(text string, f Font) float64

	// Text draws the text wrapped at maxWidth and returns the consumed
	// height.
	Text(x, y, maxWidth float64, text string, f Font, c Color) float64

	Rect(x, y, w, h float64, s RectStyle)
	RoundedRect(x, y, w, h, radius float64, s RectStyle)
	Circle(cx, cy, r float64, s RectStyle)
	Line(x1, y1, x2, y2, width float64, c Color)

	// Image places the encoded image fitted into the given box.
	Image(data []byte, x, y, w, h float64) error

	AddPage()
	PageCount() int

	// Output serializes the finished document.
	Output() ([]byte, error)
}
