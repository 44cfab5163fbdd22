// Package pdf adapts gofpdf to the layout.Surface primitives.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	apperrors "jobapply-server/internal/common/errors"
	"jobapply-server/internal/layout"
)

// lineSpacing converts a font size in points to a line height in mm.
const lineSpacing = 25.4 / 72 * 1.32

// Options selects the font resources for a surface. When FontName is empty
// the built-in Helvetica core font is used (Latin-only rendering).
type Options struct {
	FontName string
	FontPath string
}

// NewFactory returns a layout.SurfaceFactory for the given options.
func NewFactory(opts Options) layout.SurfaceFactory {
	return func(t *layout.Theme) (layout.Surface, error) {
		return NewSurface(t, opts)
	}
}

// Surface implements layout.Surface on a gofpdf document.
type Surface struct {
	fpdf     *gofpdf.Fpdf
	imageSeq int
}

// NewSurface builds a portrait A4 document and registers the configured
// font. Font acquisition happens here, before any page exists, so a missing
// font fails the render without producing partial output.
func NewSurface(t *layout.Theme, opts Options) (*Surface, error) {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetMargins(0, 0, 0)
	f.SetCellMargin(0)
	// the layout paginator owns page breaks
	f.SetAutoPageBreak(false, 0)

	if opts.FontName != "" {
		data, err := AcquireFont(opts.FontName, opts.FontPath)
		if err != nil {
			return nil, apperrors.NewFontUnavailableError(opts.FontName, err)
		}
		for _, style := range []string{"", "B", "I"} {
			f.AddUTF8FontFromBytes(opts.FontName, style, data)
		}
		if f.Err() {
			return nil, apperrors.NewFontUnavailableError(opts.FontName, f.Error())
		}
	}

	return &Surface{fpdf: f}, nil
}

func (s *Surface) setFont(f layout.Font) {
	s.fpdf.SetFont(f.Family, f.Style, f.Size)
}

func lineHeight(f layout.Font) float64 {
	return f.Size * lineSpacing
}

func (s *Surface) MeasureTextHeight(text string, f layout.Font, maxWidth float64) float64 {
	s.setFont(f)
	lines := len(s.fpdf.SplitText(text, maxWidth))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lineHeight(f)
}

func (s *Surface) TextWidth(text string, f layout.Font) float64 {
	s.setFont(f)
	return s.fpdf.GetStringWidth(text)
}

func (s *Surface) Text(x, y, maxWidth float64, text string, f layout.Font, c layout.Color) float64 {
	s.setFont(f)
	s.fpdf.SetTextColor(c.R, c.G, c.B)
	s.fpdf.SetXY(x, y)

	lh := lineHeight(f)
	s.fpdf.MultiCell(maxWidth, lh, text, "", "L", false)

	lines := len(s.fpdf.SplitText(text, maxWidth))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lh
}

func styleStr(st layout.RectStyle) string {
	switch {
	case st.Fill && st.Stroke:
		return "FD"
	case st.Fill:
		return "F"
	default:
		return "D"
	}
}

func (s *Surface) applyRectStyle(st layout.RectStyle) {
	if st.Fill {
		s.fpdf.SetFillColor(st.FillColor.R, st.FillColor.G, st.FillColor.B)
	}
	if st.Stroke {
		s.fpdf.SetDrawColor(st.LineColor.R, st.LineColor.G, st.LineColor.B)
		w := st.LineWidth
		if w <= 0 {
			w = 0.2
		}
		s.fpdf.SetLineWidth(w)
	}
}

func (s *Surface) Rect(x, y, w, h float64, st layout.RectStyle) {
	s.applyRectStyle(st)
	s.fpdf.Rect(x, y, w, h, styleStr(st))
}

func (s *Surface) RoundedRect(x, y, w, h, radius float64, st layout.RectStyle) {
	s.applyRectStyle(st)
	s.fpdf.RoundedRect(x, y, w, h, radius, "1234", styleStr(st))
}

func (s *Surface) Circle(cx, cy, r float64, st layout.RectStyle) {
	s.applyRectStyle(st)
	s.fpdf.Circle(cx, cy, r, styleStr(st))
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c layout.Color) {
	s.fpdf.SetDrawColor(c.R, c.G, c.B)
	s.fpdf.SetLineWidth(width)
	s.fpdf.Line(x1, y1, x2, y2)
}

// Image validates and places an encoded image fitted into the box. The data
// is decoded first: feeding gofpdf a corrupt image would latch its internal
// error state and poison the whole document, while the caller only wants to
// skip the one image.
func (s *Surface) Image(data []byte, x, y, w, h float64) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("image does not decode: %w", err)
	}

	var imgType string
	switch http.DetectContentType(data) {
	case "image/jpeg":
		imgType = "JPG"
	case "image/png":
		imgType = "PNG"
	case "image/gif":
		imgType = "GIF"
	default:
		return fmt.Errorf("unsupported image type")
	}

	s.imageSeq++
	name := fmt.Sprintf("img-%d", s.imageSeq)
	opts := gofpdf.ImageOptions{ImageType: imgType}
	s.fpdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if s.fpdf.Err() {
		return s.fpdf.Error()
	}
	s.fpdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return nil
}

func (s *Surface) AddPage() {
	s.fpdf.AddPage()
}

func (s *Surface) PageCount() int {
	return s.fpdf.PageCount()
}

func (s *Surface) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.fpdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
