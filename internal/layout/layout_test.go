package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Surface
// ==========================

// fakeSurface models text with a fixed glyph width so every measurement is
// deterministic: each rune is charWidth wide and every line is lineH tall.
type fakeSurface struct {
	charWidth float64
	lineH     float64

	pages int
	texts []fakeText
	rects int
}

type fakeText struct {
	page int
	x, y float64
	text string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{charWidth: 2, lineH: 5.5, pages: 1}
}

func (f *fakeSurface) lines(text string, maxWidth float64) int {
	w := f.TextWidth(text, Font{})
	if w <= maxWidth {
		return 1
	}
	return int(math.Ceil(w / maxWidth))
}

func (f *fakeSurface) MeasureTextHeight(text string, _ Font, maxWidth float64) float64 {
	return float64(f.lines(text, maxWidth)) * f.lineH
}

func (f *fakeSurface) TextWidth(text string, _ Font) float64 {
	return float64(len([]rune(text))) * f.charWidth
}

func (f *fakeSurface) Text(x, y, maxWidth float64, text string, font Font, _ Color) float64 {
	f.texts = append(f.texts, fakeText{page: f.pages, x: x, y: y, text: text})
	return f.MeasureTextHeight(text, font, maxWidth)
}

func (f *fakeSurface) Rect(_, _, _, _ float64, _ RectStyle)           { f.rects++ }
func (f *fakeSurface) RoundedRect(_, _, _, _, _ float64, _ RectStyle) { f.rects++ }
func (f *fakeSurface) Circle(_, _, _ float64, _ RectStyle)            { f.rects++ }
func (f *fakeSurface) Line(_, _, _, _, _ float64, _ Color)            {}
func (f *fakeSurface) Image(_ []byte, _, _, _, _ float64) error       { return nil }
func (f *fakeSurface) AddPage()                                       { f.pages++ }
func (f *fakeSurface) PageCount() int                                 { return f.pages }
func (f *fakeSurface) Output() ([]byte, error)                        { return []byte("%PDF-test"), nil }

func (f *fakeSurface) textsOnPage(page int) []string {
	var out []string
	for _, t := range f.texts {
		if t.page == page {
			out = append(out, t.text)
		}
	}
	return out
}

func (f *fakeSurface) containsText(substr string) bool {
	for _, t := range f.texts {
		if strings.Contains(t.text, substr) {
			return true
		}
	}
	return false
}

func newTestComposer() (*fakeSurface, *Theme, *Paginator, *Composer) {
	s := newFakeSurface()
	t := DefaultTheme()
	p := NewPaginator(s, t, nil)
	return s, t, p, NewComposer(s, t, p)
}

// ==========================
// Paginator Tests
// ==========================

func TestPaginator_Ensure_ExactFitStays(t *testing.T) {
	s, theme, p, _ := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentBottom() - 5.5, Width: theme.ContentWidth()}
	p.Register(cur)

	broke := p.Ensure(cur, 5.5)

	assert.False(t, broke, "a unit that exactly fills the remaining space must stay")
	assert.Equal(t, 1, s.PageCount())
}

func TestPaginator_Ensure_OverflowBreaks(t *testing.T) {
	s, theme, p, _ := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentBottom() - 5.5, Width: theme.ContentWidth()}
	p.Register(cur)

	broke := p.Ensure(cur, 5.6)

	assert.True(t, broke)
	assert.Equal(t, 2, s.PageCount())
	assert.Equal(t, theme.ContentTop(), cur.Y, "break resets the cursor to the top margin")
}

func TestPaginator_Ensure_OversizedUnitAtTopDoesNotBreak(t *testing.T) {
	s, theme, p, _ := newTestComposer()

	pageCapacity := theme.ContentBottom() - theme.ContentTop()
	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ContentWidth()}
	p.Register(cur)

	broke := p.Ensure(cur, pageCapacity+50)

	assert.False(t, broke, "a unit taller than a page gains nothing from a break at the top")
	assert.Equal(t, 1, s.PageCount(), "no empty page is emitted in front of an oversized unit")
}

func TestPaginator_Break_ResetsAllRegisteredCursors(t *testing.T) {
	_, theme, p, _ := newTestComposer()

	a := &Cursor{Y: 200}
	b := &Cursor{Y: 120}
	p.Register(a)
	p.Register(b)

	p.Break()

	assert.Equal(t, theme.ContentTop(), a.Y)
	assert.Equal(t, theme.ContentTop(), b.Y)
}

func TestPaginator_FooterRunsBeforeEachBreak(t *testing.T) {
	s := newFakeSurface()
	theme := DefaultTheme()

	var footerPages []int
	p := NewPaginator(s, theme, func(page int) { footerPages = append(footerPages, page) })

	p.Break()
	p.Break()
	p.FinishPage()

	assert.Equal(t, []int{1, 2, 3}, footerPages)
}

// ==========================
// Field Tests
// ==========================

func TestComposer_FieldHeight_EmptyValueSkipped(t *testing.T) {
	s, theme, _, c := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ContentWidth()}
	for _, value := range []string{"", "   "} {
		assert.Zero(t, c.FieldHeight(FieldSpec{Label: "Label", Value: value}, cur.Width, false))
		assert.Zero(t, c.RenderField(cur, FieldSpec{Label: "Label", Value: value}, false))
	}
	assert.Empty(t, s.texts, "empty fields must not draw anything")
}

func TestComposer_RenderFieldMatchesFieldHeight(t *testing.T) {
	tests := []struct {
		name    string
		field   FieldSpec
		stacked bool
	}{
		{name: "short inline value", field: FieldSpec{Label: "Phone", Value: "0812345678"}},
		{name: "stacked field", field: FieldSpec{Label: "Skills", Value: "welding"}, stacked: true},
		{name: "wrapping value", field: FieldSpec{Label: "Address", Value: strings.Repeat("x", 300)}},
		{name: "label too long for inline", field: FieldSpec{Label: strings.Repeat("L", 80), Value: "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, theme, _, c := newTestComposer()
			cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ColumnWidth()}

			want := c.FieldHeight(tt.field, cur.Width, tt.stacked)
			got := c.RenderField(cur, tt.field, tt.stacked)

			require.Greater(t, want, 0.0)
			assert.Equal(t, want, got, "rendered height must match the precomputed height")
		})
	}
}

// ==========================
// Record Tests
// ==========================

func TestComposer_RecordHeight_SkipsEmptyFields(t *testing.T) {
	_, theme, _, c := newTestComposer()

	full := Record{Title: "1. Acme", Fields: []FieldSpec{
		{Label: "Company", Value: "Acme"},
		{Label: "Reason", Value: ""},
	}}
	assert.Equal(t,
		c.RecordHeight(Record{Title: "1. Acme", Fields: full.Fields[:1]}, theme.ContentWidth()),
		c.RecordHeight(full, theme.ContentWidth()),
		"empty fields must not add height")
}

func TestComposer_RenderRecordMatchesRecordHeight(t *testing.T) {
	_, theme, _, c := newTestComposer()

	rec := Record{Title: "1. Acme", Fields: []FieldSpec{
		{Label: "Company", Value: "Acme Co"},
		{Label: "Position", Value: "Technician"},
		{Label: "Reason", Value: strings.Repeat("relocated ", 40)},
	}}
	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ContentWidth()}

	want := c.RecordHeight(rec, cur.Width)
	got := c.RenderRecord(cur, rec)

	assert.Equal(t, want, got)
}

func TestComposer_RecordIsAtomicAcrossPages(t *testing.T) {
	s, theme, p, c := newTestComposer()

	rec := Record{Title: "1. Acme", Fields: []FieldSpec{
		{Label: "Company", Value: "Acme Co"},
		{Label: "Position", Value: "Technician"},
	}}
	h := c.RecordHeight(rec, theme.ContentWidth())

	// leave one unit less than the record needs
	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentBottom() - h + 1, Width: theme.ContentWidth()}
	p.Register(cur)
	require.Less(t, p.Remaining(cur), h, "the record must not fit the current page")

	require.True(t, p.Ensure(cur, h), "the record must move to a fresh page, never split")
	assert.GreaterOrEqual(t, p.Remaining(cur), h, "the fresh page has room for the whole record")
	c.RenderRecord(cur, rec)

	assert.Equal(t, 2, s.PageCount())
	assert.Contains(t, s.textsOnPage(2), "1. Acme", "the whole record lands on the new page")
	assert.Equal(t, theme.ContentTop(), cur.Y, "the record is placed at the top margin")
}

// ==========================
// Section Tests
// ==========================

func TestComposer_EmptySectionKeepsHeaderAndPlaceholder(t *testing.T) {
	s, theme, p, c := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ContentWidth()}
	p.Register(cur)

	c.RenderSection(cur, SectionWork, []SectionItem{
		FieldItem("Company", ""),
		RecordItem(Record{Title: "1.", Fields: []FieldSpec{{Label: "Company", Value: ""}}}),
	})

	assert.True(t, s.containsText(SectionWork), "header must always be drawn")
	assert.True(t, s.containsText(PlaceholderNoData), "empty section must show the placeholder")
}

func TestComposer_SectionSkipsEmptyItems(t *testing.T) {
	s, theme, p, c := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: theme.ContentTop(), Width: theme.ContentWidth()}
	p.Register(cur)

	c.RenderSection(cur, SectionAdditional, []SectionItem{
		FieldItem("Salary", "18000"),
		FieldItem("Skills", ""),
	})

	assert.True(t, s.containsText("18000"))
	assert.False(t, s.containsText(PlaceholderNoData))
}

func TestComposer_ColumnsShareOnePageBreak(t *testing.T) {
	s, theme, p, c := newTestComposer()

	cur := &Cursor{X: theme.MarginLeft, Y: 260, Width: theme.ContentWidth()}
	p.Register(cur)

	left := []FieldSpec{
		{Label: "A", Value: "first"},
		{Label: "B", Value: "second"}, // overflows, drives the shared break
	}
	right := []FieldSpec{
		{Label: "C", Value: "third"},
	}

	c.RenderSectionColumns(cur, SectionPersonal, left, right)

	require.Equal(t, 2, s.PageCount())
	page2 := s.textsOnPage(2)
	assert.Contains(t, page2, "second")
	assert.Contains(t, page2, "third", "the break must reset the right column cursor too")
	assert.Greater(t, cur.Y, theme.ContentTop(), "outer cursor resumes below the columns")
}
