package layout

import "strings"

// FieldSpec is one label/value pair.
type FieldSpec struct {
	Label string
	Value string
}

// labelGap is the horizontal gap between an inline label and its value.
const labelGap = 1.5

// minInlineValueRatio: when the label leaves less than this share of the
// width for the value, the field falls back to stacked layout.
const minInlineValueRatio = 0.35

// Composer renders fields, records, and sections against a surface,
// accumulating cursor positions. It never decides page breaks itself for
// fields and records; callers consult the Paginator with the precomputed
// heights.
type Composer struct {
	s Surface
	t *Theme
	p *Paginator
}

func NewComposer(s Surface, t *Theme, p *Paginator) *Composer {
	return &Composer{s: s, t: t, p: p}
}

// FieldHeight computes the height RenderField would consume for the given
// width and mode, without drawing. Empty values consume nothing: fields are
// skip-if-empty.
func (c *Composer) FieldHeight(f FieldSpec, width float64, stacked bool) float64 {
	value := strings.TrimSpace(f.Value)
	if value == "" {
		return 0
	}

	if stacked || c.inlineValueWidth(f.Label, width) <= 0 {
		return c.t.LineHeight + c.s.MeasureTextHeight(value, c.t.ValueFont(), width)
	}

	h := c.s.MeasureTextHeight(value, c.t.ValueFont(), c.inlineValueWidth(f.Label, width))
	if h < c.t.LineHeight {
		h = c.t.LineHeight
	}
	return h
}

// RenderField draws the label in an emphasized style followed by the value,
// inline or stacked, and returns the consumed height. A field with an empty
// value is a no-op returning 0. The height always equals what FieldHeight
// reported for the same inputs.
func (c *Composer) RenderField(cur *Cursor, f FieldSpec, stacked bool) float64 {
	value := strings.TrimSpace(f.Value)
	if value == "" {
		return 0
	}

	if stacked || c.inlineValueWidth(f.Label, cur.Width) <= 0 {
		c.s.Text(cur.X, cur.Y, cur.Width, f.Label, c.t.LabelFont(), c.t.Accent)
		vh := c.s.Text(cur.X, cur.Y+c.t.LineHeight, cur.Width, value, c.t.ValueFont(), c.t.Text)
		return c.t.LineHeight + vh
	}

	labelWidth := c.s.TextWidth(f.Label, c.t.LabelFont())
	c.s.Text(cur.X, cur.Y, labelWidth+labelGap, f.Label, c.t.LabelFont(), c.t.Accent)
	vh := c.s.Text(cur.X+labelWidth+labelGap, cur.Y, c.inlineValueWidth(f.Label, cur.Width), value, c.t.ValueFont(), c.t.Text)
	if vh < c.t.LineHeight {
		vh = c.t.LineHeight
	}
	return vh
}

// inlineValueWidth returns the width left for the value next to the label,
// or a non-positive number when the label is too long for inline layout.
func (c *Composer) inlineValueWidth(label string, width float64) float64 {
	remaining := width - c.s.TextWidth(label, c.t.LabelFont()) - labelGap
	if remaining < width*minInlineValueRatio {
		return -1
	}
	return remaining
}
