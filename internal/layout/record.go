package layout

// Record is a titled, boxed group of fields: one education credential or
// one work-experience entry.
type Record struct {
	Title  string
	Fields []FieldSpec
}

// RecordHeight computes the full height of the card before anything is
// drawn, so the caller can ask the paginator whether the whole unit fits.
// Records are atomic: one that does not fit moves entirely to the next page.
func (c *Composer) RecordHeight(r Record, width float64) float64 {
	inner := width - 2*c.t.CardPadding
	h := 2*c.t.CardPadding + c.t.LineHeight // padding plus title line
	for _, f := range r.Fields {
		fh := c.FieldHeight(f, inner, false)
		if fh > 0 {
			h += c.t.FieldGap + fh
		}
	}
	return h
}

// RenderRecord draws the card at the cursor and returns the consumed
// height, which always equals RecordHeight for the same record and width.
func (c *Composer) RenderRecord(cur *Cursor, r Record) float64 {
	h := c.RecordHeight(r, cur.Width)
	inner := cur.Width - 2*c.t.CardPadding

	c.s.RoundedRect(cur.X, cur.Y, cur.Width, h, c.t.CardRadius, RectStyle{
		Fill:      true,
		Stroke:    true,
		FillColor: c.t.CardFill,
		LineColor: c.t.CardBorder,
		LineWidth: 0.25,
	})

	y := cur.Y + c.t.CardPadding
	c.s.Text(cur.X+c.t.CardPadding, y, inner, r.Title, c.t.LabelFont(), c.t.Accent)
	y += c.t.LineHeight

	for _, f := range r.Fields {
		fieldCur := Cursor{X: cur.X + c.t.CardPadding, Y: y + c.t.FieldGap, Width: inner}
		fh := c.RenderField(&fieldCur, f, false)
		if fh > 0 {
			y += c.t.FieldGap + fh
		}
	}

	return h
}
