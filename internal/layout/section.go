package layout

// SectionItem is one unit inside a section: either a field or a record.
type SectionItem struct {
	Field   *FieldSpec
	Record  *Record
	Stacked bool
}

func FieldItem(label, value string) SectionItem {
	return SectionItem{Field: &FieldSpec{Label: label, Value: value}}
}

func StackedItem(label, value string) SectionItem {
	return SectionItem{Field: &FieldSpec{Label: label, Value: value}, Stacked: true}
}

func RecordItem(r Record) SectionItem {
	return SectionItem{Record: &r}
}

// SectionHeader draws the titled header band and advances the cursor by the
// fixed header height. The paginator is consulted for the header plus one
// line so a header is never orphaned at the bottom of a page.
func (c *Composer) SectionHeader(cur *Cursor, title string) {
	c.p.Ensure(cur, c.t.SectionHeaderHeight+c.t.LineHeight)

	bandH := c.t.SectionHeaderHeight - 2
	c.s.Rect(cur.X, cur.Y, cur.Width, bandH, RectStyle{Fill: true, FillColor: c.t.HeaderFill})
	c.s.Rect(cur.X, cur.Y, 1.2, bandH, RectStyle{Fill: true, FillColor: c.t.Accent})
	c.s.Text(cur.X+3.5, cur.Y+1.2, cur.Width-3.5, title, c.t.HeaderFont(), c.t.Banner)

	cur.Y += c.t.SectionHeaderHeight
}

// Placeholder draws the muted "no data" line. Sections are never omitted:
// an empty section keeps its header and shows this line instead, so the
// document structure does not depend on what was submitted.
func (c *Composer) Placeholder(cur *Cursor) {
	c.p.Ensure(cur, c.t.LineHeight)
	c.s.Text(cur.X+1, cur.Y, cur.Width, PlaceholderNoData, c.t.ValueFont(), c.t.Muted)
	cur.Y += c.t.LineHeight + c.t.FieldGap
}

// RenderSection draws the header, then each item in order, consulting the
// paginator before every unit with its precomputed height. A section with
// zero qualifying items still emits its header and the placeholder line.
func (c *Composer) RenderSection(cur *Cursor, title string, items []SectionItem) {
	c.SectionHeader(cur, title)

	drawn := 0
	for _, it := range items {
		var h float64
		switch {
		case it.Record != nil:
			h = c.RecordHeight(*it.Record, cur.Width)
			if len(it.Record.Fields) > 0 && h <= 2*c.t.CardPadding+c.t.LineHeight {
				// all fields empty: the record does not qualify
				h = 0
			}
		case it.Field != nil:
			h = c.FieldHeight(*it.Field, cur.Width, it.Stacked)
		}
		if h == 0 {
			continue
		}

		c.p.Ensure(cur, h)
		if it.Record != nil {
			c.RenderRecord(cur, *it.Record)
		} else {
			c.RenderField(cur, *it.Field, it.Stacked)
		}
		cur.Y += h + c.t.FieldGap
		drawn++
	}

	if drawn == 0 {
		c.Placeholder(cur)
	}
	cur.Y += c.t.SectionGap
}

// RenderSectionColumns draws field pairs split across two columns under one
// full-width header. Each column owns its cursor and its own pagination
// checks, but a break driven by either column starts a single shared page
// and resets both cursors together.
func (c *Composer) RenderSectionColumns(cur *Cursor, title string, left, right []FieldSpec) {
	c.SectionHeader(cur, title)

	colW := c.t.ColumnWidth()
	lcur := &Cursor{X: cur.X, Y: cur.Y, Width: colW}
	rcur := &Cursor{X: cur.X + colW + c.t.ColumnGap, Y: cur.Y, Width: colW}
	c.p.Register(lcur)
	c.p.Register(rcur)

	drawn := 0
	drawn += c.renderColumn(lcur, left)
	drawn += c.renderColumn(rcur, right)

	c.p.Unregister(lcur)
	c.p.Unregister(rcur)

	if drawn == 0 {
		cur.Y = lcur.Y
		c.Placeholder(cur)
	} else {
		cur.Y = lcur.Y
		if rcur.Y > cur.Y {
			cur.Y = rcur.Y
		}
	}
	cur.Y += c.t.SectionGap
}

func (c *Composer) renderColumn(col *Cursor, fields []FieldSpec) int {
	drawn := 0
	for _, f := range fields {
		h := c.FieldHeight(f, col.Width, false)
		if h == 0 {
			continue
		}
		c.p.Ensure(col, h)
		c.RenderField(col, f, false)
		col.Y += h + c.t.FieldGap
		drawn++
	}
	return drawn
}
