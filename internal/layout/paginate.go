package layout

// breakEpsilon absorbs float noise so a unit whose height exactly equals the
// remaining space is placed without a break.
const breakEpsilon = 1e-6

// Cursor is the running position of one column: the next unit is placed at
// (X, Y) within Width. Y only grows until a page break resets it.
type Cursor struct {
	X     float64
	Y     float64
	Width float64
}

// Paginator decides when accumulated content must spill onto a new page.
// All registered column cursors share one physical page stream: a break
// driven by any column emits a single new page and resets every cursor.
type Paginator struct {
	surface Surface
	theme   *Theme
	cursors []*Cursor

	// footer is invoked with the current page number just before the page
	// is finalized, and once more for the last page by the assembler.
	footer func(page int)
}

func NewPaginator(s Surface, t *Theme, footer func(page int)) *Paginator {
	return &Paginator{surface: s, theme: t, footer: footer}
}

// Register adds a column cursor to the shared page stream.
func (p *Paginator) Register(c *Cursor) {
	p.cursors = append(p.cursors, c)
}

// Unregister removes a column cursor, used when a multi-column section ends.
func (p *Paginator) Unregister(c *Cursor) {
	for i, cur := range p.cursors {
		if cur == c {
			p.cursors = append(p.cursors[:i], p.cursors[i+1:]...)
			return
		}
	}
}

// Remaining is the vertical space left for the column on the current page.
func (p *Paginator) Remaining(c *Cursor) float64 {
	return p.theme.ContentBottom() - c.Y
}

// Ensure checks whether a unit of the given height fits below the cursor
// and emits a page break when it does not. Returns true when a break was
// emitted. The check-then-place sequence is strictly sequential; callers
// place the unit immediately after Ensure returns.
//
// A unit taller than a whole page can never fit anywhere: it is placed at
// the top of a page and allowed to overflow. Breaking again would only
// produce an empty page in front of it.
func (p *Paginator) Ensure(c *Cursor, height float64) bool {
	if c.Y+height <= p.theme.ContentBottom()+breakEpsilon {
		return false
	}
	if c.Y <= p.theme.ContentTop()+breakEpsilon {
		return false
	}
	p.Break()
	return true
}

// Break finalizes the current page (footer at its fixed coordinates),
// starts a new page, and resets every registered cursor to the top content
// margin.
func (p *Paginator) Break() {
	if p.footer != nil {
		p.footer(p.surface.PageCount())
	}
	p.surface.AddPage()
	for _, cur := range p.cursors {
		cur.Y = p.theme.ContentTop()
	}
}

// FinishPage draws the footer on the current (last) page without breaking.
func (p *Paginator) FinishPage() {
	if p.footer != nil {
		p.footer(p.surface.PageCount())
	}
}
