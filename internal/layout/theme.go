package layout

// Theme carries the visual constants of a document: page geometry, fonts,
// colors, and spacing. It is injected into the engine so layout variants are
// configuration, not code.
type Theme struct {
	// Page geometry in millimetres.
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// FooterReserve is the band above the bottom margin kept free for the
	// per-page footer.
	FooterReserve float64

	ColumnGap float64

	FontFamily string
	TitleSize  float64
	HeaderSize float64
	LabelSize  float64
	ValueSize  float64
	FooterSize float64

	// LineHeight is the height of one text line at ValueSize.
	LineHeight float64

	FieldGap            float64
	CardPadding         float64
	CardRadius          float64
	SectionHeaderHeight float64
	SectionGap          float64

	BannerHeight float64
	PhotoWidth   float64
	PhotoHeight  float64

	Banner     Color
	OnBanner   Color
	Accent     Color
	Text       Color
	Muted      Color
	CardBorder Color
	CardFill   Color
	HeaderFill Color
}

// DefaultTheme returns the standard A4 portrait theme.
func DefaultTheme() *Theme {
	return &Theme{
		PageWidth:    210,
		PageHeight:   297,
		MarginLeft:   15,
		MarginRight:  15,
		MarginTop:    15,
		MarginBottom: 12,

		FooterReserve: 8,
		ColumnGap:     8,

		FontFamily: "Helvetica",
		TitleSize:  18,
		HeaderSize: 12,
		LabelSize:  9,
		ValueSize:  10,
		FooterSize: 8,

		LineHeight: 5.5,

		FieldGap:            2,
		CardPadding:         3.5,
		CardRadius:          1.5,
		SectionHeaderHeight: 9,
		SectionGap:          5,

		BannerHeight: 34,
		PhotoWidth:   26,
		PhotoHeight:  30,

		Banner:     Color{R: 31, G: 58, B: 95},
		OnBanner:   Color{R: 255, G: 255, B: 255},
		Accent:     Color{R: 41, G: 98, B: 155},
		Text:       Color{R: 33, G: 33, B: 33},
		Muted:      Color{R: 130, G: 130, B: 130},
		CardBorder: Color{R: 205, G: 212, B: 222},
		CardFill:   Color{R: 247, G: 249, B: 252},
		HeaderFill: Color{R: 232, G: 238, B: 246},
	}
}

// ContentWidth is the usable width between the side margins.
func (t *Theme) ContentWidth() float64 {
	return t.PageWidth - t.MarginLeft - t.MarginRight
}

// ContentTop is where the cursor starts on a fresh page.
func (t *Theme) ContentTop() float64 {
	return t.MarginTop
}

// ContentBottom is the safe content limit: page height minus the bottom
// margin and the footer reserve.
func (t *Theme) ContentBottom() float64 {
	return t.PageHeight - t.MarginBottom - t.FooterReserve
}

// ColumnWidth is the width of one column in a two-column section.
func (t *Theme) ColumnWidth() float64 {
	return (t.ContentWidth() - t.ColumnGap) / 2
}

func (t *Theme) TitleFont() Font {
	return Font{Family: t.FontFamily, Style: "B", Size: t.TitleSize}
}

func (t *Theme) HeaderFont() Font {
	return Font{Family: t.FontFamily, Style: "B", Size: t.HeaderSize}
}

func (t *Theme) LabelFont() Font {
	return Font{Family: t.FontFamily, Style: "B", Size: t.LabelSize}
}

func (t *Theme) ValueFont() Font {
	return Font{Family: t.FontFamily, Size: t.ValueSize}
}

func (t *Theme) FooterFont() Font {
	return Font{Family: t.FontFamily, Size: t.FooterSize}
}
