package layout

import (
	"fmt"
	"strconv"
	"strings"

	"jobapply-server/internal/common/errors"
	"jobapply-server/internal/common/logger"
	"jobapply-server/internal/models"
)

// SurfaceFactory builds a fresh drawing surface for one render. It acquires
// every render-time resource (fonts) up front: a factory error means no page
// was started and no partial document can leak out.
type SurfaceFactory func(t *Theme) (Surface, error)

// Result is a finished document.
type Result struct {
	Document []byte
	Pages    int
}

// Renderer assembles the whole application document: banner, photo slot,
// the four sections in fixed order, and a footer on every page.
type Renderer struct {
	theme      *Theme
	company    string
	newSurface SurfaceFactory
	log        logger.Logger
}

func NewRenderer(theme *Theme, company string, factory SurfaceFactory, log logger.Logger) *Renderer {
	return &Renderer{
		theme:      theme,
		company:    company,
		newSurface: factory,
		log:        log,
	}
}

// Render lays the application out into a document. The sequence is fixed:
// banner, photo, divider, personal information, education history, work
// experience, additional information. The render runs to completion or
// fails atomically; the only shared state it touches is the surface
// factory's resource cache.
func (r *Renderer) Render(app *models.Application, photo []byte) (*Result, error) {
	t := r.theme

	s, err := r.newSurface(t)
	if err != nil {
		return nil, err
	}
	s.AddPage()

	footer := func(page int) {
		r.drawFooter(s, app, page)
	}
	p := NewPaginator(s, t, footer)
	c := NewComposer(s, t, p)

	cur := &Cursor{X: t.MarginLeft, Y: t.MarginTop, Width: t.ContentWidth()}
	p.Register(cur)

	r.drawBanner(s, app, photo)
	cur.Y = t.BannerHeight + 6

	s.Line(t.MarginLeft, cur.Y-3, t.PageWidth-t.MarginRight, cur.Y-3, 0.4, t.Accent)

	left, right := personalColumns(app)
	c.RenderSectionColumns(cur, SectionPersonal, left, right)
	c.RenderSection(cur, SectionEducation, educationItems(app))
	c.RenderSection(cur, SectionWork, workItems(app))
	c.RenderSection(cur, SectionAdditional, additionalItems(app))

	p.FinishPage()

	out, err := s.Output()
	if err != nil {
		return nil, errors.NewRenderFailedError(err)
	}
	return &Result{Document: out, Pages: s.PageCount()}, nil
}

func (r *Renderer) drawBanner(s Surface, app *models.Application, photo []byte) {
	t := r.theme

	s.Rect(0, 0, t.PageWidth, t.BannerHeight, RectStyle{Fill: true, FillColor: t.Banner})

	textW := t.PageWidth - t.MarginLeft - t.MarginRight - t.PhotoWidth - 6
	s.Text(t.MarginLeft, 7, textW, app.Position, t.TitleFont(), t.OnBanner)
	s.Text(t.MarginLeft, 16, textW, app.PersonalInfo.FullNameLocal,
		Font{Family: t.FontFamily, Size: t.HeaderSize}, t.OnBanner)
	meta := fmt.Sprintf("%s  •  %s", app.ID, app.SubmittedAt.Format("02/01/2006 15:04"))
	s.Text(t.MarginLeft, 23, textW, meta, t.FooterFont(), t.OnBanner)

	if len(photo) == 0 {
		return
	}
	px := t.PageWidth - t.MarginRight - t.PhotoWidth
	py := (t.BannerHeight - t.PhotoHeight) / 2
	s.RoundedRect(px-1, py-1, t.PhotoWidth+2, t.PhotoHeight+2, 1, RectStyle{
		Fill:      true,
		FillColor: t.OnBanner,
	})
	if err := s.Image(photo, px, py, t.PhotoWidth, t.PhotoHeight); err != nil {
		// a corrupt photo degrades gracefully, the document is still produced
		r.log.Warn("skipping applicant photo", map[string]interface{}{
			"applicationId": app.ID,
			"error":         err.Error(),
		})
	}
}

// drawFooter paints the footer band at its fixed page coordinates,
// independent of the cursor.
func (r *Renderer) drawFooter(s Surface, app *models.Application, page int) {
	t := r.theme
	y := t.PageHeight - t.MarginBottom - t.FooterReserve + 2.5

	s.Line(t.MarginLeft, y-1.5, t.PageWidth-t.MarginRight, y-1.5, 0.2, t.CardBorder)
	s.Text(t.MarginLeft, y, t.ContentWidth()/2, r.company, t.FooterFont(), t.Muted)

	pageText := fmt.Sprintf("%s %d  •  %s", FooterPageWord, page, app.ID)
	pw := s.TextWidth(pageText, t.FooterFont())
	s.Text(t.PageWidth-t.MarginRight-pw, y, pw+2, pageText, t.FooterFont(), t.Muted)
}

func personalColumns(app *models.Application) ([]FieldSpec, []FieldSpec) {
	pi := app.PersonalInfo

	age := ""
	if pi.Age > 0 {
		age = strconv.Itoa(pi.Age)
	}

	left := []FieldSpec{
		{Label: LabelFullNameLocal, Value: pi.FullNameLocal},
		{Label: LabelFullNameLatin, Value: pi.FullNameLatin},
		{Label: LabelGender, Value: pi.Gender},
		{Label: LabelBirthDate, Value: pi.BirthDate},
		{Label: LabelAge, Value: age},
		{Label: LabelNationality, Value: pi.Nationality},
		{Label: LabelEthnicity, Value: pi.Ethnicity},
	}
	right := []FieldSpec{
		{Label: LabelReligion, Value: pi.Religion},
		{Label: LabelNationalID, Value: pi.NationalID},
		{Label: LabelPhone, Value: pi.Phone},
		{Label: LabelMessagingID, Value: pi.MessagingID},
		{Label: LabelEmail, Value: pi.Email},
		{Label: LabelAddress, Value: pi.Address.FullText},
		{Label: LabelLocality, Value: localityLine(pi.Address)},
	}
	return left, right
}

func localityLine(a models.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Subdistrict, a.District, a.Province, a.PostalCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func educationItems(app *models.Application) []SectionItem {
	slots := []struct {
		title string
		entry *models.EducationEntry
	}{
		{LabelEduSecondary, app.Education.Secondary},
		{LabelEduVocational, app.Education.Vocational},
		{LabelEduBachelor, app.Education.Bachelor},
		{LabelEduOther, app.Education.Other},
	}

	items := make([]SectionItem, 0, len(slots)+1)
	for _, slot := range slots {
		if slot.entry.IsEmpty() {
			continue
		}
		items = append(items, RecordItem(Record{
			Title: slot.title,
			Fields: []FieldSpec{
				{Label: LabelSchoolName, Value: slot.entry.SchoolName},
				{Label: LabelMajor, Value: slot.entry.Major},
				{Label: LabelGradYear, Value: slot.entry.GraduationYear},
			},
		}))
	}
	items = append(items, StackedItem(LabelEduUsed, app.Education.Used))
	return items
}

func workItems(app *models.Application) []SectionItem {
	items := make([]SectionItem, 0, len(app.WorkExperience))
	for i, exp := range app.WorkExperience {
		items = append(items, RecordItem(Record{
			Title: fmt.Sprintf("%d. %s", i+1, exp.Company),
			Fields: []FieldSpec{
				{Label: LabelCompany, Value: exp.Company},
				{Label: LabelPosition, Value: exp.Position},
				{Label: LabelDuration, Value: durationLine(exp.StartDate, exp.EndDate)},
				{Label: LabelReason, Value: exp.ReasonForLeaving},
			},
		}))
	}
	return items
}

func durationLine(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func additionalItems(app *models.Application) []SectionItem {
	ai := app.AdditionalInfo
	return []SectionItem{
		FieldItem(LabelMedical, ai.HasMedicalCondition),
		FieldItem(LabelMedDetail, ai.MedicalDetail),
		FieldItem(LabelCriminal, ai.HasCriminalRecord),
		FieldItem(LabelCrimDetail, ai.CriminalDetail),
		StackedItem(LabelSkills, ai.SpecialSkills),
		FieldItem(LabelSalary, ai.ExpectedSalary),
		FieldItem(LabelStartDate, ai.AvailableStartDate),
		StackedItem(LabelMotivation, ai.MotivationStatement),
	}
}
