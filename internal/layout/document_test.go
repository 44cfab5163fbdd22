package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobapply-server/internal/common/logger"
	"jobapply-server/internal/models"
)

func testApplication() *models.Application {
	return &models.Application{
		ID:       "APP-20260115093000-a1b2c3d4",
		Position: "ช่างเทคนิค / Technician",
		PersonalInfo: models.PersonalInfo{
			FullNameLocal: "สมชาย ใจดี",
			FullNameLatin: "Somchai Jaidee",
			Gender:        "ชาย",
			NationalID:    "1234567890123",
			Phone:         "0812345678",
			Email:         "somchai@example.com",
			Address:       models.Address{FullText: "99/1 หมู่ 4", Province: "ชลบุรี", PostalCode: "20000"},
		},
		Education: models.Education{
			Bachelor: &models.EducationEntry{SchoolName: "มหาวิทยาลัยบูรพา", Major: "วิศวกรรมไฟฟ้า", GraduationYear: "2562"},
			Used:     "ปริญญาตรี วิศวกรรมไฟฟ้า",
		},
		WorkExperience: []models.WorkExperience{
			{Company: "Acme Co", Position: "Technician", StartDate: "2020", EndDate: "2023", ReasonForLeaving: "relocated"},
		},
		AdditionalInfo: models.AdditionalInfo{
			ExpectedSalary:      "18000",
			SpecialSkills:       "PLC, เชื่อมโลหะ",
			HasMedicalCondition: "ไม่มี",
		},
		SubmittedAt: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
		Status:      models.StatusPending,
	}
}

func newTestRenderer(s *fakeSurface) *Renderer {
	factory := func(*Theme) (Surface, error) { return s, nil }
	return NewRenderer(DefaultTheme(), "Test Company Ltd.", factory, logger.NewNoOpLogger())
}

func TestRenderer_SinglePageDocument(t *testing.T) {
	s := newFakeSurface()
	r := newTestRenderer(s)

	result, err := r.Render(testApplication(), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)
	assert.NotEmpty(t, result.Document)

	// fixed section order
	for _, title := range []string{SectionPersonal, SectionEducation, SectionWork, SectionAdditional} {
		assert.True(t, s.containsText(title), "missing section header %q", title)
	}
	assert.True(t, s.containsText("สมชาย ใจดี"))
	assert.True(t, s.containsText(FooterPageWord), "footer must be drawn on the last page")
}

func TestRenderer_EmptySectionsStillPresent(t *testing.T) {
	s := newFakeSurface()
	r := newTestRenderer(s)

	app := testApplication()
	app.WorkExperience = nil
	app.AdditionalInfo = models.AdditionalInfo{}

	_, err := r.Render(app, nil)

	require.NoError(t, err)
	assert.True(t, s.containsText(SectionWork))
	assert.True(t, s.containsText(SectionAdditional))
	assert.True(t, s.containsText(PlaceholderNoData))
}

func TestRenderer_LongContentSpillsToMorePages(t *testing.T) {
	s := newFakeSurface()
	r := newTestRenderer(s)

	app := testApplication()
	app.WorkExperience = []models.WorkExperience{
		{Company: "Acme Co", Position: "Technician", ReasonForLeaving: strings.Repeat("moved ", 200)},
		{Company: "Beta Ltd", Position: "Operator", ReasonForLeaving: strings.Repeat("closed ", 200)},
		{Company: "Gamma Inc", Position: "Supervisor", ReasonForLeaving: strings.Repeat("growth ", 200)},
	}

	result, err := r.Render(app, nil)

	require.NoError(t, err)
	assert.Greater(t, result.Pages, 1)

	// one footer per page
	footers := 0
	for _, txt := range s.texts {
		if strings.Contains(txt.text, FooterPageWord) {
			footers++
		}
	}
	assert.Equal(t, result.Pages, footers)
}

func TestRenderer_FactoryErrorProducesNoDocument(t *testing.T) {
	wantErr := assert.AnError
	factory := func(*Theme) (Surface, error) { return nil, wantErr }
	r := NewRenderer(DefaultTheme(), "Test Company Ltd.", factory, logger.NewNoOpLogger())

	result, err := r.Render(testApplication(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, wantErr)
}
