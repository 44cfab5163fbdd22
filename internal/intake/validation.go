package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobapply-server/internal/common/errors"
	"jobapply-server/internal/models"
)

// nationalIDLength is the number of digits in a valid national ID.
const nationalIDLength = 13

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// birthDateLayouts are the accepted birth-date formats for age derivation.
var birthDateLayouts = []string{"2006-01-02", "02/01/2006"}

// Validate checks the submission and builds the immutable Application.
// Each failure class carries its own error code so clients get a stable
// machine-readable kind alongside the human message.
func Validate(sub *Submission) (*models.Application, *errors.StandardError) {
	for _, required := range []string{FieldPosition, FieldFullName, FieldEducationUsed} {
		if sub.Get(required) == "" {
			return nil, errors.NewRequiredFieldMissingError(required)
		}
	}

	nationalID, stdErr := NormalizeNationalID(sub.Get(FieldNationalID))
	if stdErr != nil {
		return nil, stdErr
	}

	email := sub.Get(FieldEmail)
	if email == "" {
		return nil, errors.NewRequiredFieldMissingError(FieldEmail)
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.NewInvalidEmailError(email)
	}

	if sub.Photo == nil {
		return nil, errors.NewPhotoMissingError()
	}

	now := time.Now()
	app := &models.Application{
		ID:       NewApplicationID(now),
		Position: sub.Get(FieldPosition),
		PersonalInfo: models.PersonalInfo{
			FullNameLocal: sub.Get(FieldFullName),
			FullNameLatin: sub.Get(FieldFullNameLatin),
			Gender:        sub.Get(FieldGender),
			BirthDate:     sub.Get(FieldBirthDate),
			Age:           deriveAge(sub.Get(FieldAge), sub.Get(FieldBirthDate), now),
			Nationality:   sub.Get(FieldNationality),
			Ethnicity:     sub.Get(FieldEthnicity),
			Religion:      sub.Get(FieldReligion),
			NationalID:    nationalID,
			Phone:         sub.Get(FieldPhone),
			MessagingID:   sub.Get(FieldMessagingID),
			Email:         email,
			Address: models.Address{
				FullText:    sub.Get(FieldAddress),
				Subdistrict: sub.Get(FieldSubdistrict),
				District:    sub.Get(FieldDistrict),
				Province:    sub.Get(FieldProvince),
				PostalCode:  sub.Get(FieldPostalCode),
			},
		},
		Education:      buildEducation(sub),
		WorkExperience: compactWorkExperience(sub),
		AdditionalInfo: models.AdditionalInfo{
			HasMedicalCondition: sub.Get(FieldMedical),
			MedicalDetail:       sub.Get(FieldMedDetail),
			HasCriminalRecord:   sub.Get(FieldCriminal),
			CriminalDetail:      sub.Get(FieldCrimDetail),
			SpecialSkills:       sub.Get(FieldSkills),
			ExpectedSalary:      sub.Get(FieldSalary),
			AvailableStartDate:  sub.Get(FieldStartDate),
			MotivationStatement: sub.Get(FieldMotivation),
		},
		SubmittedAt: now,
		Status:      models.StatusPending,
	}

	return app, nil
}

// NormalizeNationalID strips every non-digit character and requires exactly
// 13 ASCII digits, so "1-2345-67890-12-3" normalizes to "1234567890123".
func NormalizeNationalID(raw string) (string, *errors.StandardError) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != nationalIDLength {
		return "", errors.NewInvalidNationalIDError(len(digits))
	}
	return digits, nil
}

// NewApplicationID generates the opaque submission identifier: time-prefixed
// for readability, uuid-suffixed for uniqueness.
func NewApplicationID(now time.Time) string {
	return fmt.Sprintf("APP-%s-%s", now.Format("20060102150405"), uuid.NewString()[:8])
}

// deriveAge prefers the supplied age and falls back to deriving it from the
// birth date; 0 means unknown and the renderer skips the field.
func deriveAge(ageField, birthDate string, now time.Time) int {
	if age, err := strconv.Atoi(strings.TrimSpace(ageField)); err == nil && age > 0 {
		return age
	}

	birthDate = strings.TrimSpace(birthDate)
	for _, layout := range birthDateLayouts {
		born, err := time.Parse(layout, birthDate)
		if err != nil {
			continue
		}
		age := now.Year() - born.Year()
		if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
			age--
		}
		if age > 0 {
			return age
		}
	}
	return 0
}

func buildEducation(sub *Submission) models.Education {
	edu := models.Education{Used: sub.Get(FieldEducationUsed)}

	for _, slot := range educationSlots {
		entry := &models.EducationEntry{
			SchoolName:     sub.Get("edu_" + slot + "_school"),
			Major:          sub.Get("edu_" + slot + "_major"),
			GraduationYear: sub.Get("edu_" + slot + "_year"),
		}
		if entry.IsEmpty() {
			continue
		}
		switch slot {
		case "secondary":
			edu.Secondary = entry
		case "vocational":
			edu.Vocational = entry
		case "bachelor":
			edu.Bachelor = entry
		case "other":
			edu.Other = entry
		}
	}

	return edu
}

// compactWorkExperience keeps only slots with a company set, preserving
// their order. The result length is always within [0, MaxWorkExperience].
func compactWorkExperience(sub *Submission) []models.WorkExperience {
	entries := make([]models.WorkExperience, 0, workSlots)
	for i := 1; i <= workSlots; i++ {
		prefix := fmt.Sprintf("work%d_", i)
		company := sub.Get(prefix + "company")
		if company == "" {
			continue
		}
		entries = append(entries, models.WorkExperience{
			Company:          company,
			Position:         sub.Get(prefix + "position"),
			StartDate:        sub.Get(prefix + "start"),
			EndDate:          sub.Get(prefix + "end"),
			ReasonForLeaving: sub.Get(prefix + "reason"),
		})
	}
	return entries
}
