// internal/models/application.go
package models

import "time"

// ApplicationStatus is the lifecycle tag on an Application. The service has
// no transition logic; every application is created pending and handed off.
type ApplicationStatus string

const StatusPending ApplicationStatus = "pending"

// MaxWorkExperience is the fixed number of work-experience slots in the
// submission form.
const MaxWorkExperience = 3

// Application is the aggregate constructed once by intake and handed by
// value into the renderer and the notifier. Nothing is persisted.
type Application struct {
	ID             string            `json:"id"`
	Position       string            `json:"position"`
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Education      Education         `json:"education"`
	WorkExperience []WorkExperience  `json:"workExperience"`
	AdditionalInfo AdditionalInfo    `json:"additionalInfo"`
	SubmittedAt    time.Time         `json:"submittedAt"`
	Status         ApplicationStatus `json:"status"`
}

type PersonalInfo struct {
	FullNameLocal string  `json:"fullNameLocal"`
	FullNameLatin string  `json:"fullNameLatin,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	BirthDate     string  `json:"birthDate,omitempty"`
	Age           int     `json:"age,omitempty"`
	Nationality   string  `json:"nationality,omitempty"`
	Ethnicity     string  `json:"ethnicity,omitempty"`
	Religion      string  `json:"religion,omitempty"`
	NationalID    string  `json:"nationalId"`
	Phone         string  `json:"phone,omitempty"`
	MessagingID   string  `json:"messagingId,omitempty"`
	Email         string  `json:"email"`
	Address       Address `json:"address"`
}

type Address struct {
	FullText    string `json:"fullText,omitempty"`
	Subdistrict string `json:"subdistrict,omitempty"`
	District    string `json:"district,omitempty"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// Education holds the four fixed credential slots plus the required
// statement of which credential the applicant is using.
type Education struct {
	Secondary  *EducationEntry `json:"secondary,omitempty"`
	Vocational *EducationEntry `json:"vocational,omitempty"`
	Bachelor   *EducationEntry `json:"bachelor,omitempty"`
	Other      *EducationEntry `json:"other,omitempty"`
	Used       string          `json:"educationUsed"`
}

type EducationEntry struct {
	SchoolName     string `json:"schoolName,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
}

// IsEmpty reports whether the entry carries no data at all.
func (e *EducationEntry) IsEmpty() bool {
	return e == nil || (e.SchoolName == "" && e.Major == "" && e.GraduationYear == "")
}

// WorkExperience is one employment entry. An entry counts only when the
// company is set; intake compacts the fixed slots down to the populated ones.
type WorkExperience struct {
	Company          string `json:"company"`
	Position         string `json:"position,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	ReasonForLeaving string `json:"reasonForLeaving,omitempty"`
}

type AdditionalInfo struct {
	HasMedicalCondition string `json:"hasMedicalCondition,omitempty"`
	MedicalDetail       string `json:"medicalDetail,omitempty"`
	HasCriminalRecord   string `json:"hasCriminalRecord,omitempty"`
	CriminalDetail      string `json:"criminalDetail,omitempty"`
	SpecialSkills       string `json:"specialSkills,omitempty"`
	ExpectedSalary      string `json:"expectedSalary,omitempty"`
	AvailableStartDate  string `json:"availableStartDate,omitempty"`
	MotivationStatement string `json:"motivationStatement,omitempty"`
}
