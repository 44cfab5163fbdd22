// Package intake parses and validates raw submissions into a typed
// Application. Everything here runs before the layout core is invoked;
// invalid input is rejected with a structured error and never reaches
// rendering.
package intake

// Submission is the raw parsed form: loosely-typed field values plus the
// uploaded files, prior to validation.
type Submission struct {
	Fields map[string]string
	Photo  *File
	Resume *File
}

// File is one uploaded attachment.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Get returns a trimmed field value.
func (s *Submission) Get(key string) string {
	return trim(s.Fields[key])
}

// Form field names accepted by the submit endpoint.
const (
	FieldPosition      = "position"
	FieldFullName      = "full_name"
	FieldFullNameLatin = "full_name_en"
	FieldGender        = "gender"
	FieldBirthDate     = "birth_date"
	FieldAge           = "age"
	FieldNationality   = "nationality"
	FieldEthnicity     = "ethnicity"
	FieldReligion      = "religion"
	FieldNationalID    = "national_id"
	FieldPhone         = "phone"
	FieldMessagingID   = "line_id"
	FieldEmail         = "email"
	FieldAddress       = "address"
	FieldSubdistrict   = "subdistrict"
	FieldDistrict      = "district"
	FieldProvince      = "province"
	FieldPostalCode    = "postal_code"

	FieldEducationUsed = "education_used"

	FieldMedical    = "has_medical_condition"
	FieldMedDetail  = "medical_detail"
	FieldCriminal   = "has_criminal_record"
	FieldCrimDetail = "criminal_detail"
	FieldSkills     = "special_skills"
	FieldSalary     = "expected_salary"
	FieldStartDate  = "available_start_date"
	FieldMotivation = "motivation"

	FilePhoto  = "photo"
	FileResume = "resume"
)

// educationSlots maps the four fixed education slots to their field-name
// prefixes, e.g. edu_bachelor_school / edu_bachelor_major / edu_bachelor_year.
var educationSlots = []string{"secondary", "vocational", "bachelor", "other"}

// workSlots is the fixed number of work-experience slots in the form,
// named work1_company .. work3_reason.
const workSlots = 3
