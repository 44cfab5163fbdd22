package layout

// Fixed bilingual (Thai/English) labels used in the rendered document.
const (
	SectionPersonal   = "ข้อมูลส่วนตัว (Personal Information)"
	SectionEducation  = "ประวัติการศึกษา (Education History)"
	SectionWork       = "ประสบการณ์ทำงาน (Work Experience)"
	SectionAdditional = "ข้อมูลเพิ่มเติม (Additional Information)"

	PlaceholderNoData = "— ไม่มีข้อมูล / No data —"

	LabelFullNameLocal = "ชื่อ-นามสกุล (Full Name):"
	LabelFullNameLatin = "ชื่อภาษาอังกฤษ (Latin Name):"
	LabelGender        = "เพศ (Gender):"
	LabelBirthDate     = "วันเกิด (Birth Date):"
	LabelAge           = "อายุ (Age):"
	LabelNationality   = "สัญชาติ (Nationality):"
	LabelEthnicity     = "เชื้อชาติ (Ethnicity):"
	LabelReligion      = "ศาสนา (Religion):"
	LabelNationalID    = "เลขบัตรประชาชน (National ID):"
	LabelPhone         = "โทรศัพท์ (Phone):"
	LabelMessagingID   = "ไลน์ไอดี (Messaging ID):"
	LabelEmail         = "อีเมล (Email):"
	LabelAddress       = "ที่อยู่ (Address):"
	LabelLocality      = "ตำบล/อำเภอ/จังหวัด (Locality):"

	LabelEduSecondary  = "มัธยมศึกษา (Secondary)"
	LabelEduVocational = "อาชีวศึกษา (Vocational)"
	LabelEduBachelor   = "ปริญญาตรี (Bachelor)"
	LabelEduOther      = "อื่นๆ (Other)"
	LabelSchoolName    = "สถานศึกษา (School):"
	LabelMajor         = "สาขา (Major):"
	LabelGradYear      = "ปีที่จบ (Graduation Year):"
	LabelEduUsed       = "วุฒิที่ใช้สมัคร (Credential Used):"

	LabelCompany  = "บริษัท (Company):"
	LabelPosition = "ตำแหน่ง (Position):"
	LabelDuration = "ระยะเวลา (Duration):"
	LabelReason   = "เหตุผลที่ออก (Reason for Leaving):"

	LabelMedical    = "โรคประจำตัว (Medical Condition):"
	LabelMedDetail  = "รายละเอียดโรค (Medical Detail):"
	LabelCriminal   = "ประวัติอาชญากรรม (Criminal Record):"
	LabelCrimDetail = "รายละเอียดคดี (Criminal Detail):"
	LabelSkills     = "ความสามารถพิเศษ (Special Skills):"
	LabelSalary     = "เงินเดือนที่คาดหวัง (Expected Salary):"
	LabelStartDate  = "วันที่เริ่มงานได้ (Available Start Date):"
	LabelMotivation = "เหตุผลที่สมัคร (Motivation):"

	FooterPageWord = "หน้า (Page)"
)
