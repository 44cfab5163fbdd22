package notify

import (
	"fmt"
	"html/template"
	"strings"

	"jobapply-server/internal/models"
)

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>ใบสมัครงานใหม่ / New Job Application</h2>
  <table cellpadding="4">
    <tr><td><b>รหัสใบสมัคร / Application ID</b></td><td>{{.App.ID}}</td></tr>
    <tr><td><b>ตำแหน่ง / Position</b></td><td>{{.App.Position}}</td></tr>
    <tr><td><b>ชื่อ-นามสกุล / Name</b></td><td>{{.App.PersonalInfo.FullNameLocal}}</td></tr>
    <tr><td><b>โทรศัพท์ / Phone</b></td><td>{{.App.PersonalInfo.Phone}}</td></tr>
    <tr><td><b>อีเมล / Email</b></td><td>{{.App.PersonalInfo.Email}}</td></tr>
    <tr><td><b>ส่งเมื่อ / Submitted</b></td><td>{{.SubmittedAt}}</td></tr>
  </table>
  <p>เอกสารใบสมัครฉบับเต็มอยู่ในไฟล์แนบ / The full application document is attached.</p>
  <p style="color: #888; font-size: 12px;">{{.Company}}</p>
</body>
</html>`))

var applicantTemplate = template.Must(template.New("applicant").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>ได้รับใบสมัครของคุณแล้ว / Application Received</h2>
  <p>เรียนคุณ {{.App.PersonalInfo.FullNameLocal}},</p>
  <p>เราได้รับใบสมัครงานตำแหน่ง <b>{{.App.Position}}</b> ของคุณเรียบร้อยแล้ว
     รหัสใบสมัครของคุณคือ <b>{{.App.ID}}</b></p>
  <p>We have received your application for the position of <b>{{.App.Position}}</b>.
     Your application ID is <b>{{.App.ID}}</b>.</p>
  <p>ทีมงานจะติดต่อกลับหากคุณสมบัติตรงตามที่กำหนด /
     Our team will contact you if your qualifications match.</p>
  <p style="color: #888; font-size: 12px;">{{.Company}} — อีเมลฉบับนี้ส่งโดยอัตโนมัติ / This is an automated email.</p>
</body>
</html>`))

type templateData struct {
	App         *models.Application
	Company     string
	SubmittedAt string
}

func renderAdminBody(app *models.Application, company string) (string, error) {
	return renderTemplate(adminTemplate, app, company)
}

func renderApplicantBody(app *models.Application, company string) (string, error) {
	return renderTemplate(applicantTemplate, app, company)
}

func renderTemplate(t *template.Template, app *models.Application, company string) (string, error) {
	var b strings.Builder
	err := t.Execute(&b, templateData{
		App:         app,
		Company:     company,
		SubmittedAt: app.SubmittedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func adminSubject(app *models.Application) string {
	return fmt.Sprintf("ใบสมัครงานใหม่: %s - %s (%s)",
		app.Position, app.PersonalInfo.FullNameLocal, app.ID)
}

func applicantSubject(app *models.Application, company string) string {
	return fmt.Sprintf("ยืนยันการรับใบสมัคร %s - %s", app.ID, company)
}
