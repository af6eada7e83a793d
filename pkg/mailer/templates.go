package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`
<html><body>
<h2>Welcome to {{.Company}}, {{.FirstName}}!</h2>
<p>An account has been created for you. Sign in with your username
<strong>{{.Username}}</strong> to finish joining your team.</p>
</body></html>`))

var deactivatedHTML = template.Must(template.New(TemplateDeactivated).Parse(`
<html><body>
<p>Hi {{.FirstName}},</p>
<p>Your account at {{.Company}} has been deactivated. If you believe this is
a mistake, contact your company administrator.</p>
</body></html>`))

// Render produces subject, text, and HTML bodies for a template job.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	var tpl *template.Template
	switch name {
	case TemplateWelcome:
		subject = "Welcome to your new team"
		text = fmt.Sprintf("Welcome, %v! Sign in with username %v to join your team.", data["FirstName"], data["Username"])
		tpl = welcomeHTML
	case TemplateDeactivated:
		subject = "Your account has been deactivated"
		text = fmt.Sprintf("Hi %v, your account has been deactivated.", data["FirstName"])
		tpl = deactivatedHTML
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
