package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/commonshub/signup/internal/form"
)

// Message templates are kept inline; the whole transactional surface is
// two short emails, not worth a template directory.
var welcomeTmpl = template.Must(template.New("welcome").Parse(`<html><body>
<h1>Welcome to the community{{if .Name}}, {{.Name}}{{end}}!</h1>
<p>Your signup went through. We review new members regularly and will be
in touch with next steps.</p>
<p>In the meantime, say hello on Discord and tell us what you're building.</p>
</body></html>`))

var adminTmpl = template.Must(template.New("admin").Parse(`<html><body>
<h2>New community signup</h2>
<table>
<tr><td>Email</td><td>{{.Email}}</td></tr>
<tr><td>Name</td><td>{{.Name}}</td></tr>
<tr><td>Experience level</td><td>{{.ExperienceLevel}}</td></tr>
<tr><td>Project interest</td><td>{{.ProjectInterest}}</td></tr>
<tr><td>Project details</td><td>{{.ProjectDetails}}</td></tr>
<tr><td>GitHub</td><td>{{.GithubUsername}}</td></tr>
<tr><td>LinkedIn</td><td>{{.LinkedinURL}}</td></tr>
<tr><td>Discord</td><td>{{.DiscordUsername}}</td></tr>
</table>
</body></html>`))

// WelcomeMessage builds the email sent to a freshly signed-up member.
func WelcomeMessage(req form.SignupRequest) (Params, error) {
	var body strings.Builder
	if err := welcomeTmpl.Execute(&body, req); err != nil {
		return Params{}, fmt.Errorf("email: render welcome: %w", err)
	}

	return Params{
		To:       req.Email,
		Subject:  "Welcome to the community",
		BodyHTML: body.String(),
		Tag:      "welcome",
	}, nil
}

// AdminNotification builds the email that tells admins a new member
// signed up, with the full submitted profile.
func AdminNotification(adminEmail string, req form.SignupRequest) (Params, error) {
	var body strings.Builder
	if err := adminTmpl.Execute(&body, req); err != nil {
		return Params{}, fmt.Errorf("email: render admin notification: %w", err)
	}

	return Params{
		To:       adminEmail,
		Subject:  fmt.Sprintf("New signup: %s", req.Email),
		BodyHTML: body.String(),
		Tag:      "admin-notification",
	}, nil
}
