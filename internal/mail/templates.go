// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

type TemplateType string

const (
	InviteTemplate TemplateType = "invite"
	SignupTemplate TemplateType = "signup"
)

// TemplateData carries the dynamic parts of an onboarding email.
type TemplateData struct {
	InviterEmail string
	ActionLink   string
}

var subjects = map[TemplateType]string{
	InviteTemplate: "You have been invited to Una Social",
	SignupTemplate: "Confirm your Una Social registration",
}

var bodies = map[TemplateType]*template.Template{
	InviteTemplate: template.Must(template.New("invite").Parse(`
<h2>You have been invited to Una Social</h2>
{{ if .InviterEmail }}<p>{{ .InviterEmail }} invited you to join Una Social.</p>{{ end }}
<p>Follow the link below to accept the invitation and set your password.</p>
<p><a href="{{ .ActionLink }}">Accept invitation</a></p>
<p>If you were not expecting this invitation, you can ignore this email.</p>
`)),
	SignupTemplate: template.Must(template.New("signup").Parse(`
<h2>Welcome to Una Social</h2>
<p>Follow the link below to confirm your registration.</p>
<p><a href="{{ .ActionLink }}">Confirm registration</a></p>
<p>If you did not register, you can ignore this email.</p>
`)),
}

func render(t TemplateType, data TemplateData) (subject, html string, err error) {
	body, ok := bodies[t]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", t)
	}

	var buf bytes.Buffer
	if err := body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %q template: %w", t, err)
	}

	return subjects[t], buf.String(), nil
}
