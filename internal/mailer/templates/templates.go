// Package templates renders the HTML bodies of outbound notification emails
// from templates embedded in the binary.
package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed *.tmpl
var fs embed.FS

// Template names.
const (
	VerifyEmail   = "verify_email"
	ResetPassword = "reset_password"
)

// EmailData carries the fields the email templates render.
type EmailData struct {
	Username  string
	ActionURL string
	ExpiresIn string
}

// RenderHTML loads and renders the template <name>.html.tmpl.
func RenderHTML(name string, data EmailData) (string, error) {
	tpl, err := template.New(name + ".html.tmpl").ParseFS(fs, name+".html.tmpl")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
