package handler

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// page carries everything the result template renders: a status icon, a
// headline, explanatory copy and one action link. AutoRedirect adds a
// meta-refresh to RedirectURL.
type page struct {
	Title        string
	Message      string
	Success      bool
	Icon         string
	RedirectURL  string
	RedirectText string
	AutoRedirect bool
}

// resetFormPage carries the data of the new-password form.
type resetFormPage struct {
	ActionURL string
}

func (h *authHandler) renderPage(w http.ResponseWriter, status int, p page) {
	if p.Icon == "" {
		if p.Success {
			p.Icon = "✓"
		} else {
			p.Icon = "✗"
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, "result.html.tmpl", p); err != nil {
		h.logger.Error().Err(err).Msg("failed to render result page")
	}
}

func (h *authHandler) renderResetForm(w http.ResponseWriter, actionURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := pageTemplates.ExecuteTemplate(w, "reset_form.html.tmpl", resetFormPage{ActionURL: actionURL}); err != nil {
		h.logger.Error().Err(err).Msg("failed to render reset form page")
	}
}

// internalErrorPage is the generic failure page for unexpected storage or
// mail-transport errors. Internal detail never reaches the client.
func (h *authHandler) internalErrorPage(w http.ResponseWriter, title, message, redirectURL, redirectText string) {
	h.renderPage(w, http.StatusInternalServerError, page{
		Title:        title,
		Message:      message,
		RedirectURL:  redirectURL,
		RedirectText: redirectText,
	})
}
