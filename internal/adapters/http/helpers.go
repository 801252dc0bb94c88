package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/csrf"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/checkin"
	"lifeskills/internal/domain/profile"
	"lifeskills/internal/domain/survey"
	"lifeskills/internal/domain/surveyoffer"
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, checkin.ErrUnknownParticipant),
		errors.Is(err, survey.ErrUnknownCategory),
		errors.Is(err, survey.ErrUnknownActivity),
		errors.Is(err, profile.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, surveyoffer.ErrNoOffer),
		errors.Is(err, profile.ErrNoEditor):
		return http.StatusConflict
	case errors.Is(err, profile.ErrUnknownSection),
		errors.Is(err, session.ErrNoClient):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError sends a client error as plain text and anything else through internalError.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		internalError(w, err)
		return
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err)
	}
}

// actionRequest is the union of every action's fields. Form posts use the same names.
type actionRequest struct {
	ParticipantID string  `json:"participant_id"`
	CategoryID    string  `json:"category_id"`
	ActivityID    string  `json:"activity_id"`
	Text          string  `json:"text"`
	Suggestion    *string `json:"suggestion"`
	Section       string  `json:"section"`
	ItemID        string  `json:"item_id"`
	Color         string  `json:"color"`
}

// decodeAction reads an action from a JSON body or a form post.
// POST: an empty JSON body decodes to the zero request
func decodeAction(r *http.Request) (actionRequest, error) {
	var req actionRequest
	if isJSONBody(r) {
		if err := strictDecode(r, &req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.ParticipantID = r.PostFormValue("participant_id")
	req.CategoryID = r.PostFormValue("category_id")
	req.ActivityID = r.PostFormValue("activity_id")
	req.Text = r.PostFormValue("text")
	req.Section = r.PostFormValue("section")
	req.ItemID = r.PostFormValue("item_id")
	req.Color = r.PostFormValue("color")
	if _, ok := r.PostForm["suggestion"]; ok {
		s := r.PostFormValue("suggestion")
		req.Suggestion = &s
	}
	return req, nil
}

// respondAction redirects browsers with 303 and answers API callers with JSON.
func respondAction(w http.ResponseWriter, r *http.Request, redirect string, payload any) {
	if !isJSONBody(r) && !strings.Contains(r.Header.Get("Accept"), "application/json") {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}
	if payload == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// templateFuncs are shared by every page.
func templateFuncs(r *http.Request) template.FuncMap {
	return template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
		"csrfToken": func() string { return csrf.Token(r) },
		"safeCSS":   func(s string) template.CSS { return template.CSS(s) },
		"add":       func(a, b int) int { return a + b },
	}
}

// renderTemplate parses layout.html plus the page and executes it.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	layoutPath := filepath.Join(a.templatesDir, "layout.html")
	pagePath := filepath.Join(a.templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(templateFuncs(r)).ParseFiles(layoutPath, pagePath)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("render_failed", "template", templateName, "error", err)
	}
}

// renderView writes HTML for browsers and JSON otherwise.
func (a *app) renderView(w http.ResponseWriter, r *http.Request, templateName string, view any) {
	if isHTMLRequest(r) {
		a.renderTemplate(w, r, templateName, view)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
