// Package web renders the site pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"bestchungsan/internal/labels"
	"bestchungsan/internal/model"
	"bestchungsan/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome    = "home"
	PageRequest = "request"
)

type Pages struct {
	templates map[string]*template.Template
}

// NewPages parses every page together with the shared layout.
func NewPages() (*Pages, error) {
	p := &Pages{templates: make(map[string]*template.Template)}
	for _, name := range []string{PageHome, PageRequest} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (p *Pages) Render(w io.Writer, name string, data any) error {
	t, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render page %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

type HomePage struct {
	Title        string
	ShowHomeLink bool
}

func NewHomePage() HomePage {
	return HomePage{Title: "베스트청산 | 관리비 추심 전문 컨설팅"}
}

// Choice is a select option or checkbox with its current state.
type Choice struct {
	Code    string
	Label   string
	Checked bool
}

type RequestPage struct {
	Title        string
	ShowHomeLink bool

	Form        model.Submission
	ClientTypes []Choice
	Details     []Choice

	State      string
	Message    string
	Alert      string
	Submitting bool
}

func NewRequestPage(sub model.Submission, state report.State, message, alert string, submitting bool) RequestPage {
	clientTypes := labels.ClientTypeOptions()
	types := make([]Choice, 0, len(clientTypes))
	for _, o := range clientTypes {
		types = append(types, Choice{Code: o.Code, Label: o.Label, Checked: o.Code == sub.ClientType})
	}
	detailOptions := labels.UnpaidDetailOptions()
	details := make([]Choice, 0, len(detailOptions))
	for _, o := range detailOptions {
		details = append(details, Choice{Code: o.Code, Label: o.Label, Checked: sub.HasDetail(o.Code)})
	}
	return RequestPage{
		Title:        "관리비 추심 의뢰서 | 베스트청산",
		ShowHomeLink: true,
		Form:         sub,
		ClientTypes:  types,
		Details:      details,
		State:        state.String(),
		Message:      message,
		Alert:        alert,
		Submitting:   submitting,
	}
}
