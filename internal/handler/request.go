package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"bestchungsan/internal/form"
	"bestchungsan/internal/labels"
	"bestchungsan/internal/model"
	"bestchungsan/internal/service/session"
	"bestchungsan/internal/web"
)

const (
	sessionCookie = "bcs_session"
	requestPath   = "/request"
)

// Fields the request page posts, besides the detail checkboxes.
var requestFields = []string{
	"clientName",
	"clientPhone",
	"clientEmail",
	"apartmentName",
	"clientType",
	"unpaidPeriod",
	"unpaidAmount",
	"privacyConsent",
}

type directSender interface {
	Send(ctx context.Context, sub model.Submission) error
}

// RequestHandler serves the lead form and drives the direct channel.
type RequestHandler struct {
	store  *session.Store
	sender directSender
	pages  *web.Pages
	logger *zap.Logger
}

func NewRequestHandler(store *session.Store, sender directSender, pages *web.Pages, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{store: store, sender: sender, pages: pages, logger: logger}
}

func (h *RequestHandler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess := h.store.GetOrCreate(id)
	if sess.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// Show renders the form with the session's data and last result.
func (h *RequestHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	v := sess.View()
	page := web.NewRequestPage(v.Submission, v.State, v.Message, sess.TakeAlert(), v.Submitting)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Render(w, web.PageRequest, page); err != nil {
		h.logger.Error("error rendering request page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Submit stores the posted fields, passes the consent gate, sends once and
// redirects back to the form, which then shows the outcome.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	defer http.Redirect(w, r, requestPath, http.StatusSeeOther)

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("error parsing request form", zap.Error(err))
		return
	}
	if err := sess.Update(func(f *form.Holder) error { return applyForm(f, r.PostForm) }); err != nil {
		h.logger.Error("error updating form", zap.Error(err))
		return
	}

	sub, err := sess.Begin()
	switch {
	case errors.Is(err, session.ErrNoConsent):
		return
	case errors.Is(err, session.ErrInFlight):
		h.logger.Info("submission already in flight", zap.String("session", sess.ID))
		return
	case err != nil:
		h.logger.Error("error starting submission", zap.Error(err))
		return
	}

	sendErr := h.sender.Send(r.Context(), sub)
	if sendErr != nil {
		h.logger.Error("email send failed", zap.Error(sendErr), zap.String("session", sess.ID))
	}
	if err := sess.Finish(sendErr); err != nil {
		h.logger.Error("error finishing submission", zap.Error(err))
	}
}

// applyForm copies posted values into the holder. Unchecked checkboxes are
// absent from a post, so every known detail code is toggled explicitly.
func applyForm(f *form.Holder, values url.Values) error {
	for _, name := range requestFields {
		if err := f.SetField(name, values.Get(name)); err != nil {
			return err
		}
	}
	checked := make(map[string]bool)
	for _, code := range values["unpaidDetails"] {
		checked[code] = true
	}
	for _, o := range labels.UnpaidDetailOptions() {
		f.ToggleDetail(o.Code, checked[o.Code])
	}
	return nil
}
