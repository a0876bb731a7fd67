package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"bestchungsan/internal/config"
	"bestchungsan/internal/model"
	"bestchungsan/internal/report"
	"bestchungsan/internal/service/direct"
	"bestchungsan/internal/service/relay"
	"bestchungsan/internal/service/session"
	"bestchungsan/internal/web"
	"bestchungsan/pkg/emailjs"
)

type fakeRelay struct {
	got model.Submission
	err error
}

func (f *fakeRelay) Send(_ context.Context, sub model.Submission) (string, error) {
	f.got = sub
	if f.err != nil {
		return "", f.err
	}
	return "id@naver.com", nil
}

// fakeEmailJS answers every send with status and records the params.
type fakeEmailJS struct {
	status int
	calls  int
	params map[string]string
}

func (f *fakeEmailJS) Send(_ context.Context, _, _ string, params map[string]string) (emailjs.Response, error) {
	f.calls++
	f.params = params
	return emailjs.Response{Status: f.status}, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return env
}

func TestSendEmail_Success(t *testing.T) {
	fake := &fakeRelay{}
	h := NewRelayHandler(fake, zaptest.NewLogger(t))

	body := `{"clientName":"홍길동","apartmentName":"행복아파트","debtorUnit":"101동","unpaidDetails":["late_fee"],"hasDocuments":true}`
	rec := httptest.NewRecorder()
	h.SendEmail(rec, httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != relayOK {
		t.Errorf("envelope = %+v", env)
	}
	if fake.got.ClientName != "홍길동" || fake.got.DebtorUnit != "101동" || !fake.got.HasDocuments {
		t.Errorf("decoded submission = %+v", fake.got)
	}
}

func TestSendEmail_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"malformed json", `{"clientName":`, nil},
		{"wrong shape", `{"unpaidDetails":"late_fee"}`, nil},
		{"transport error", `{"clientName":"a"}`, errors.New("535 auth failed")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRelayHandler(&fakeRelay{err: tt.err}, zaptest.NewLogger(t))
			rec := httptest.NewRecorder()
			h.SendEmail(rec, httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(tt.body)))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Message != relayFail {
				t.Errorf("envelope = %+v", env)
			}
		})
	}
}

func TestSendEmail_RelayNotConfigured(t *testing.T) {
	svc := relay.NewService(nil, nil, config.MailConfig{}, zaptest.NewLogger(t))
	h := NewRelayHandler(svc, zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	h.SendEmail(rec, httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(`{"clientName":"a"}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success || env.Message != relayFail {
		t.Errorf("envelope = %+v", env)
	}
}

type formClient struct {
	t       *testing.T
	handler *RequestHandler
	cookie  *http.Cookie
}

func (c *formClient) do(req *http.Request) *httptest.ResponseRecorder {
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	switch req.Method {
	case http.MethodGet:
		c.handler.Show(rec, req)
	case http.MethodPost:
		c.handler.Submit(rec, req)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return rec
}

func (c *formClient) post(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/request", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *formClient) get() string {
	return c.do(httptest.NewRequest(http.MethodGet, "/request", nil)).Body.String()
}

func newFormClient(t *testing.T, status int) (*formClient, *fakeEmailJS, *session.Store) {
	t.Helper()
	pages, err := web.NewPages()
	if err != nil {
		t.Fatal(err)
	}
	api := &fakeEmailJS{status: status}
	cfg := config.EmailJSConfig{ServiceID: "service_1", TemplateID: "template_1", PublicKey: "pub"}
	sender := direct.NewSender(api, nil, cfg, zaptest.NewLogger(t))
	store := session.NewStore(time.Hour, time.Hour)
	h := NewRequestHandler(store, sender, pages, zaptest.NewLogger(t))
	return &formClient{t: t, handler: h}, api, store
}

func filledForm() url.Values {
	return url.Values{
		"clientName":     {"홍길동"},
		"clientPhone":    {"01012345678"},
		"clientEmail":    {"hong@example.com"},
		"apartmentName":  {"행복아파트"},
		"clientType":     {"individual"},
		"unpaidPeriod":   {"2023년 1월 ~ 2024년 12월"},
		"unpaidAmount":   {"1000000"},
		"unpaidDetails":  {"management_fee", "late_fee"},
		"privacyConsent": {"on"},
	}
}

func TestRequest_SuccessTranslatesAndResets(t *testing.T) {
	c, api, store := newFormClient(t, http.StatusOK)

	rec := c.post(filledForm())
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/request" {
		t.Fatalf("status = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if api.calls != 1 {
		t.Fatalf("emailjs calls = %d", api.calls)
	}
	if api.params["clientType"] != "개인" || api.params["unpaidDetails"] != "관리비, 연체료" {
		t.Errorf("params = %v", api.params)
	}
	if api.params["clientPhone"] != "010-1234-5678" || api.params["unpaidAmount"] != "1,000,000" {
		t.Errorf("params = %v", api.params)
	}

	sess, ok := store.Get(c.cookie.Value)
	if !ok {
		t.Fatal("session not found")
	}
	v := sess.View()
	if v.State != report.Success || v.Submission.ClientName != "" {
		t.Errorf("view after success = %+v", v)
	}
	if page := c.get(); !strings.Contains(page, report.MessageSuccess) {
		t.Error("success message not rendered")
	}
}

func TestRequest_NoConsentBlocksDelivery(t *testing.T) {
	c, api, store := newFormClient(t, http.StatusOK)

	values := filledForm()
	values.Del("privacyConsent")
	c.post(values)

	if api.calls != 0 {
		t.Fatalf("emailjs called without consent")
	}
	sess, _ := store.Get(c.cookie.Value)
	if sess.View().State != report.Idle {
		t.Error("state must stay idle")
	}
	page := c.get()
	if !strings.Contains(page, report.MessageConsent) {
		t.Error("consent alert not rendered")
	}
	if !strings.Contains(page, `value="홍길동"`) {
		t.Error("entered data lost")
	}
	if strings.Contains(c.get(), report.MessageConsent) {
		t.Error("consent alert shown twice")
	}
}

func TestRequest_RejectedKeepsForm(t *testing.T) {
	c, api, store := newFormClient(t, http.StatusBadRequest)

	c.post(filledForm())
	if api.calls != 1 {
		t.Fatalf("emailjs calls = %d", api.calls)
	}
	sess, _ := store.Get(c.cookie.Value)
	v := sess.View()
	if v.State != report.Error {
		t.Errorf("state = %s, want error", v.State)
	}
	s := v.Submission
	if s.ClientName != "홍길동" || s.ClientPhone != "010-1234-5678" || len(s.UnpaidDetails) != 2 || !s.PrivacyConsent {
		t.Errorf("form not retained: %+v", s)
	}
	page := c.get()
	if !strings.Contains(page, report.MessageError) || !strings.Contains(page, `value="late_fee" checked`) {
		t.Error("error page should show the message and the kept values")
	}
}

func TestRequest_UncheckedDetailIsRemoved(t *testing.T) {
	c, _, store := newFormClient(t, http.StatusBadRequest)
	c.post(filledForm())

	values := filledForm()
	values["unpaidDetails"] = []string{"late_fee"}
	c.post(values)

	sess, _ := store.Get(c.cookie.Value)
	if got := sess.View().Submission.UnpaidDetails; len(got) != 1 || got[0] != "late_fee" {
		t.Errorf("details = %v", got)
	}
}

func TestRequest_ShowSetsCookie(t *testing.T) {
	c, _, _ := newFormClient(t, http.StatusOK)
	page := c.get()
	if c.cookie == nil || c.cookie.Value == "" {
		t.Fatal("no session cookie set")
	}
	if !strings.Contains(page, "관리비 추심 의뢰서") {
		t.Error("form page not rendered")
	}
}
