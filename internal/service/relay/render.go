package relay

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"bestchungsan/internal/labels"
	"bestchungsan/internal/model"
)

//go:embed mail.html
var mailHTML string

var mailTemplate = template.Must(template.New("mail").Parse(mailHTML))

const (
	notEntered = "미입력"
	none       = "없음"
	present    = "있음"
)

// mailView is the submission after translation, as printed in the mail.
type mailView struct {
	ClientName     string
	ClientPhone    string
	ClientEmail    string
	ApartmentName  string
	ClientType     string
	ClientPosition string

	DebtorName  string
	DebtorUnit  string
	DebtorPhone string

	UnpaidPeriod  string
	UnpaidAmount  string
	UnpaidDetails string

	PreviousAttempts string
	SpecialNotes     string
	HasDocuments     string

	SubmittedAt string
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func newMailView(s model.Submission, now time.Time) mailView {
	docs := none
	if s.HasDocuments {
		docs = present
	}
	return mailView{
		ClientName:       s.ClientName,
		ClientPhone:      s.ClientPhone,
		ClientEmail:      s.ClientEmail,
		ApartmentName:    s.ApartmentName,
		ClientType:       labels.ClientType(s.ClientType),
		ClientPosition:   orDefault(s.ClientPosition, notEntered),
		DebtorName:       s.DebtorName,
		DebtorUnit:       s.DebtorUnit,
		DebtorPhone:      orDefault(s.DebtorPhone, notEntered),
		UnpaidPeriod:     s.UnpaidPeriod,
		UnpaidAmount:     model.FormatAmount(s.UnpaidAmount),
		UnpaidDetails:    labels.UnpaidDetails(s.UnpaidDetails),
		PreviousAttempts: labels.PreviousAttempt(s.PreviousAttempts),
		SpecialNotes:     orDefault(s.SpecialNotes, none),
		HasDocuments:     docs,
		SubmittedAt:      labels.Timestamp(now),
	}
}

// Render builds the HTML body of the relay mail.
func Render(s model.Submission, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplate.Execute(&buf, newMailView(s, now)); err != nil {
		return "", fmt.Errorf("render mail: %w", err)
	}
	return buf.String(), nil
}

// Subject is the fixed subject line with the site and unit appended.
func Subject(s model.Submission) string {
	return fmt.Sprintf("[베스트청산] 새로운 관리비 청산 의뢰 - %s %s", s.ApartmentName, s.DebtorUnit)
}
