// Package form holds the in-progress lead submission of one visitor and the
// consent gate that decides whether it may be delivered.
package form

import (
	"errors"
	"fmt"
	"strings"

	"bestchungsan/internal/model"
)

var ErrUnknownField = errors.New("unknown form field")

// Holder keeps one Submission between form round-trips. It is not safe for
// concurrent use; the session that owns it serializes access.
type Holder struct {
	sub model.Submission
}

func NewHolder() *Holder {
	h := &Holder{}
	h.Reset()
	return h
}

// Reset returns the holder to the empty form.
func (h *Holder) Reset() {
	h.sub = model.Submission{UnpaidDetails: []string{}}
}

// Snapshot returns a copy of the current submission.
func (h *Holder) Snapshot() model.Submission {
	return h.sub.Clone()
}

// SetField overwrites the scalar field with the given JSON name. Phone
// fields are re-formatted, checkbox fields accept the usual "on" values.
func (h *Holder) SetField(name, value string) error {
	s := &h.sub
	switch name {
	case "clientName":
		s.ClientName = value
	case "clientPhone":
		s.ClientPhone = FormatPhone(value)
	case "clientEmail":
		s.ClientEmail = value
	case "apartmentName":
		s.ApartmentName = value
	case "clientType":
		s.ClientType = value
	case "unpaidPeriod":
		s.UnpaidPeriod = value
	case "unpaidAmount":
		s.UnpaidAmount = value
	case "privacyConsent":
		s.PrivacyConsent = checked(value)
	case "clientPosition":
		s.ClientPosition = value
	case "debtorName":
		s.DebtorName = value
	case "debtorUnit":
		s.DebtorUnit = value
	case "debtorPhone":
		s.DebtorPhone = FormatPhone(value)
	case "previousAttempts":
		s.PreviousAttempts = value
	case "specialNotes":
		s.SpecialNotes = value
	case "hasDocuments":
		s.HasDocuments = checked(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// ToggleDetail adds or removes an unpaid-detail code. Adding a present code
// or removing an absent one is a no-op.
func (h *Holder) ToggleDetail(code string, present bool) {
	has := h.sub.HasDetail(code)
	switch {
	case present && !has:
		h.sub.UnpaidDetails = append(h.sub.UnpaidDetails, code)
	case !present && has:
		kept := h.sub.UnpaidDetails[:0]
		for _, d := range h.sub.UnpaidDetails {
			if d != code {
				kept = append(kept, d)
			}
		}
		h.sub.UnpaidDetails = kept
	}
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
