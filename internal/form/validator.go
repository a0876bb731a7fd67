package form

import (
	"strings"

	"bestchungsan/internal/model"
)

// CanSubmit is the only hard gate before delivery: privacy consent.
func CanSubmit(s model.Submission) bool {
	return s.PrivacyConsent
}

// MissingRequired lists the form fields marked required on the page that
// are still empty. Callers log it; it never blocks a delivery.
func MissingRequired(s model.Submission) []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"clientName", s.ClientName},
		{"clientPhone", s.ClientPhone},
		{"clientEmail", s.ClientEmail},
		{"apartmentName", s.ApartmentName},
		{"clientType", s.ClientType},
		{"unpaidPeriod", s.UnpaidPeriod},
		{"unpaidAmount", s.UnpaidAmount},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(s.UnpaidDetails) == 0 {
		missing = append(missing, "unpaidDetails")
	}
	return missing
}
