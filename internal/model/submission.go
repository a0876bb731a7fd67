package model

// Client types
const (
	ClientTypeManagementOffice    = "management_office"
	ClientTypeManagementCommittee = "management_committee"
	ClientTypeManagementCompany   = "management_company"
	ClientTypeIndividual          = "individual"
)

// Unpaid detail codes
const (
	DetailManagementFee = "management_fee"
	DetailRepairFund    = "repair_fund"
	DetailUtilityFee    = "utility_fee"
	DetailLateFee       = "late_fee"
	DetailSpecialFee    = "special_fee"
	DetailOther         = "other"
)

// Prior collection attempts
const (
	AttemptNone     = "none"
	AttemptPhone    = "phone"
	AttemptLetter   = "letter"
	AttemptVisit    = "visit"
	AttemptLegal    = "legal"
	AttemptMultiple = "multiple"
)

// Submission is one lead-intake form. It lives only inside a form session
// or a single relay request and is never stored.
type Submission struct {
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`
	ApartmentName string `json:"apartmentName"`
	ClientType    string `json:"clientType"`

	UnpaidPeriod  string   `json:"unpaidPeriod"`
	UnpaidAmount  string   `json:"unpaidAmount"`
	UnpaidDetails []string `json:"unpaidDetails"`

	PrivacyConsent bool `json:"privacyConsent"`

	// Only the relay form sends these.
	ClientPosition   string `json:"clientPosition,omitempty"`
	DebtorName       string `json:"debtorName,omitempty"`
	DebtorUnit       string `json:"debtorUnit,omitempty"`
	DebtorPhone      string `json:"debtorPhone,omitempty"`
	PreviousAttempts string `json:"previousAttempts,omitempty"`
	SpecialNotes     string `json:"specialNotes,omitempty"`
	HasDocuments     bool   `json:"hasDocuments,omitempty"`
}

// Clone returns a copy that does not share the details slice.
func (s Submission) Clone() Submission {
	c := s
	if s.UnpaidDetails != nil {
		c.UnpaidDetails = append([]string(nil), s.UnpaidDetails...)
	}
	return c
}

// HasDetail reports whether code is in the unpaid-detail set.
func (s *Submission) HasDetail(code string) bool {
	for _, d := range s.UnpaidDetails {
		if d == code {
			return true
		}
	}
	return false
}
