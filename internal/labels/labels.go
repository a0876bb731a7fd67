// Package labels translates the categorical codes of a submission into the
// Korean labels shown on the form and in delivered emails. Both delivery
// channels read from these tables only.
package labels

import (
	"strings"

	"bestchungsan/internal/model"
)

// Option is one selectable code with its display label, in form order.
type Option struct {
	Code  string
	Label string
}

var clientTypes = []Option{
	{model.ClientTypeManagementOffice, "관리사무소"},
	{model.ClientTypeManagementCommittee, "관리위원회"},
	{model.ClientTypeManagementCompany, "위탁관리회사"},
	{model.ClientTypeIndividual, "개인"},
}

var previousAttempts = []Option{
	{model.AttemptNone, "없음"},
	{model.AttemptPhone, "전화연락"},
	{model.AttemptLetter, "우편발송"},
	{model.AttemptVisit, "방문"},
	{model.AttemptLegal, "법적조치"},
	{model.AttemptMultiple, "복합시도"},
}

var unpaidDetails = []Option{
	{model.DetailManagementFee, "관리비"},
	{model.DetailRepairFund, "수선충당금"},
	{model.DetailUtilityFee, "공용요금"},
	{model.DetailLateFee, "연체료"},
	{model.DetailSpecialFee, "특별부담금"},
	{model.DetailOther, "기타"},
}

var (
	clientTypeIndex      = index(clientTypes)
	previousAttemptIndex = index(previousAttempts)
	unpaidDetailIndex    = index(unpaidDetails)
)

func index(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Code] = o.Label
	}
	return m
}

func lookup(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// ClientType returns the label for a client-type code, or the code itself.
func ClientType(code string) string { return lookup(clientTypeIndex, code) }

// PreviousAttempt returns the label for a prior-collection code, or the code itself.
func PreviousAttempt(code string) string { return lookup(previousAttemptIndex, code) }

// UnpaidDetail returns the label for an unpaid-detail code, or the code itself.
func UnpaidDetail(code string) string { return lookup(unpaidDetailIndex, code) }

// UnpaidDetails translates every code and joins them with ", ".
func UnpaidDetails(codes []string) string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, UnpaidDetail(c))
	}
	return strings.Join(out, ", ")
}

// ClientTypeOptions returns the client types in form order.
func ClientTypeOptions() []Option { return clone(clientTypes) }

// PreviousAttemptOptions returns the prior-collection choices in form order.
func PreviousAttemptOptions() []Option { return clone(previousAttempts) }

// UnpaidDetailOptions returns the unpaid-detail choices in form order.
func UnpaidDetailOptions() []Option { return clone(unpaidDetails) }

func clone(opts []Option) []Option {
	return append([]Option(nil), opts...)
}
