package domain

import (
	"time"
)

// MissingValue is the canonical sentinel for a text field whose source cell
// was empty or held the literal "N/A". It is distinct from every value the
// complaint export can legitimately carry.
const MissingValue = "__missing__"

// DisputeFlag indicates whether the consumer contested the company's
// resolution of a complaint.
type DisputeFlag string

const (
	DisputeYes     DisputeFlag = "Yes"
	DisputeNo      DisputeFlag = "No"
	DisputeUnknown DisputeFlag = "Unknown"
)

// ParseDisputeFlag maps the raw export value of the "Consumer disputed?"
// column onto a DisputeFlag. Empty cells and "N/A" map to DisputeUnknown.
func ParseDisputeFlag(raw string) DisputeFlag {
	switch raw {
	case "Yes", "yes", "YES":
		return DisputeYes
	case "No", "no", "NO":
		return DisputeNo
	default:
		return DisputeUnknown
	}
}

// Label returns the display label for chart legends. The mapping follows the
// field definition: Yes means the consumer disputed the resolution.
func (f DisputeFlag) Label() string {
	switch f {
	case DisputeYes:
		return "Disputed"
	case DisputeNo:
		return "Not Disputed"
	default:
		return "Unknown"
	}
}

// Date is a calendar date that may be absent. A zero Valid flag is the
// explicit missing marker for unparseable or empty date cells; the raw
// string is never carried forward.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date for t.
func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

// Format renders the date with the given layout, or an empty string when the
// date is missing.
func (d Date) Format(layout string) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(layout)
}

// ComplaintRecord is one normalized consumer complaint row. A single source
// row with a multi-valued Tags cell explodes into several ComplaintRecords
// that share the same ComplaintID.
type ComplaintRecord struct {
	ComplaintID       string      `json:"complaint_id" csv:"ComplaintID"`
	DateReceived      Date        `json:"date_received" csv:"DateReceived"`
	DateSentToCompany Date        `json:"date_sent_to_company" csv:"DateSentToCompany"`
	Product           string      `json:"product" csv:"Product"`
	SubProduct        string      `json:"sub_product" csv:"SubProduct"`
	Issue             string      `json:"issue" csv:"Issue"`
	SubIssue          string      `json:"sub_issue" csv:"SubIssue"`
	Narrative         string      `json:"narrative" csv:"Narrative"`
	Company           string      `json:"company" csv:"Company"`
	State             string      `json:"state" csv:"State"`
	SubmittedVia      string      `json:"submitted_via" csv:"SubmittedVia"`
	Tag               string      `json:"tag" csv:"Tag"`
	CompanyResponse   string      `json:"company_response" csv:"CompanyResponse"`
	Disputed          DisputeFlag `json:"disputed" csv:"Disputed"`
}

// HasNarrative reports whether the record carries usable free text.
func (r ComplaintRecord) HasNarrative() bool {
	return r.Narrative != "" && r.Narrative != MissingValue
}
