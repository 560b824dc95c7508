package dataprocessing

import (
	"strings"
)

// FieldKind classifies a schema field and decides its missing-value policy.
type FieldKind int

const (
	// KindID is the stable record identifier; never canonicalized.
	KindID FieldKind = iota
	// KindDate is parsed into domain.Date; unparseable values become the
	// explicit missing marker.
	KindDate
	// KindText is a free or categorical text field; empty and "N/A" cells
	// canonicalize to domain.MissingValue.
	KindText
	// KindNarrative is free text fed to the tokenizer; canonicalized like
	// KindText but never exploded or trimmed of interior whitespace.
	KindNarrative
	// KindTags is a comma-space separated multi-value field that explodes
	// into one row per value.
	KindTags
	// KindFlag is the boolean-like dispute column.
	KindFlag
)

// FieldSpec declares one column of the complaint export: its internal name,
// the header it appears under, and how missing values are handled. This
// static declaration replaces runtime column pre-scans.
type FieldSpec struct {
	Name     string
	Header   string
	Kind     FieldKind
	Required bool
}

// FieldComplaintID and friends are the internal field names the rest of the
// pipeline keys on.
const (
	FieldComplaintID       = "complaint_id"
	FieldDateReceived      = "date_received"
	FieldDateSentToCompany = "date_sent_to_company"
	FieldProduct           = "product"
	FieldSubProduct        = "sub_product"
	FieldIssue             = "issue"
	FieldSubIssue          = "sub_issue"
	FieldNarrative         = "narrative"
	FieldCompany           = "company"
	FieldState             = "state"
	FieldSubmittedVia      = "submitted_via"
	FieldTags              = "tags"
	FieldCompanyResponse   = "company_response"
	FieldDisputed          = "disputed"
)

// ComplaintSchema is the static schema of the consumer-complaint export.
// Headers match the public complaint database column names.
var ComplaintSchema = []FieldSpec{
	{Name: FieldComplaintID, Header: "Complaint ID", Kind: KindID, Required: true},
	{Name: FieldDateReceived, Header: "Date received", Kind: KindDate},
	{Name: FieldDateSentToCompany, Header: "Date sent to company", Kind: KindDate},
	{Name: FieldProduct, Header: "Product", Kind: KindText},
	{Name: FieldSubProduct, Header: "Sub-product", Kind: KindText},
	{Name: FieldIssue, Header: "Issue", Kind: KindText},
	{Name: FieldSubIssue, Header: "Sub-issue", Kind: KindText},
	{Name: FieldNarrative, Header: "Consumer complaint narrative", Kind: KindNarrative},
	{Name: FieldCompany, Header: "Company", Kind: KindText},
	{Name: FieldState, Header: "State", Kind: KindText},
	{Name: FieldSubmittedVia, Header: "Submitted via", Kind: KindText},
	{Name: FieldTags, Header: "Tags", Kind: KindTags},
	{Name: FieldCompanyResponse, Header: "Company response to consumer", Kind: KindText},
	{Name: FieldDisputed, Header: "Consumer disputed?", Kind: KindFlag, Required: true},
}

// RawRecord is one source row keyed by internal field name, before
// normalization. Values are verbatim cell contents.
type RawRecord struct {
	Row    int
	Fields map[string]string
}

// Get returns the raw cell value for a field, empty when absent.
func (r RawRecord) Get(name string) string {
	return r.Fields[name]
}

// normalizeHeader prepares a header cell for schema matching.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// matchHeaders maps schema field names to column indexes, matching headers
// case-insensitively. Missing required columns are reported by name.
func matchHeaders(header []string) (map[string]int, []string) {
	byHeader := make(map[string]int, len(header))
	for i, h := range header {
		byHeader[normalizeHeader(h)] = i
	}

	columns := make(map[string]int, len(ComplaintSchema))
	var missing []string
	for _, spec := range ComplaintSchema {
		idx, ok := byHeader[normalizeHeader(spec.Header)]
		if !ok {
			if spec.Required {
				missing = append(missing, spec.Header)
			}
			continue
		}
		columns[spec.Name] = idx
	}

	return columns, missing
}
