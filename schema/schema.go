// Package schema defines the data model for pharmacy quality-management
// documents: field descriptors, document templates, filled records, and the
// values derived from them (pharmacy initials, classification codes, output
// filenames).
//
// Templates are read-only reference data authored at build time. A record is
// one user-submitted instance of a template and is immutable once generated;
// regeneration always creates a new record.
package schema

import (
	"time"
)

// FieldType enumerates the input kinds a template field can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldDate     FieldType = "date"
	FieldDateTime FieldType = "datetime"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
)

// FieldDescriptor describes one field of a document template.
// Descriptors are immutable and defined at template-authoring time.
type FieldDescriptor struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Rows        int       `json:"rows,omitempty"`
}

// ClassificationCode places a document in the regulatory filing scheme.
// The rendered form is "initials/processCode/categoryCode", where the
// initials part is derived from the pharmacy name at render time.
type ClassificationCode struct {
	ProcessCode   string `json:"processCode"`
	CategoryCode  string `json:"categoryCode"`
	ProcessLabel  string `json:"processLabel,omitempty"`
	CategoryLabel string `json:"categoryLabel,omitempty"`
}

// Format renders the full classification string for the given pharmacy
// initials, e.g. "PCV/P04/05.01".
func (c ClassificationCode) Format(initials string) string {
	return initials + "/" + c.ProcessCode + "/" + c.CategoryCode
}

// DocumentTemplate is the static schema for one document kind.
// Templates never change at runtime.
type DocumentTemplate struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Category       string              `json:"category"`
	Description    string              `json:"description,omitempty"`
	EstimatedTime  string              `json:"estimatedTime,omitempty"`
	Classification *ClassificationCode `json:"classification,omitempty"`
	Fields         []FieldDescriptor   `json:"fields"`
}

// Field returns the descriptor with the given id, or nil.
func (t *DocumentTemplate) Field(id string) *FieldDescriptor {
	for i := range t.Fields {
		if t.Fields[i].ID == id {
			return &t.Fields[i]
		}
	}
	return nil
}

// SignatureEntry is one signature line (name, date, optional images).
// Images are raw PNG or JPEG bytes as received from the form.
type SignatureEntry struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	SignatureImage []byte `json:"signatureImage,omitempty"`
	StampImage     []byte `json:"stampImage,omitempty"`
}

// SignatureSet carries the recorder/verifier/approver signatures of a record.
type SignatureSet struct {
	Recorder *SignatureEntry `json:"recorder,omitempty"`
	Verifier *SignatureEntry `json:"verifier,omitempty"`
	Approver *SignatureEntry `json:"approver,omitempty"`
}

// FilledRecord is one submitted instance of a template. Data maps field id
// to the raw string value entered by the user. Records are immutable once
// generated; there is no edit path.
type FilledRecord struct {
	ID           string            `json:"id"`
	TemplateID   string            `json:"templateId"`
	PharmacyName string            `json:"pharmacyName"`
	Data         map[string]string `json:"data"`
	CreatedAt    time.Time         `json:"createdAt"`
	Signatures   *SignatureSet     `json:"signatures,omitempty"`
}

// Value returns the trimmed value for a field id, or "" when absent.
func (r *FilledRecord) Value(id string) string {
	return trim(r.Data[id])
}

// Initials returns the pharmacy initials for classification: the
// "pharmacyInitials" field when the form carried one (it may hold a manual
// override), otherwise the value derived from the pharmacy name.
func (r *FilledRecord) Initials() string {
	if v := r.Value("pharmacyInitials"); v != "" {
		return v
	}
	return Initials(r.PharmacyName)
}

// ProcessStep is one ordered step of a process sheet.
type ProcessStep struct {
	Order         int    `json:"order"`
	Description   string `json:"description"`
	Responsible   string `json:"responsible"`
	Documentation string `json:"documentation,omitempty"`
	ControlPoint  string `json:"controlPoint,omitempty"`
}

// ProcessSheet is the typed shape of a process-sheet record.
type ProcessSheet struct {
	Record FilledRecord  `json:"record"`
	Steps  []ProcessStep `json:"steps"`
}

// CAPAAction is one corrective or preventive action of a CAPA plan.
type CAPAAction struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
	Type        string `json:"type"` // "corrective" or "préventive"
	Responsible string `json:"responsible"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// CAPAPlan is the typed shape of a CAPA-plan record.
type CAPAPlan struct {
	Record  FilledRecord `json:"record"`
	Actions []CAPAAction `json:"actions"`
}

// WasteEntry is one line of a waste-tracking log.
type WasteEntry struct {
	Order     int    `json:"order"`
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	Quantity  string `json:"quantity"`
	Outlet    string `json:"outlet"`
	Reference string `json:"reference,omitempty"`
}

// WasteDocument is the typed shape of a waste-tracking record.
type WasteDocument struct {
	Record  FilledRecord `json:"record"`
	Entries []WasteEntry `json:"entries"`
}
