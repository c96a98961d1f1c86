// Package services holds the application logic between the HTTP handlers
// and the rendering/persistence layers.
package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/internal/share"
	"github.com/qualipharm/qualipharm/orgchart"
	"github.com/qualipharm/qualipharm/pkg/metrics"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/report"
	"github.com/qualipharm/qualipharm/schema"
)

// RecordStore is the persistence surface the service needs.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec *schema.FilledRecord) (string, error)
	RecordsByMonth(ctx context.Context, templateID string, year int, month time.Month) ([]schema.FilledRecord, error)
	RecordCountsByMonth(ctx context.Context, year int, month time.Month) (map[string]int64, error)
}

// ObjectUploader pushes a finished PDF to object storage and returns its
// public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, filename string, blob []byte) (string, error)
}

// Submission is one filled form as received from the client. The typed row
// slices are only read for the templates that use them.
type Submission struct {
	TemplateID   string               `json:"templateId"`
	PharmacyName string               `json:"pharmacyName"`
	Data         map[string]string    `json:"data"`
	Signatures   *schema.SignatureSet `json:"signatures,omitempty"`
	Steps        []schema.ProcessStep `json:"steps,omitempty"`
	Actions      []schema.CAPAAction  `json:"actions,omitempty"`
	Entries      []schema.WasteEntry  `json:"entries,omitempty"`
}

// GeneratedDocument is a rendered PDF together with the record it was
// rendered from.
type GeneratedDocument struct {
	Record   *schema.FilledRecord
	Filename string
	PDF      []byte
}

// DocumentService generates, compiles and shares quality documents.
type DocumentService struct {
	store    RecordStore
	uploader ObjectUploader
	metrics  *metrics.Collector
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewDocumentService wires the service. Records are stamped with the real
// clock and uuid ids; tests override both through the struct fields.
func NewDocumentService(store RecordStore, uploader ObjectUploader, collector *metrics.Collector, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		store:    store,
		uploader: uploader,
		metrics:  collector,
		logger:   logger.With(zap.String("service", "documents")),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// GenerateDocument validates a submission, renders the PDF for its template
// and persists the record. A failed save aborts the whole action; the PDF is
// never returned without its record being stored.
func (s *DocumentService) GenerateDocument(ctx context.Context, sub *Submission) (*GeneratedDocument, error) {
	started := s.now()

	tpl, ok := registry.TemplateByID(sub.TemplateID)
	if !ok {
		return nil, compose.ErrTemplateNotFound
	}

	rec := &schema.FilledRecord{
		ID:           s.newID(),
		TemplateID:   tpl.ID,
		PharmacyName: sub.PharmacyName,
		Data:         sub.Data,
		CreatedAt:    s.now(),
		Signatures:   sub.Signatures,
	}

	if err := schema.Validate(tpl, rec); err != nil {
		return nil, err
	}

	c := compose.NewComposer(compose.WithClock(s.now))
	if err := RenderDocument(c, tpl, rec, sub); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, err
	}

	if _, err := s.store.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("documents_generated", tpl.ID)
	s.metrics.ObserveLatency("generate", s.now().Sub(started))
	s.metrics.ObserveSize("pdf_bytes", float64(buf.Len()))
	s.logger.Info("document generated",
		zap.String("template_id", tpl.ID),
		zap.String("record_id", rec.ID),
		zap.Int("pdf_bytes", buf.Len()))

	return &GeneratedDocument{Record: rec, Filename: c.Filename(), PDF: buf.Bytes()}, nil
}

// RenderDocument dispatches to the specialized renderer for the template,
// falling back to the generic field-by-field layout. Also used by the
// offline render command.
func RenderDocument(c *compose.Composer, tpl *schema.DocumentTemplate, rec *schema.FilledRecord, sub *Submission) error {
	switch tpl.ID {
	case "org-chart":
		return orgchart.Render(c, tpl, rec)
	case "capa-plan":
		return report.RenderCAPA(c, tpl, &schema.CAPAPlan{Record: *rec, Actions: sub.Actions})
	case "process-sheet":
		return report.RenderProcessSheet(c, tpl, &schema.ProcessSheet{Record: *rec, Steps: sub.Steps})
	case "waste-log":
		return report.RenderWasteLog(c, tpl, &schema.WasteDocument{Record: *rec, Entries: sub.Entries})
	default:
		return c.Compose(tpl, rec)
	}
}

// CompileMonth renders the monthly compilation table for one template.
// Months with no records return compose.ErrNoRecords.
func (s *DocumentService) CompileMonth(ctx context.Context, templateID string, year int, month time.Month) (*GeneratedDocument, error) {
	tpl, ok := registry.TemplateByID(templateID)
	if !ok {
		return nil, compose.ErrTemplateNotFound
	}

	records, err := s.store.RecordsByMonth(ctx, templateID, year, month)
	if err != nil {
		return nil, err
	}

	c := compose.NewComposer(compose.WithClock(s.now))
	if err := report.RenderCompilation(c, tpl, records, year, month); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("compilations_generated", templateID)
	s.logger.Info("compilation generated",
		zap.String("template_id", templateID),
		zap.Int("records", len(records)),
		zap.Int("pdf_bytes", buf.Len()))

	return &GeneratedDocument{Filename: c.Filename(), PDF: buf.Bytes()}, nil
}

// ShareResult is the outcome of a completed share action.
type ShareResult struct {
	PublicURL string `json:"publicUrl"`
	ShareLink string `json:"shareLink"`
}

// ShareDocument uploads the PDF and returns the public URL together with
// the prefilled messaging deep link. Upload failure aborts the whole
// action; no link is built for a document that is not reachable.
func (s *DocumentService) ShareDocument(ctx context.Context, doc *GeneratedDocument, documentTitle, phone string) (*ShareResult, error) {
	publicURL, err := s.uploader.Upload(ctx, doc.Filename, doc.PDF)
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	pharmacy := ""
	if doc.Record != nil {
		pharmacy = doc.Record.PharmacyName
	}
	msg := share.Message(documentTitle, pharmacy, publicURL)

	s.metrics.IncrementCounter("documents_shared", "")
	s.logger.Info("document shared", zap.String("filename", doc.Filename))

	return &ShareResult{PublicURL: publicURL, ShareLink: share.Link(phone, msg)}, nil
}

// DashboardCounts returns the per-template record counts for a month.
// Templates with no records for the month are present with a zero count so
// the dashboard can show every card.
func (s *DocumentService) DashboardCounts(ctx context.Context, year int, month time.Month) (map[string]int64, error) {
	counts, err := s.store.RecordCountsByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	for _, tpl := range registry.All() {
		if _, ok := counts[tpl.ID]; !ok {
			counts[tpl.ID] = 0
		}
	}
	return counts, nil
}
