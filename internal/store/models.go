package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/qualipharm/qualipharm/schema"
)

// recordRow is the storage shape of a filled record. The field bag and
// signature set are kept as JSON columns: the schema is template-driven
// and queries only ever filter on the indexed scalar columns.
type recordRow struct {
	ID           string    `gorm:"primaryKey"`
	TemplateID   string    `gorm:"index;not null"`
	PharmacyName string    `gorm:"index"`
	Data         string    `gorm:"type:jsonb"`
	Signatures   string    `gorm:"type:jsonb"`
	CreatedAt    time.Time `gorm:"index"`
}

func (recordRow) TableName() string { return "records" }

func toRow(rec *schema.FilledRecord) (*recordRow, error) {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("encoding record data: %w", err)
	}
	row := &recordRow{
		ID:           rec.ID,
		TemplateID:   rec.TemplateID,
		PharmacyName: rec.PharmacyName,
		Data:         string(data),
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Signatures != nil {
		sigs, err := json.Marshal(rec.Signatures)
		if err != nil {
			return nil, fmt.Errorf("encoding signatures: %w", err)
		}
		row.Signatures = string(sigs)
	}
	return row, nil
}

func fromRow(row *recordRow) (*schema.FilledRecord, error) {
	rec := &schema.FilledRecord{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		PharmacyName: row.PharmacyName,
		CreatedAt:    row.CreatedAt,
	}
	if err := json.Unmarshal([]byte(row.Data), &rec.Data); err != nil {
		return nil, fmt.Errorf("decoding record %s data: %w", row.ID, err)
	}
	if row.Signatures != "" {
		rec.Signatures = &schema.SignatureSet{}
		if err := json.Unmarshal([]byte(row.Signatures), rec.Signatures); err != nil {
			return nil, fmt.Errorf("decoding record %s signatures: %w", row.ID, err)
		}
	}
	return rec, nil
}
